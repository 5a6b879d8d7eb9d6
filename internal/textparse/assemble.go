package textparse

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Config holds thresholds and behavior knobs for the assembler.
type Config struct {
	// MinRegionConfidence gates merging a gazetteer match; default 0.30.
	MinRegionConfidence float64
	Weights             ScoreWeights
}

// Parser assembles PartialOrders out of raw pasted text: segment, extract
// items, strip claimed lines, split contact, resolve region, score.
type Parser struct {
	logger  *slog.Logger
	cfg     Config
	regions RegionResolver // optional; nil disables region lookup
}

func NewParser(logger *slog.Logger, cfg Config, regions RegionResolver) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinRegionConfidence <= 0 {
		cfg.MinRegionConfidence = 0.30
	}
	if cfg.Weights == (ScoreWeights{}) {
		cfg.Weights = DefaultScoreWeights()
	}
	return &Parser{logger: logger, cfg: cfg, regions: regions}
}

// ParseOrders parses every detected block concurrently. Blocks share no
// state, so one goroutine per block is safe; results keep block order. It
// never fails on bad input — degraded results surface through the
// confidence and potential-item signals instead.
func (p *Parser) ParseOrders(ctx context.Context, raw string) []PartialOrder {
	blocks := SegmentBlocks(raw)
	orders := make([]PartialOrder, len(blocks))

	var wg sync.WaitGroup
	for i, block := range blocks {
		wg.Add(1)
		go func(i int, block string) {
			defer wg.Done()
			orders[i] = p.parseBlock(ctx, block)
		}(i, block)
	}
	wg.Wait()

	return orders
}

func (p *Parser) parseBlock(ctx context.Context, block string) PartialOrder {
	extracted := ExtractItems(block)
	residue := stripClaimedLines(block, extracted.ClaimedLines)
	contact := SplitContact(residue)

	order := PartialOrder{
		Contact:            contact,
		Items:              extracted.Items,
		HasUnpricedItems:   extracted.HasUnpricedItems,
		PotentialItemCount: CountPotentialItems(block),
	}
	order.Region = p.resolveRegion(ctx, contact.Address)
	order.Confidence = p.cfg.Weights.Score(contact, extracted.Items)

	p.logger.Debug("parse.block",
		"items", len(order.Items),
		"potential_items", order.PotentialItemCount,
		"has_phone", contact.Phone != "",
		"has_address", contact.Address != "",
		"region_matched", order.Region != nil,
		"confidence", order.Confidence,
	)
	return order
}

// resolveRegion is best-effort: lookup failures and low-confidence matches
// both degrade to "no region match", keeping the raw address text intact.
func (p *Parser) resolveRegion(ctx context.Context, address string) *RegionMatch {
	if p.regions == nil || address == "" {
		return nil
	}
	match, err := p.regions.ResolveRegion(ctx, address)
	if err != nil {
		p.logger.Warn("parse.region_lookup_failed", "error", err)
		return nil
	}
	if match == nil || match.Confidence < p.cfg.MinRegionConfidence {
		return nil
	}
	return match
}

// stripClaimedLines removes every line the extractor claimed, by trimmed
// content. Guarded phone lines are never claimed, so they stay visible to
// the contact splitter.
func stripClaimedLines(block string, claimed []string) string {
	if len(claimed) == 0 {
		return block
	}
	taken := make(map[string]struct{}, len(claimed))
	for _, line := range claimed {
		taken[line] = struct{}{}
	}
	var kept []string
	for _, raw := range splitLines(block) {
		if _, ok := taken[strings.TrimSpace(raw)]; ok {
			continue
		}
		kept = append(kept, raw)
	}
	return strings.Join(kept, "\n")
}
