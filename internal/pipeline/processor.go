// Package pipeline owns the escalation policy around the rule-based engine:
// run the battery first, hand the raw text to the AI fallback only when the
// battery came up empty or visibly under-matched, then persist.
package pipeline

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/common"
	"github.com/rahadianp/pesanin/internal/llm"
	"github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/textparse"
)

// Config holds thresholds and behavior flags for the processor.
type Config struct {
	// ReviewThreshold routes accepted orders below this confidence to a
	// human. Default 0.60. A low score never triggers the AI fallback by
	// itself; only a zero-item or under-matched battery does.
	ReviewThreshold float64
	Weights         textparse.ScoreWeights
}

type Processor struct {
	Logger   *slog.Logger
	Cfg      Config
	Parser   *textparse.Parser
	Orders   repository.OrderRepository
	Regions  textparse.RegionResolver // optional, used for fallback drafts
	Fallback llm.OrderExtractor       // optional; nil disables escalation
}

func NewProcessor(
	logger *slog.Logger,
	cfg Config,
	parser *textparse.Parser,
	orders repository.OrderRepository,
	regions textparse.RegionResolver,
	fallback llm.OrderExtractor,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReviewThreshold <= 0 {
		cfg.ReviewThreshold = 0.60
	}
	if cfg.Weights == (textparse.ScoreWeights{}) {
		cfg.Weights = textparse.DefaultScoreWeights()
	}
	return &Processor{
		Logger:   logger,
		Cfg:      cfg,
		Parser:   parser,
		Orders:   orders,
		Regions:  regions,
		Fallback: fallback,
	}
}

// ProcessText parses one raw pasted message end to end and persists every
// recovered order. The rule result is kept whenever the fallback is missing
// or fails; extraction itself never errors, only persistence can.
func (p *Processor) ProcessText(ctx context.Context, raw string) ([]*ent.Order, error) {
	parsed := p.Parser.ParseOrders(ctx, raw)
	source := constants.SourceRules

	if shortfall, items, potential := extractionShortfall(parsed); shortfall && p.Fallback != nil {
		p.Logger.Info("process.escalate",
			"rule_items", items, "potential_items", potential, "blocks", len(parsed))
		drafts, _, err := p.Fallback.ExtractOrders(ctx, llm.ExtractRequest{
			RawText:            raw,
			RuleItemCount:      items,
			PotentialItemCount: potential,
		})
		switch {
		case err != nil:
			p.Logger.Warn("process.fallback_failed", "error", err)
		case len(drafts) > 0:
			parsed = p.assembleDrafts(ctx, drafts)
			source = constants.SourceLLM
		}
	}

	orders := make([]*ent.Order, 0, len(parsed))
	for _, po := range parsed {
		status := acceptedStatus(source)
		if po.Confidence < p.Cfg.ReviewThreshold || po.HasUnpricedItems || len(po.Items) == 0 {
			status = constants.ParseStatusNeedsReview
		}
		o, err := p.Orders.CreateFromParsed(ctx, &repository.CreateOrderRequest{
			Parsed:   po,
			RawBlock: raw,
			Status:   status,
			Source:   source,
		})
		if err != nil {
			return orders, common.WrapError(err, "persist order")
		}
		orders = append(orders, o)
	}

	p.Logger.Info("process.ok",
		"orders", len(orders), "source", source,
		"request_id", common.RequestIDFromContext(ctx))
	return orders, nil
}

// extractionShortfall reports whether the battery result warrants the AI
// fallback: zero items overall, or any block whose potential-item count
// exceeds what was actually extracted.
func extractionShortfall(parsed []textparse.PartialOrder) (bool, int, int) {
	items, potential := 0, 0
	shortfall := false
	for _, po := range parsed {
		items += len(po.Items)
		potential += po.PotentialItemCount
		if po.PotentialItemCount > len(po.Items) {
			shortfall = true
		}
	}
	return shortfall || items == 0, items, potential
}

// assembleDrafts turns fallback drafts into PartialOrders: derive the
// missing price side per item, resolve regions, and score completeness the
// same way the rule path does.
func (p *Processor) assembleDrafts(ctx context.Context, drafts []llm.OrderDraft) []textparse.PartialOrder {
	out := make([]textparse.PartialOrder, 0, len(drafts))
	for _, d := range drafts {
		po := textparse.PartialOrder{
			Contact: textparse.Contact{
				Name:    d.Name,
				Phone:   d.Phone,
				Address: d.Address,
			},
		}
		for _, it := range d.Items {
			po.Items = append(po.Items, draftItem(it))
			if it.UnitPrice == 0 && it.TotalPrice == 0 {
				po.HasUnpricedItems = true
			}
		}
		if p.Regions != nil && po.Contact.Address != "" {
			if m, err := p.Regions.ResolveRegion(ctx, po.Contact.Address); err == nil && m != nil {
				po.Region = m
			}
		}
		po.Confidence = p.Cfg.Weights.Score(po.Contact, po.Items)
		out = append(out, po)
	}
	return out
}

func draftItem(d llm.ItemDraft) textparse.ExtractedItem {
	qty := d.Qty
	if qty < 1 {
		qty = 1
	}
	it := textparse.ExtractedItem{
		ID:   uuid.NewString(),
		Name: d.Name,
		Qty:  qty,
	}
	if d.UnitPrice > 0 {
		it.UnitPrice = d.UnitPrice
		it.TotalPrice = d.UnitPrice * qty
	} else if d.TotalPrice > 0 {
		it.TotalPrice = d.TotalPrice
		it.UnitPrice = int(math.Round(float64(d.TotalPrice) / float64(qty)))
		it.IsManualTotal = true
	}
	return it
}

func acceptedStatus(source constants.ExtractionSource) constants.ParseStatus {
	if source == constants.SourceLLM {
		return constants.ParseStatusLLMOK
	}
	return constants.ParseStatusRulesOK
}
