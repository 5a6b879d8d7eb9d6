package textparse

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// reUnpricedLine matches "small integer, optional x, letters-and-spaces
// name" — a quantity and a name with no discoverable price.
var reUnpricedLine = regexp.MustCompile(`(?i)^(\d{1,3})\s*(?:x\s+)?([a-z][a-z ]*)$`)

// ExtractItems runs the ordered line-shape battery over one block. Every
// line is claimed by at most one rule; a claimed line is invisible to every
// rule that runs later. Results are deduplicated by (name, qty, unit price)
// and a supplemental pass turns leftover "qty name" lines into unpriced
// items.
func ExtractItems(block string) ExtractResult {
	lines := splitLines(block)
	claims := make(map[string]struct{})
	var res ExtractResult

	claim := func(line string) {
		claims[line] = struct{}{}
		res.ClaimedLines = append(res.ClaimedLines, line)
	}

	for _, rule := range itemRules {
		for _, raw := range lines {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			if _, taken := claims[line]; taken {
				continue
			}
			// phone numbers must never be read as quantities or prices
			if isPhoneLine(line) {
				continue
			}
			body := stripSectionHeader(line)
			if body == "" {
				continue
			}
			m := rule.re.FindStringSubmatch(body)
			if m == nil {
				continue
			}
			c, ok := rule.build(m)
			if !ok {
				continue
			}
			claim(line)
			res.Items = append(res.Items, newItem(c))
			if !c.Priced {
				res.HasUnpricedItems = true
			}
		}
	}

	res.Items = dedupItems(res.Items)

	// supplemental pass: quantity plus a bare name, no price anywhere
	seen := make(map[string]struct{}, len(res.Items))
	for _, it := range res.Items {
		seen[strings.ToLower(it.Name)] = struct{}{}
	}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, taken := claims[line]; taken {
			continue
		}
		if isPhoneLine(line) || startsWithContactKeyword(line) {
			continue
		}
		m := reUnpricedLine.FindStringSubmatch(stripSectionHeader(line))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[2])
		if !validItemName(name) {
			continue
		}
		if _, dup := seen[strings.ToLower(name)]; dup {
			continue
		}
		seen[strings.ToLower(name)] = struct{}{}
		claim(line)
		res.Items = append(res.Items, newItem(itemCandidate{
			Name: name,
			Qty:  clampQty(parseInt(m[1])),
		}))
		res.HasUnpricedItems = true
	}

	return res
}

// newItem derives the non-authoritative price side from the authoritative
// one: total from unit*qty, or unit from round(total/qty).
func newItem(c itemCandidate) ExtractedItem {
	it := ExtractedItem{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Qty:           clampQty(c.Qty),
		IsManualTotal: c.PriceIsTotal,
	}
	if c.PriceIsTotal {
		it.TotalPrice = c.Price
		it.UnitPrice = int(math.Round(float64(c.Price) / float64(it.Qty)))
	} else {
		it.UnitPrice = c.Price
		it.TotalPrice = c.Price * it.Qty
	}
	return it
}

func dedupItems(items []ExtractedItem) []ExtractedItem {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		key := fmt.Sprintf("%s|%d|%d", strings.ToLower(it.Name), it.Qty, it.UnitPrice)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

func splitLines(block string) []string {
	return strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
}
