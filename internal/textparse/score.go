package textparse

import "unicode/utf8"

// ScoreWeights are the additive completeness weights. The defaults are
// heuristic constants, kept configurable on purpose.
type ScoreWeights struct {
	Name        float64 // name present, longer than 2 runes
	Phone       float64 // phone present, 8+ digits
	Address     float64 // address present, longer than 10 runes
	Items       float64 // at least one item
	PricedBonus float64 // at least one item with a positive unit price
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Name:        0.35,
		Phone:       0.25,
		Address:     0.25,
		Items:       0.15,
		PricedBonus: 0.05,
	}
}

// Score computes the 0..1 completeness estimate for a partially built
// order. It is a routing signal for human review, not a correctness
// guarantee. An order with nothing recognized scores exactly 0.
func (w ScoreWeights) Score(c Contact, items []ExtractedItem) float64 {
	score := 0.0
	if utf8.RuneCountInString(c.Name) > 2 {
		score += w.Name
	}
	if len(c.Phone) >= 8 {
		score += w.Phone
	}
	if utf8.RuneCountInString(c.Address) > 10 {
		score += w.Address
	}
	if len(items) > 0 {
		score += w.Items
		for _, it := range items {
			if it.UnitPrice > 0 {
				score += w.PricedBonus
				break
			}
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
