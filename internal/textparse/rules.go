package textparse

import (
	"regexp"
	"strings"
)

// itemCandidate is what a line rule recovers before prices are derived.
// Price carries the normalized amount; PriceIsTotal says whether it was the
// line's total rather than a unit price. Priced is false for shapes that
// legitimately carry no price at all.
type itemCandidate struct {
	Name         string
	Qty          int
	Price        int
	PriceIsTotal bool
	Priced       bool
}

// lineRule is one shape in the ordered battery. Rules run top-down over the
// block; the first rule to claim a line owns it for good.
type lineRule struct {
	name  string
	re    *regexp.Regexp
	build func(m []string) (itemCandidate, bool)
}

const price = `(\d[\d.,]*(?:\s?[kK])?)`

// The battery order is load-bearing: looser shapes are strict supersets of
// stricter ones on ambiguous lines. Explicit @-priced quantity-first shapes
// run before "qty name trailing-number", which runs before name-first
// shapes, which run before the bare "name trailing-number" catch-all.
var itemRules = []lineRule{
	{
		// 2x Pocky Matcha @30000
		name: "qty_x_name_at_price",
		re:   regexp.MustCompile(`(?i)^(\d+)\s*x\s+(.+?)\s*@\s*` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			return unitPriced(m[2], m[1], m[3])
		},
	},
	{
		// 3x coca cola 21.000 (trailing number is the unit price)
		name: "qty_x_name_price",
		re:   regexp.MustCompile(`(?i)^(\d+)\s*x\s+(.+?)\s+` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			return unitPriced(m[2], m[1], m[3])
		},
	},
	{
		// Pocky - 2 - 60000 (dash-separated, trailing number is the total)
		name: "name_dash_qty_dash_price",
		re:   regexp.MustCompile(`^(.+?)\s*-\s*(\d+)\s*-\s*` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			return totalPriced(m[1], m[2], m[3])
		},
	},
	{
		// - Pocky 30000 x2 / * Chitato 15k
		name: "bullet_name_price_qty",
		re:   regexp.MustCompile(`(?i)^[-*•]\s*(.+?)\s+` + price + `(?:\s*x\s*(\d+))?$`),
		build: func(m []string) (itemCandidate, bool) {
			qty := m[3]
			if qty == "" {
				qty = "1"
			}
			return unitPriced(m[1], qty, m[2])
		},
	},
	{
		// 1. Pocky @30000 (2pcs) — numbered list entry
		name: "numbered_item",
		re: regexp.MustCompile(`(?i)^\d+[.)]\s+(.+?)` +
			`(?:\s*@\s*` + price + `)?` +
			`(?:\s*\(\s*(\d+)\s*(?:pcs|pc|buah|biji|x)?\s*\))?$`),
		build: func(m []string) (itemCandidate, bool) {
			qty := m[3]
			if qty == "" {
				qty = "1"
			}
			if m[2] == "" {
				return unpriced(m[1], qty)
			}
			return unitPriced(m[1], qty, m[2])
		},
	},
	{
		// 2 Pocky @30000
		name: "qty_name_at_price",
		re:   regexp.MustCompile(`^(\d+)\s+(.+?)\s*@\s*` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			return unitPriced(m[2], m[1], m[3])
		},
	},
	{
		// 3 Chitato 45000 (trailing number is the line total)
		name: "qty_name_total",
		re:   regexp.MustCompile(`^(\d+)\s+(.+?)\s+` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			return totalPriced(m[2], m[1], m[3])
		},
	},
	{
		// Pocky @30000 x2 / Pocky @30000
		name: "name_at_price_qty",
		re:   regexp.MustCompile(`(?i)^(.+?)\s*@\s*` + price + `(?:\s*x\s*(\d+))?$`),
		build: func(m []string) (itemCandidate, bool) {
			qty := m[3]
			if qty == "" {
				qty = "1"
			}
			return unitPriced(m[1], qty, m[2])
		},
	},
	{
		// Aqua 600ml 6 18000 (name first; middle integer is the quantity,
		// trailing number the total — the shape is genuinely ambiguous and
		// this reading is applied consistently)
		name: "name_qty_total",
		re:   regexp.MustCompile(`^(.+?)\s+(\d+)\s+` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			if !priceLike(m[3]) {
				return itemCandidate{}, false
			}
			return totalPriced(m[1], m[2], m[3])
		},
	},
	{
		// Pocky 30000 (quantity defaults to 1)
		name: "name_price",
		re:   regexp.MustCompile(`^(.+?)\s+` + price + `$`),
		build: func(m []string) (itemCandidate, bool) {
			if !priceLike(m[2]) {
				return itemCandidate{}, false
			}
			return unitPriced(m[1], "1", m[2])
		},
	},
}

func unitPriced(name, qty, token string) (itemCandidate, bool) {
	return candidate(name, qty, token, false, true)
}

func totalPriced(name, qty, token string) (itemCandidate, bool) {
	return candidate(name, qty, token, true, true)
}

func unpriced(name, qty string) (itemCandidate, bool) {
	return candidate(name, qty, "", false, false)
}

func candidate(name, qty, token string, isTotal, priced bool) (itemCandidate, bool) {
	name = strings.TrimSpace(name)
	if !validItemName(name) {
		return itemCandidate{}, false
	}
	c := itemCandidate{
		Name:         name,
		Qty:          clampQty(parseInt(qty)),
		PriceIsTotal: isTotal,
		Priced:       priced,
	}
	if priced {
		c.Price = NormalizePrice(token)
	}
	return c, true
}

// validItemName rejects names that are purely numeric, begin with a
// contact-field keyword, or begin with a street-address token, so contact
// and address lines never masquerade as items.
func validItemName(name string) bool {
	if name == "" || reDigitsOnly.MatchString(name) {
		return false
	}
	return !startsWithContactKeyword(name) && !startsWithAddressMarker(name)
}

// priceLike guards the loosest name-first shapes: a bare trailing number is
// only a price when it carries a separator, a k suffix, or 3+ digits.
// "Jl. Melati No. 18" must not become an 18-rupiah item, and a trailing
// phone number (leading zero) is never a price.
func priceLike(token string) bool {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "0") {
		return false
	}
	if strings.ContainsAny(token, ".,") {
		return true
	}
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(token)), "k") {
		return true
	}
	return countDigits(token) >= 3
}

func clampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

func parseInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
