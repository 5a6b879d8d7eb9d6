package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// SanitizeOrders removes or normalizes fields that don't meet the strict
// schema so the overall document can still validate:
//   - drops unknown keys at order and item level
//   - coerces float quantities/prices to integers
//   - reduces phone values to digits
//   - drops null/empty optionals and items without a name
func SanitizeOrders(doc []byte) ([]byte, []string, error) {
	var root map[string]any
	if err := json.Unmarshal(doc, &root); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string

	rawOrders, ok := root["orders"].([]any)
	if !ok {
		return nil, nil, fmt.Errorf("sanitize: missing orders array")
	}

	allowedOrder := map[string]struct{}{
		"name": {}, "phone": {}, "address": {}, "items": {}, "confidence": {},
	}
	allowedItem := map[string]struct{}{
		"name": {}, "qty": {}, "unit_price": {}, "total_price": {},
	}

	orders := make([]any, 0, len(rawOrders))
	for _, ro := range rawOrders {
		o, ok := ro.(map[string]any)
		if !ok {
			dropped = append(dropped, "orders(entry)")
			continue
		}
		for k := range o {
			if _, ok := allowedOrder[k]; !ok {
				delete(o, k)
				dropped = append(dropped, k+"(unknown)")
			}
		}
		for _, k := range []string{"name", "address"} {
			if v, ok := o[k].(string); ok {
				s := strings.TrimSpace(v)
				if s == "" {
					delete(o, k)
					dropped = append(dropped, k+"(empty)")
				} else {
					o[k] = s
				}
			}
		}
		if v, ok := o["phone"].(string); ok {
			digits := digitsOnly(v)
			if digits == "" {
				delete(o, "phone")
				dropped = append(dropped, "phone(empty)")
			} else {
				o["phone"] = digits
			}
		}

		items, _ := o["items"].([]any)
		cleanItems := make([]any, 0, len(items))
		for _, ri := range items {
			it, ok := ri.(map[string]any)
			if !ok {
				dropped = append(dropped, "items(entry)")
				continue
			}
			for k := range it {
				if _, ok := allowedItem[k]; !ok {
					delete(it, k)
					dropped = append(dropped, "item."+k+"(unknown)")
				}
			}
			name, _ := it["name"].(string)
			if strings.TrimSpace(name) == "" {
				dropped = append(dropped, "item(no name)")
				continue
			}
			it["name"] = strings.TrimSpace(name)
			qty := coerceInt(it["qty"], 1)
			if qty < 1 {
				qty = 1
			}
			it["qty"] = qty
			for _, k := range []string{"unit_price", "total_price"} {
				if v, ok := it[k]; ok {
					n := coerceInt(v, 0)
					if n < 0 {
						n = 0
					}
					it[k] = n
				}
			}
			cleanItems = append(cleanItems, it)
		}
		o["items"] = cleanItems
		orders = append(orders, o)
	}
	root["orders"] = orders

	out, err := json.Marshal(root)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}

func coerceInt(v any, def int) int {
	switch t := v.(type) {
	case float64:
		return int(math.Round(t))
	case int:
		return t
	case string:
		n := 0
		for _, r := range t {
			if r < '0' || r > '9' {
				return def
			}
			n = n*10 + int(r-'0')
		}
		if t == "" {
			return def
		}
		return n
	default:
		return def
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
