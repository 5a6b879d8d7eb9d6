package llm

// BuildOrdersJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the model as a structured-output constraint and
// also use it locally to validate the reply.
func BuildOrdersJSONSchema() map[string]any {
	itemProps := map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"qty":         map[string]any{"type": "integer", "minimum": 1},
		"unit_price":  map[string]any{"type": "integer", "minimum": 0},
		"total_price": map[string]any{"type": "integer", "minimum": 0},
	}
	orderProps := map[string]any{
		"name":    map[string]any{"type": "string"},
		"phone":   map[string]any{"type": "string", "pattern": `^\d*$`},
		"address": map[string]any{"type": "string"},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           itemProps,
				"required":             []string{"name", "qty"},
			},
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"orders": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           orderProps,
					"required":             []string{"items"},
				},
			},
		},
		"required": []string{"orders"},
	}
}
