package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(unitPrice int) ExtractedItem {
	return ExtractedItem{Name: "Pocky", Qty: 1, UnitPrice: unitPrice, TotalPrice: unitPrice}
}

func TestScoreEmptyOrderIsZero(t *testing.T) {
	w := DefaultScoreWeights()
	assert.Zero(t, w.Score(Contact{}, nil))
}

func TestScoreWeights(t *testing.T) {
	w := DefaultScoreWeights()
	tests := []struct {
		name    string
		contact Contact
		items   []ExtractedItem
		want    float64
	}{
		{"name only", Contact{Name: "Budi"}, nil, 0.35},
		{"short name ignored", Contact{Name: "Bu"}, nil, 0},
		{"phone only", Contact{Phone: "081234567890"}, nil, 0.25},
		{"short phone ignored", Contact{Phone: "0812345"}, nil, 0},
		{"address only", Contact{Address: "Jl. Sudirman No. 1"}, nil, 0.25},
		{"short address ignored", Contact{Address: "Jl. A"}, nil, 0},
		{"unpriced item", Contact{}, []ExtractedItem{item(0)}, 0.15},
		{"priced item", Contact{}, []ExtractedItem{item(30000)}, 0.20},
		{
			"complete order capped at 1",
			Contact{Name: "Budi", Phone: "081234567890", Address: "Jl. Sudirman No. 1"},
			[]ExtractedItem{item(30000)},
			1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, w.Score(tt.contact, tt.items), 1e-9)
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	w := DefaultScoreWeights()
	base := Contact{Name: "Budi"}
	baseScore := w.Score(base, nil)

	withPhone := base
	withPhone.Phone = "081234567890"
	assert.GreaterOrEqual(t, w.Score(withPhone, nil), baseScore)

	withAddress := base
	withAddress.Address = "Jl. Sudirman No. 10"
	assert.GreaterOrEqual(t, w.Score(withAddress, nil), baseScore)

	assert.GreaterOrEqual(t, w.Score(base, []ExtractedItem{item(30000)}), baseScore)
}
