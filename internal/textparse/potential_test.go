package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountPotentialItems(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"phone line never counts", "081234567890", 0},
		{"labeled contact lines skipped", "Nama: Budi\nHP: 081234567890", 0},
		{"address prefix skipped", "Jl. Sudirman No. 1", 0},
		{"region keyword mid-line skipped", "Ruko 2 Blok kecamatan Sukmajaya 45000", 0},
		{"bare header skipped", "Pesanan:", 0},
		{"tabular dump skipped", "Pocky,2,30000,60000", 0},
		{"bullet counts", "- Pocky", 1},
		{"qty x prefix counts", "2x Pocky Matcha", 1},
		{"numbered prefix counts", "1. Pocky", 1},
		{"digit then uppercase counts", "3 Chitato", 1},
		{"at-price shape counts", "Pocky @30000", 1},
		{"trailing number counts", "Pocky Matcha 30000", 1},
		{"qty suffix counts", "Pocky x2", 1},
		{"mixed block", "Nama: Budi\n2x Pocky @30000\n3 Chitato 45000\n081234567890", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountPotentialItems(tt.in))
		})
	}
}
