package textparse

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"30000", 30000},
		{"21.000", 21000},
		{"30,000", 30000},
		{"1.250.000", 1250000},
		{"12 000", 12000},
		{"30k", 30000},
		{"30K", 30000},
		{"30 k", 30000},
		{"3.5k", 3500},
		{"3,5k", 3500},
		{"1,25k", 1250},
		{"k", 0},
		{"abc", 0},
		{"12abc", 0},
		{"...", 0},
		{"0", 0},
		{"5", 5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePrice(tt.in))
		})
	}
}

func TestNormalizePriceIdempotent(t *testing.T) {
	// once the output is a plain digit string, renormalizing is stable
	for _, in := range []string{"21.000", "3.5k", "30k", "1.250.000", "987"} {
		once := NormalizePrice(in)
		twice := NormalizePrice(strconv.Itoa(once))
		assert.Equal(t, once, twice, "input %q", in)
	}
}
