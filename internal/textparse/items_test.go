package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItemsQuantityFirstShapes(t *testing.T) {
	res := ExtractItems("2x Pocky Matcha @30000\n3 Chitato 45000")
	require.Len(t, res.Items, 2)
	assert.False(t, res.HasUnpricedItems)

	pocky := res.Items[0]
	assert.Equal(t, "Pocky Matcha", pocky.Name)
	assert.Equal(t, 2, pocky.Qty)
	assert.Equal(t, 30000, pocky.UnitPrice)
	assert.Equal(t, 60000, pocky.TotalPrice)
	assert.False(t, pocky.IsManualTotal)

	chitato := res.Items[1]
	assert.Equal(t, "Chitato", chitato.Name)
	assert.Equal(t, 3, chitato.Qty)
	assert.Equal(t, 15000, chitato.UnitPrice)
	assert.Equal(t, 45000, chitato.TotalPrice)
	assert.True(t, chitato.IsManualTotal)
}

func TestExtractItemsTrailingPriceNotInName(t *testing.T) {
	res := ExtractItems("3x coca cola 21.000")
	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.Equal(t, "coca cola", it.Name)
	assert.NotContains(t, it.Name, "21")
	assert.Equal(t, 3, it.Qty)
	assert.Equal(t, 21000, it.UnitPrice)
}

func TestExtractItemsLineShapes(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  ExtractedItem
		total bool
	}{
		{
			name: "dash separated",
			line: "Pocky - 2 - 60000",
			want: ExtractedItem{Name: "Pocky", Qty: 2, UnitPrice: 30000, TotalPrice: 60000, IsManualTotal: true},
		},
		{
			name: "bullet with trailing qty",
			line: "- Chitato 15000 x2",
			want: ExtractedItem{Name: "Chitato", Qty: 2, UnitPrice: 15000, TotalPrice: 30000},
		},
		{
			name: "bullet without qty",
			line: "* Indomie Goreng 3.500",
			want: ExtractedItem{Name: "Indomie Goreng", Qty: 1, UnitPrice: 3500, TotalPrice: 3500},
		},
		{
			name: "numbered with at-price and pcs",
			line: "1. Pocky @30000 (2pcs)",
			want: ExtractedItem{Name: "Pocky", Qty: 2, UnitPrice: 30000, TotalPrice: 60000},
		},
		{
			name: "qty name at price",
			line: "2 Pocky @30000",
			want: ExtractedItem{Name: "Pocky", Qty: 2, UnitPrice: 30000, TotalPrice: 60000},
		},
		{
			name: "name at price trailing qty",
			line: "Pocky @30000 x2",
			want: ExtractedItem{Name: "Pocky", Qty: 2, UnitPrice: 30000, TotalPrice: 60000},
		},
		{
			name: "name qty total",
			line: "Aqua 600ml 6 18000",
			want: ExtractedItem{Name: "Aqua 600ml", Qty: 6, UnitPrice: 3000, TotalPrice: 18000, IsManualTotal: true},
		},
		{
			name: "bare name price",
			line: "Pocky Matcha 30000",
			want: ExtractedItem{Name: "Pocky Matcha", Qty: 1, UnitPrice: 30000, TotalPrice: 30000},
		},
		{
			name: "k suffix price",
			line: "2x Teh Botol 3,5k",
			want: ExtractedItem{Name: "Teh Botol", Qty: 2, UnitPrice: 3500, TotalPrice: 7000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ExtractItems(tt.line)
			require.Len(t, res.Items, 1)
			got := res.Items[0]
			assert.NotEmpty(t, got.ID)
			got.ID = ""
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractItemsHeaderPrefixStripped(t *testing.T) {
	res := ExtractItems("Pesanan: 2x Pocky @30000")
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Pocky", res.Items[0].Name)
}

func TestExtractItemsUnpricedPass(t *testing.T) {
	res := ExtractItems("2 ayam goreng")
	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.Equal(t, "ayam goreng", it.Name)
	assert.Equal(t, 2, it.Qty)
	assert.Equal(t, 0, it.UnitPrice)
	assert.Equal(t, 0, it.TotalPrice)
	assert.True(t, res.HasUnpricedItems)
}

func TestExtractItemsUnpricedPassSkipsCapturedNames(t *testing.T) {
	res := ExtractItems("2x ayam goreng @15000\n3 ayam goreng")
	require.Len(t, res.Items, 1)
	assert.Equal(t, "ayam goreng", res.Items[0].Name)
	assert.False(t, res.HasUnpricedItems)
}

func TestExtractItemsGuards(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"phone line", "081234567890"},
		{"phone line with punctuation", "+62 812-3456-7890"},
		{"contact keyword name", "HP: 081234567890"},
		{"labeled name line", "Nama: Budi Santoso 123"},
		{"address line small trailing number", "Jl. Sudirman No. 1"},
		{"trailing phone number", "pesanan utk siti aminah 081298765432"},
		{"bare header line", "Pesanan:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ExtractItems(tt.in)
			assert.Empty(t, res.Items)
			assert.Empty(t, res.ClaimedLines)
		})
	}
}

func TestExtractItemsNoDoubleClaim(t *testing.T) {
	block := "2x Pocky @30000\n2x Pocky @30000\n- Chitato 15000\n3 Aqua 9000"
	res := ExtractItems(block)

	seen := make(map[string]int)
	for _, line := range res.ClaimedLines {
		seen[line]++
	}
	for line, n := range seen {
		assert.Equal(t, 1, n, "line %q claimed more than once", line)
	}
}

func TestExtractItemsDedup(t *testing.T) {
	block := "2x Pocky @30000\nPesanan: 2x Pocky @30000"
	res := ExtractItems(block)
	require.Len(t, res.Items, 1)

	// running twice yields the same item key set
	again := ExtractItems(block)
	require.Len(t, again.Items, len(res.Items))
	for i := range res.Items {
		assert.Equal(t, res.Items[i].Name, again.Items[i].Name)
		assert.Equal(t, res.Items[i].Qty, again.Items[i].Qty)
		assert.Equal(t, res.Items[i].UnitPrice, again.Items[i].UnitPrice)
	}
}

func TestExtractItemsPriceDerivationConsistent(t *testing.T) {
	block := "2x Pocky @30000\n3 Chitato 45000\nAqua 600ml 7 20000\n- Indomie 3.500 x4"
	res := ExtractItems(block)
	require.NotEmpty(t, res.Items)
	for _, it := range res.Items {
		if it.IsManualTotal {
			want := int(float64(it.TotalPrice)/float64(it.Qty) + 0.5)
			assert.Equal(t, want, it.UnitPrice, "item %q", it.Name)
		} else {
			assert.Equal(t, it.Qty*it.UnitPrice, it.TotalPrice, "item %q", it.Name)
		}
	}
}

func TestExtractItemsAtPriceNeverFallsThrough(t *testing.T) {
	// a line with @ must not be read as "name contains the price digits"
	res := ExtractItems("Keripik Balado @25000")
	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.Equal(t, "Keripik Balado", it.Name)
	assert.Equal(t, 25000, it.UnitPrice)
	assert.Equal(t, 1, it.Qty)
}

func TestExtractItemsQtyClampedToOne(t *testing.T) {
	res := ExtractItems("0x Keripik @5000")
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Items[0].Qty)
}
