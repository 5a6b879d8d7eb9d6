package textparse

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	match *RegionMatch
	err   error
	calls int
}

func (s *stubResolver) ResolveRegion(_ context.Context, _ string) (*RegionMatch, error) {
	s.calls++
	return s.match, s.err
}

func TestParseOrdersCompleteBlock(t *testing.T) {
	p := NewParser(nil, Config{}, nil)
	orders := p.ParseOrders(context.Background(),
		"Nama: Budi\nHP: 081234567890\nAlamat: Jl. Sudirman No. 1\n2x Pocky @30000")
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "Budi", o.Contact.Name)
	assert.Equal(t, "081234567890", o.Contact.Phone)
	assert.Contains(t, o.Contact.Address, "Jl. Sudirman")
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Pocky", o.Items[0].Name)
	assert.GreaterOrEqual(t, o.Confidence, 0.95)
}

func TestParseOrdersMultiBlock(t *testing.T) {
	raw := strings.Join([]string{
		"Nama: Budi",
		"HP: 081234567890",
		"2x Pocky @30000",
		"",
		"Nama: Siti",
		"HP: 089876543210",
		"3 Chitato 45000",
	}, "\n")

	p := NewParser(nil, Config{}, nil)
	orders := p.ParseOrders(context.Background(), raw)
	require.Len(t, orders, 2)
	assert.Equal(t, "Budi", orders[0].Contact.Name)
	assert.Equal(t, "Siti", orders[1].Contact.Name)
	require.Len(t, orders[0].Items, 1)
	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, 15000, orders[1].Items[0].UnitPrice)
}

func TestParseOrdersRegionMatchMerged(t *testing.T) {
	res := &stubResolver{match: &RegionMatch{City: "Depok", Confidence: 0.8}}
	p := NewParser(nil, Config{}, res)
	orders := p.ParseOrders(context.Background(), "Budi\nAlamat: Jl. Margonda Raya No. 10\n2x Pocky @30000")
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].Region)
	assert.Equal(t, "Depok", orders[0].Region.City)
	assert.Equal(t, 1, res.calls)
}

func TestParseOrdersLowConfidenceRegionDropped(t *testing.T) {
	res := &stubResolver{match: &RegionMatch{City: "Depok", Confidence: 0.2}}
	p := NewParser(nil, Config{}, res)
	orders := p.ParseOrders(context.Background(), "Budi\nAlamat: Jl. Margonda Raya No. 10\n2x Pocky @30000")
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].Region)
	// the raw address text is always preserved
	assert.Contains(t, orders[0].Contact.Address, "Margonda")
}

func TestParseOrdersResolverFailureDegrades(t *testing.T) {
	res := &stubResolver{err: errors.New("gazetteer down")}
	p := NewParser(nil, Config{}, res)
	orders := p.ParseOrders(context.Background(), "Budi\nAlamat: Jl. Margonda Raya No. 10\n2x Pocky @30000")
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].Region)
	assert.Contains(t, orders[0].Contact.Address, "Margonda")
}

func TestParseOrdersNoRecognizableStructure(t *testing.T) {
	p := NewParser(nil, Config{}, nil)
	orders := p.ParseOrders(context.Background(), "terima kasih banyak yaa")
	require.Len(t, orders, 1)
	o := orders[0]
	assert.Empty(t, o.Items)
	assert.Empty(t, o.Contact.Phone)
	assert.Zero(t, o.PotentialItemCount)
	// free text lands in the name slot at most; never more than one weight
	assert.LessOrEqual(t, o.Confidence, 0.35)
}

func TestParseOrdersPhoneOnlyBlock(t *testing.T) {
	p := NewParser(nil, Config{}, nil)
	orders := p.ParseOrders(context.Background(), "081234567890")
	require.Len(t, orders, 1)
	o := orders[0]
	assert.Empty(t, o.Items)
	assert.Zero(t, o.PotentialItemCount)
	assert.Equal(t, "081234567890", o.Contact.Phone)
}

func TestParseOrdersPotentialCountOnOriginalBlock(t *testing.T) {
	// the counter sees the original block, including lines the extractor
	// claimed, so a fully-matched block shows no shortfall
	p := NewParser(nil, Config{}, nil)
	orders := p.ParseOrders(context.Background(), "Nama: Budi\n2x Pocky @30000\n3 Chitato 45000")
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].PotentialItemCount)
	assert.Len(t, orders[0].Items, 2)
}

func TestParseOrdersDeterministicAcrossRuns(t *testing.T) {
	raw := "Nama: Budi\n2x Pocky @30000\n\nNama: Siti\n3 Chitato 45000"
	p := NewParser(nil, Config{}, nil)
	a := p.ParseOrders(context.Background(), raw)
	b := p.ParseOrders(context.Background(), raw)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Contact, b[i].Contact)
		assert.Equal(t, a[i].Confidence, b[i].Confidence)
		require.Len(t, b[i].Items, len(a[i].Items))
		for j := range a[i].Items {
			assert.Equal(t, a[i].Items[j].Name, b[i].Items[j].Name)
			assert.Equal(t, a[i].Items[j].UnitPrice, b[i].Items[j].UnitPrice)
		}
	}
}
