package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/llm"
	"github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/textparse"
)

type stubOrders struct {
	created []*repository.CreateOrderRequest
	fail    bool
}

func (s *stubOrders) CreateFromParsed(_ context.Context, req *repository.CreateOrderRequest) (*ent.Order, error) {
	if s.fail {
		return nil, errors.New("db down")
	}
	s.created = append(s.created, req)
	return &ent.Order{ID: uuid.New()}, nil
}

func (s *stubOrders) ListOrders(context.Context, *constants.ParseStatus, *time.Time, *time.Time) ([]*ent.Order, error) {
	return nil, nil
}

func (s *stubOrders) GetOrder(context.Context, uuid.UUID) (*ent.Order, error) {
	return nil, errors.New("not found")
}

func (s *stubOrders) SetStatus(context.Context, uuid.UUID, constants.ParseStatus) error {
	return nil
}

type stubExtractor struct {
	drafts []llm.OrderDraft
	err    error
	calls  int
	lastRq llm.ExtractRequest
}

func (s *stubExtractor) ExtractOrders(_ context.Context, req llm.ExtractRequest) ([]llm.OrderDraft, []byte, error) {
	s.calls++
	s.lastRq = req
	return s.drafts, nil, s.err
}

func newTestProcessor(orders *stubOrders, fallback llm.OrderExtractor) *Processor {
	logger := slog.New(slog.DiscardHandler)
	parser := textparse.NewParser(logger, textparse.Config{}, nil)
	return NewProcessor(logger, Config{}, parser, orders, nil, fallback)
}

const completeOrder = `Nama: Budi Santoso
HP: 081234567890
Alamat: Jl. Margonda Raya No. 10, Beji, Depok, Jawa Barat
2x Pocky Chocolate @15.000
1 Chitato 25000`

func TestProcessTextRulesSucceed(t *testing.T) {
	orders := &stubOrders{}
	fallback := &stubExtractor{}
	p := newTestProcessor(orders, fallback)

	got, err := p.ProcessText(context.Background(), completeOrder)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Zero(t, fallback.calls, "complete rule result must not escalate")
	require.Len(t, orders.created, 1)
	req := orders.created[0]
	assert.Equal(t, constants.ParseStatusRulesOK, req.Status)
	assert.Equal(t, constants.SourceRules, req.Source)
	assert.Equal(t, "Budi Santoso", req.Parsed.Contact.Name)
	assert.Len(t, req.Parsed.Items, 2)
}

func TestProcessTextEscalatesOnZeroItems(t *testing.T) {
	orders := &stubOrders{}
	fallback := &stubExtractor{
		drafts: []llm.OrderDraft{{
			Name:    "Siti Aminah",
			Phone:   "081298765432",
			Address: "Jl. Sudirman No. 5, Jakarta Pusat",
			Items: []llm.ItemDraft{
				{Name: "Keripik Singkong", Qty: 3, UnitPrice: 12000},
			},
		}},
	}
	p := newTestProcessor(orders, fallback)

	raw := "pesanan utk siti aminah 081298765432\nkirim jl sudirman no 5 jakarta pusat\nkeripik singkong yang pedes tiga bungkus ya"
	got, err := p.ProcessText(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, raw, fallback.lastRq.RawText)

	require.Len(t, orders.created, 1)
	req := orders.created[0]
	assert.Equal(t, constants.SourceLLM, req.Source)
	assert.Equal(t, constants.ParseStatusLLMOK, req.Status)
	require.Len(t, req.Parsed.Items, 1)
	it := req.Parsed.Items[0]
	assert.Equal(t, "Keripik Singkong", it.Name)
	assert.Equal(t, 3, it.Qty)
	assert.Equal(t, 12000, it.UnitPrice)
	assert.Equal(t, 36000, it.TotalPrice)
	assert.NotEmpty(t, it.ID)
}

func TestProcessTextKeepsRuleResultOnFallbackError(t *testing.T) {
	orders := &stubOrders{}
	fallback := &stubExtractor{err: errors.New("timeout")}
	p := newTestProcessor(orders, fallback)

	_, err := p.ProcessText(context.Background(), "halo kak mau pesen dong bisa ga ya")
	require.NoError(t, err)

	assert.Equal(t, 1, fallback.calls)
	require.Len(t, orders.created, 1)
	assert.Equal(t, constants.SourceRules, orders.created[0].Source)
	assert.Equal(t, constants.ParseStatusNeedsReview, orders.created[0].Status)
}

func TestProcessTextNoFallbackConfigured(t *testing.T) {
	orders := &stubOrders{}
	p := newTestProcessor(orders, nil)

	_, err := p.ProcessText(context.Background(), "halo kak mau pesen dong bisa ga ya")
	require.NoError(t, err)

	require.Len(t, orders.created, 1)
	assert.Equal(t, constants.SourceRules, orders.created[0].Source)
	assert.Equal(t, constants.ParseStatusNeedsReview, orders.created[0].Status)
}

func TestProcessTextUnpricedFlagsReview(t *testing.T) {
	orders := &stubOrders{}
	p := newTestProcessor(orders, nil)

	raw := `Nama: Budi Santoso
HP: 081234567890
Alamat: Jl. Margonda Raya No. 10, Beji, Depok, Jawa Barat
2x Pocky Chocolate @15.000
2 ayam goreng`
	_, err := p.ProcessText(context.Background(), raw)
	require.NoError(t, err)

	require.Len(t, orders.created, 1)
	assert.True(t, orders.created[0].Parsed.HasUnpricedItems)
	assert.Equal(t, constants.ParseStatusNeedsReview, orders.created[0].Status)
}

func TestProcessTextPersistError(t *testing.T) {
	orders := &stubOrders{fail: true}
	p := newTestProcessor(orders, nil)

	_, err := p.ProcessText(context.Background(), completeOrder)
	assert.Error(t, err)
}

func TestDraftItemDerivesUnitFromTotal(t *testing.T) {
	it := draftItem(llm.ItemDraft{Name: "Nasi Kotak", Qty: 4, TotalPrice: 100000})
	assert.Equal(t, 25000, it.UnitPrice)
	assert.Equal(t, 100000, it.TotalPrice)
	assert.True(t, it.IsManualTotal)

	clamped := draftItem(llm.ItemDraft{Name: "Teh Botol", TotalPrice: 5000})
	assert.Equal(t, 1, clamped.Qty)
	assert.Equal(t, 5000, clamped.UnitPrice)
}

func TestExtractionShortfall(t *testing.T) {
	full := []textparse.PartialOrder{{
		Items:              []textparse.ExtractedItem{{Name: "Pocky", Qty: 2}},
		PotentialItemCount: 1,
	}}
	short, items, potential := extractionShortfall(full)
	assert.False(t, short)
	assert.Equal(t, 1, items)
	assert.Equal(t, 1, potential)

	undershot := []textparse.PartialOrder{{
		Items:              []textparse.ExtractedItem{{Name: "Pocky", Qty: 2}},
		PotentialItemCount: 3,
	}}
	short, _, _ = extractionShortfall(undershot)
	assert.True(t, short)

	empty := []textparse.PartialOrder{{}}
	short, _, _ = extractionShortfall(empty)
	assert.True(t, short)
}
