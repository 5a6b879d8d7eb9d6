package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/repository"
)

type stubOrders struct {
	orders []*ent.Order
	err    error
}

func (s *stubOrders) CreateFromParsed(context.Context, *repository.CreateOrderRequest) (*ent.Order, error) {
	return nil, errors.New("not implemented")
}

func (s *stubOrders) ListOrders(context.Context, *constants.ParseStatus, *time.Time, *time.Time) ([]*ent.Order, error) {
	return s.orders, s.err
}

func (s *stubOrders) GetOrder(context.Context, uuid.UUID) (*ent.Order, error) {
	return nil, errors.New("not implemented")
}

func (s *stubOrders) SetStatus(context.Context, uuid.UUID, constants.ParseStatus) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestExportOrdersXLSX(t *testing.T) {
	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	orders := &stubOrders{orders: []*ent.Order{
		{
			ID:           uuid.New(),
			Status:       string(constants.ParseStatusRulesOK),
			Source:       string(constants.SourceRules),
			CustomerName: "Budi Santoso",
			Phone:        "081234567890",
			Address:      "Jl. Margonda Raya No. 10, Beji, Depok",
			Subdistrict:  strPtr("Kemiri Muka"),
			District:     strPtr("Beji"),
			City:         strPtr("Depok"),
			Confidence:   0.95,
			CreatedAt:    created,
			Edges: ent.OrderEdges{Items: []*ent.OrderItem{
				{ID: uuid.New(), Name: "Pocky Chocolate", Qty: 2, UnitPrice: 15000, TotalPrice: 30000},
				{ID: uuid.New(), Name: "Chitato", Qty: 1, UnitPrice: 25000, TotalPrice: 25000},
			}},
		},
		{
			ID:           uuid.New(),
			Status:       string(constants.ParseStatusNeedsReview),
			Source:       string(constants.SourceRules),
			CustomerName: "Siti",
			Confidence:   0.35,
			CreatedAt:    created,
		},
	}}

	svc := NewService(orders, slog.New(slog.DiscardHandler))
	data, err := svc.ExportOrdersXLSX(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	// header + two item rows + one itemless order row
	require.Len(t, rows, 4)
	assert.Equal(t, "Customer", rows[0][1])
	assert.Equal(t, "Budi Santoso", rows[1][1])
	assert.Equal(t, "Kemiri Muka, Beji, Depok", rows[1][4])
	assert.Equal(t, "Pocky Chocolate", rows[1][5])
	assert.Equal(t, "Chitato", rows[2][5])
	assert.Equal(t, "Siti", rows[3][1])
}

func TestExportOrdersXLSXQueryError(t *testing.T) {
	svc := NewService(&stubOrders{err: errors.New("db down")}, slog.New(slog.DiscardHandler))
	_, err := svc.ExportOrdersXLSX(context.Background(), nil, nil, nil)
	assert.Error(t, err)
}
