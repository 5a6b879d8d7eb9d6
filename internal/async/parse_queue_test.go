package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/pipeline"
	"github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/textparse"
)

type countingOrders struct {
	mu      sync.Mutex
	created int
}

func (s *countingOrders) CreateFromParsed(context.Context, *repository.CreateOrderRequest) (*ent.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created++
	return &ent.Order{ID: uuid.New()}, nil
}

func (s *countingOrders) ListOrders(context.Context, *constants.ParseStatus, *time.Time, *time.Time) ([]*ent.Order, error) {
	return nil, nil
}

func (s *countingOrders) GetOrder(context.Context, uuid.UUID) (*ent.Order, error) {
	return nil, errors.New("not found")
}

func (s *countingOrders) SetStatus(context.Context, uuid.UUID, constants.ParseStatus) error {
	return nil
}

func (s *countingOrders) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}

func newTestQueue(orders *countingOrders, opts ...Option) *ParseQueue {
	logger := slog.New(slog.DiscardHandler)
	parser := textparse.NewParser(logger, textparse.Config{}, nil)
	proc := pipeline.NewProcessor(logger, pipeline.Config{}, parser, orders, nil, nil)
	return NewParseQueue(proc, logger, opts...)
}

func TestParseQueueDrainsOnShutdown(t *testing.T) {
	orders := &countingOrders{}
	q := newTestQueue(orders, WithWorkers(2), WithQueueSize(8))

	raw := "Nama: Budi Santoso\nHP: 081234567890\n2x Pocky @15.000"
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{RawText: raw, Source: "test"}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 5, orders.count())
}

func TestParseQueueEnqueueAfterShutdown(t *testing.T) {
	orders := &countingOrders{}
	q := newTestQueue(orders, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{RawText: "abc", Source: "late"}))
	assert.Zero(t, orders.count())
}

func TestParseQueueShutdownIdempotent(t *testing.T) {
	q := newTestQueue(&countingOrders{}, WithWorkers(1))
	ctx := context.Background()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
