// Package server is the gRPC surface over the parsing pipeline and the
// order store.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	ordersv1 "github.com/rahadianp/pesanin/gen/orders/v1"
	"github.com/rahadianp/pesanin/internal/async"
	"github.com/rahadianp/pesanin/internal/common"
	"github.com/rahadianp/pesanin/internal/export"
	"github.com/rahadianp/pesanin/internal/ingest"
	"github.com/rahadianp/pesanin/internal/pipeline"
	"github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/textparse"
)

type OrderService struct {
	ordersv1.UnimplementedOrderServiceServer
	proc     *pipeline.Processor
	queue    async.Queue
	orders   repository.OrderRepository
	exporter *export.Service
	reader   ingest.Reader
	regions  textparse.RegionResolver
	logger   *zap.Logger
}

func NewOrderService(
	proc *pipeline.Processor,
	queue async.Queue,
	orders repository.OrderRepository,
	exporter *export.Service,
	reader ingest.Reader,
	regions textparse.RegionResolver,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		proc:     proc,
		queue:    queue,
		orders:   orders,
		exporter: exporter,
		reader:   reader,
		regions:  regions,
		logger:   logger,
	}
}

func (s *OrderService) ResolveRegion(ctx context.Context, req *ordersv1.ResolveRegionRequest) (*ordersv1.ResolveRegionResponse, error) {
	address := strings.TrimSpace(req.GetAddress())
	if address == "" {
		return nil, common.InvalidArgumentError("address is required")
	}
	if s.regions == nil {
		return nil, status.Error(codes.Unavailable, "region resolver is not enabled")
	}

	m, err := s.regions.ResolveRegion(ctx, address)
	if err != nil {
		s.logger.Warn("region lookup failed", zap.Error(err))
		return nil, common.InternalError("region lookup failed")
	}
	if m == nil {
		return &ordersv1.ResolveRegionResponse{}, nil
	}
	return &ordersv1.ResolveRegionResponse{
		Match: &ordersv1.RegionMatch{
			Province:    m.Province,
			City:        m.City,
			District:    m.District,
			Subdistrict: m.Subdistrict,
			PostalCode:  m.PostalCode,
			Confidence:  m.Confidence,
		},
	}, nil
}

func (s *OrderService) ParseText(ctx context.Context, req *ordersv1.ParseTextRequest) (*ordersv1.ParseTextResponse, error) {
	raw := req.GetRawText()
	if strings.TrimSpace(raw) == "" {
		return nil, common.InvalidArgumentError("raw_text is required")
	}

	orders, err := s.proc.ProcessText(ctx, raw)
	if err != nil {
		s.logger.Warn("parse text failed", zap.Error(err))
		return nil, common.InternalError("parse failed")
	}

	out := make([]*ordersv1.Order, 0, len(orders))
	for _, o := range orders {
		full, err := s.orders.GetOrder(ctx, o.ID)
		if err != nil {
			// fall back to the row without item edges loaded
			full = o
		}
		out = append(out, toProtoOrder(full))
	}
	return &ordersv1.ParseTextResponse{Orders: out}, nil
}

func (s *OrderService) EnqueueText(ctx context.Context, req *ordersv1.EnqueueTextRequest) (*ordersv1.EnqueueTextResponse, error) {
	raw := req.GetRawText()
	if strings.TrimSpace(raw) == "" {
		return nil, common.InvalidArgumentError("raw_text is required")
	}
	if s.queue == nil {
		return nil, status.Error(codes.Unavailable, "background queue is not enabled")
	}

	source := req.GetSource()
	if source == "" {
		source = "grpc"
	}
	if err := s.queue.Enqueue(ctx, async.Job{
		RawText:     raw,
		Source:      source,
		SubmittedAt: time.Now().UTC(),
		TraceID:     uuid.NewString(),
	}); err != nil {
		s.logger.Warn("enqueue failed", zap.Error(err))
		return nil, common.InternalError("enqueue failed")
	}
	return &ordersv1.EnqueueTextResponse{Queued: true}, nil
}

func (s *OrderService) ListOrders(ctx context.Context, req *ordersv1.ListOrdersRequest) (*ordersv1.ListOrdersResponse, error) {
	statusFilter, err := parseStatusFilter(req.GetStatus())
	if err != nil {
		return nil, err
	}
	from, err := parseDate(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrders(ctx, statusFilter, from, to)
	if err != nil {
		s.logger.Warn("list orders failed", zap.Error(err))
		return nil, common.InternalError("list orders failed")
	}

	out := make([]*ordersv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProtoOrder(o))
	}
	return &ordersv1.ListOrdersResponse{Orders: out}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, req *ordersv1.GetOrderRequest) (*ordersv1.GetOrderResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	o, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("order not found")
		}
		s.logger.Warn("get order failed", zap.String("id", id.String()), zap.Error(err))
		return nil, common.InternalError("get order failed")
	}
	return &ordersv1.GetOrderResponse{Order: toProtoOrder(o)}, nil
}

func (s *OrderService) SetOrderStatus(ctx context.Context, req *ordersv1.SetOrderStatusRequest) (*ordersv1.SetOrderStatusResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	st, ok := constants.ParseStatusFromString(req.GetStatus())
	if !ok {
		return nil, common.InvalidArgumentError("unknown status")
	}

	if err := s.orders.SetStatus(ctx, id, st); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("order not found")
		}
		s.logger.Warn("set status failed", zap.String("id", id.String()), zap.Error(err))
		return nil, common.InternalError("set status failed")
	}
	return &ordersv1.SetOrderStatusResponse{Updated: true}, nil
}

func parseStatusFilter(raw string) (*constants.ParseStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	st, ok := constants.ParseStatusFromString(raw)
	if !ok {
		return nil, common.InvalidArgumentError("unknown status")
	}
	return &st, nil
}

func parseDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

func toProtoOrder(o *ent.Order) *ordersv1.Order {
	out := &ordersv1.Order{
		Id:                 o.ID.String(),
		Status:             o.Status,
		Source:             o.Source,
		CustomerName:       o.CustomerName,
		Phone:              o.Phone,
		Address:            o.Address,
		Confidence:         o.Confidence,
		PotentialItemCount: int32(o.PotentialItemCount),
		HasUnpricedItems:   o.HasUnpricedItems,
		CreatedAt:          o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.Province != nil {
		out.Province = *o.Province
	}
	if o.City != nil {
		out.City = *o.City
	}
	if o.District != nil {
		out.District = *o.District
	}
	if o.Subdistrict != nil {
		out.Subdistrict = *o.Subdistrict
	}
	if o.PostalCode != nil {
		out.PostalCode = *o.PostalCode
	}
	if o.RegionConfidence != nil {
		out.RegionConfidence = *o.RegionConfidence
	}
	for _, it := range o.Edges.Items {
		out.Items = append(out.Items, &ordersv1.OrderItem{
			Id:            it.ID.String(),
			Name:          it.Name,
			Qty:           int32(it.Qty),
			UnitPrice:     int64(it.UnitPrice),
			TotalPrice:    int64(it.TotalPrice),
			IsManualTotal: it.IsManualTotal,
		})
	}
	return out
}
