package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/gen/ent/order"
	"github.com/rahadianp/pesanin/internal/textparse"
)

// CreateOrderRequest wraps parameters for persisting one parsed order.
type CreateOrderRequest struct {
	Parsed   textparse.PartialOrder
	RawBlock string
	Status   constants.ParseStatus
	Source   constants.ExtractionSource
}

type OrderRepository interface {
	CreateFromParsed(ctx context.Context, req *CreateOrderRequest) (*ent.Order, error)
	ListOrders(ctx context.Context, status *constants.ParseStatus, from, to *time.Time) ([]*ent.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*ent.Order, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ParseStatus) error
}

type orderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderRepository(client *ent.Client, logger *slog.Logger) OrderRepository {
	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) CreateFromParsed(ctx context.Context, req *CreateOrderRequest) (*ent.Order, error) {
	p := req.Parsed

	create := r.client.Order.Create().
		SetStatus(string(req.Status)).
		SetSource(string(req.Source)).
		SetCustomerName(p.Contact.Name).
		SetPhone(p.Contact.Phone).
		SetAddress(p.Contact.Address).
		SetConfidence(p.Confidence).
		SetPotentialItemCount(p.PotentialItemCount).
		SetHasUnpricedItems(p.HasUnpricedItems).
		SetRawBlock(req.RawBlock)

	if m := p.Region; m != nil {
		create = create.
			SetProvince(m.Province).
			SetCity(m.City).
			SetDistrict(m.District).
			SetSubdistrict(m.Subdistrict).
			SetPostalCode(m.PostalCode).
			SetRegionConfidence(m.Confidence)
	}

	o, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create order", "error", err)
		return nil, err
	}

	if len(p.Items) > 0 {
		bulk := make([]*ent.OrderItemCreate, len(p.Items))
		for i, it := range p.Items {
			bulk[i] = r.client.OrderItem.Create().
				SetName(it.Name).
				SetQty(it.Qty).
				SetUnitPrice(it.UnitPrice).
				SetTotalPrice(it.TotalPrice).
				SetIsManualTotal(it.IsManualTotal).
				SetPosition(i).
				SetOrder(o)
		}
		if _, err := r.client.OrderItem.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("failed to create order items", "order_id", o.ID, "error", err)
			return nil, err
		}
	}

	r.logger.Info("order persisted",
		"order_id", o.ID,
		"items", len(p.Items),
		"status", req.Status,
		"source", req.Source,
		"confidence", p.Confidence,
	)
	return o, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, status *constants.ParseStatus, from, to *time.Time) ([]*ent.Order, error) {
	q := r.client.Order.Query().WithItems()
	if status != nil {
		q = q.Where(order.StatusEQ(string(*status)))
	}
	if from != nil {
		q = q.Where(order.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(order.CreatedAtLTE(*to))
	}
	orders, err := q.Order(order.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list orders", "error", err)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (*ent.Order, error) {
	o, err := r.client.Order.Query().
		Where(order.ID(id)).
		WithItems().
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get order", "order_id", id, "error", err)
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.ParseStatus) error {
	err := r.client.Order.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update order status", "order_id", id, "error", err)
	}
	return err
}
