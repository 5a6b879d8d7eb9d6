package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// OrderItem is one purchased item. Exactly one of unit_price/total_price was
// authoritative at extraction time; is_manual_total records which.
type OrderItem struct{ ent.Schema }

func (OrderItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_items"},
	}
}

func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Int("qty").
			Min(1).
			Default(1),
		field.Int("unit_price").
			Min(0).
			Default(0),
		field.Int("total_price").
			Min(0).
			Default(0),
		field.Bool("is_manual_total").
			Default(false),
		field.Int("position").
			Default(0),
	}
}

func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("items").
			Unique().
			Required(),
	}
}
