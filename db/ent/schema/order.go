package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Order is one recovered customer order: contact, optional region fields,
// extraction diagnostics, and the raw block it came from.
type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("status").
			Default("NEEDS_REVIEW"),
		field.String("source").
			Default("RULES"),
		field.String("customer_name").
			Optional(),
		field.String("phone").
			Optional(),
		field.String("address").
			Optional(),
		field.String("province").Optional().Nillable(),
		field.String("city").Optional().Nillable(),
		field.String("district").Optional().Nillable(),
		field.String("subdistrict").Optional().Nillable(),
		field.String("postal_code").Optional().Nillable(),
		field.Float("region_confidence").Optional().Nillable(),
		field.Float("confidence").
			Default(0),
		field.Int("potential_item_count").
			Default(0),
		field.Bool("has_unpriced_items").
			Default(false),
		field.Text("raw_block").
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", OrderItem.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}
