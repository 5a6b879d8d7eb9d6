package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Region is one row of the administrative-region gazetteer the resolver
// searches: province down to subdistrict plus postal code.
type Region struct{ ent.Schema }

func (Region) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "regions"},
	}
}

func (Region) Fields() []ent.Field {
	return []ent.Field{
		field.String("province").NotEmpty(),
		field.String("city").NotEmpty(),
		field.String("district").NotEmpty(),
		field.String("subdistrict").NotEmpty(),
		field.String("postal_code").
			Optional(),
	}
}

func (Region) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subdistrict"),
		index.Fields("district"),
		index.Fields("postal_code"),
	}
}
