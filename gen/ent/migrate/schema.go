// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "NEEDS_REVIEW"},
		{Name: "source", Type: field.TypeString, Default: "RULES"},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "province", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "district", Type: field.TypeString, Nullable: true},
		{Name: "subdistrict", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "region_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "potential_item_count", Type: field.TypeInt, Default: 0},
		{Name: "has_unpriced_items", Type: field.TypeBool, Default: false},
		{Name: "raw_block", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "qty", Type: field.TypeInt, Default: 1},
		{Name: "unit_price", Type: field.TypeInt, Default: 0},
		{Name: "total_price", Type: field.TypeInt, Default: 0},
		{Name: "is_manual_total", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "order_items", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[7]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RegionsColumns holds the columns for the "regions" table.
	RegionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "province", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "district", Type: field.TypeString},
		{Name: "subdistrict", Type: field.TypeString},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
	}
	// RegionsTable holds the schema information for the "regions" table.
	RegionsTable = &schema.Table{
		Name:       "regions",
		Columns:    RegionsColumns,
		PrimaryKey: []*schema.Column{RegionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "region_subdistrict",
				Unique:  false,
				Columns: []*schema.Column{RegionsColumns[4]},
			},
			{
				Name:    "region_district",
				Unique:  false,
				Columns: []*schema.Column{RegionsColumns[3]},
			},
			{
				Name:    "region_postal_code",
				Unique:  false,
				Columns: []*schema.Column{RegionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OrdersTable,
		OrderItemsTable,
		RegionsTable,
	}
)

func init() {
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
	RegionsTable.Annotation = &entsql.Annotation{
		Table: "regions",
	}
}
