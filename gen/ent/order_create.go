// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rahadianp/pesanin/gen/ent/order"
	"github.com/rahadianp/pesanin/gen/ent/orderitem"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *OrderCreate) SetStatus(v string) *OrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatus(v *string) *OrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *OrderCreate) SetSource(v string) *OrderCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *OrderCreate) SetNillableSource(v *string) *OrderCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *OrderCreate) SetCustomerName(v string) *OrderCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerName(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *OrderCreate) SetPhone(v string) *OrderCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePhone(v *string) *OrderCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *OrderCreate) SetAddress(v string) *OrderCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *OrderCreate) SetNillableAddress(v *string) *OrderCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetProvince sets the "province" field.
func (_c *OrderCreate) SetProvince(v string) *OrderCreate {
	_c.mutation.SetProvince(v)
	return _c
}

// SetNillableProvince sets the "province" field if the given value is not nil.
func (_c *OrderCreate) SetNillableProvince(v *string) *OrderCreate {
	if v != nil {
		_c.SetProvince(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *OrderCreate) SetCity(v string) *OrderCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCity(v *string) *OrderCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetDistrict sets the "district" field.
func (_c *OrderCreate) SetDistrict(v string) *OrderCreate {
	_c.mutation.SetDistrict(v)
	return _c
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDistrict(v *string) *OrderCreate {
	if v != nil {
		_c.SetDistrict(*v)
	}
	return _c
}

// SetSubdistrict sets the "subdistrict" field.
func (_c *OrderCreate) SetSubdistrict(v string) *OrderCreate {
	_c.mutation.SetSubdistrict(v)
	return _c
}

// SetNillableSubdistrict sets the "subdistrict" field if the given value is not nil.
func (_c *OrderCreate) SetNillableSubdistrict(v *string) *OrderCreate {
	if v != nil {
		_c.SetSubdistrict(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *OrderCreate) SetPostalCode(v string) *OrderCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePostalCode(v *string) *OrderCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetRegionConfidence sets the "region_confidence" field.
func (_c *OrderCreate) SetRegionConfidence(v float64) *OrderCreate {
	_c.mutation.SetRegionConfidence(v)
	return _c
}

// SetNillableRegionConfidence sets the "region_confidence" field if the given value is not nil.
func (_c *OrderCreate) SetNillableRegionConfidence(v *float64) *OrderCreate {
	if v != nil {
		_c.SetRegionConfidence(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *OrderCreate) SetConfidence(v float64) *OrderCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *OrderCreate) SetNillableConfidence(v *float64) *OrderCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetPotentialItemCount sets the "potential_item_count" field.
func (_c *OrderCreate) SetPotentialItemCount(v int) *OrderCreate {
	_c.mutation.SetPotentialItemCount(v)
	return _c
}

// SetNillablePotentialItemCount sets the "potential_item_count" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePotentialItemCount(v *int) *OrderCreate {
	if v != nil {
		_c.SetPotentialItemCount(*v)
	}
	return _c
}

// SetHasUnpricedItems sets the "has_unpriced_items" field.
func (_c *OrderCreate) SetHasUnpricedItems(v bool) *OrderCreate {
	_c.mutation.SetHasUnpricedItems(v)
	return _c
}

// SetNillableHasUnpricedItems sets the "has_unpriced_items" field if the given value is not nil.
func (_c *OrderCreate) SetNillableHasUnpricedItems(v *bool) *OrderCreate {
	if v != nil {
		_c.SetHasUnpricedItems(*v)
	}
	return _c
}

// SetRawBlock sets the "raw_block" field.
func (_c *OrderCreate) SetRawBlock(v string) *OrderCreate {
	_c.mutation.SetRawBlock(v)
	return _c
}

// SetNillableRawBlock sets the "raw_block" field if the given value is not nil.
func (_c *OrderCreate) SetNillableRawBlock(v *string) *OrderCreate {
	if v != nil {
		_c.SetRawBlock(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_c *OrderCreate) AddItemIDs(ids ...uuid.UUID) *OrderCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_c *OrderCreate) AddItems(v ...*OrderItem) *OrderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := order.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := order.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := order.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.PotentialItemCount(); !ok {
		v := order.DefaultPotentialItemCount
		_c.mutation.SetPotentialItemCount(v)
	}
	if _, ok := _c.mutation.HasUnpricedItems(); !ok {
		v := order.DefaultHasUnpricedItems
		_c.mutation.SetHasUnpricedItems(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Order.status"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Order.source"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Order.confidence"`)}
	}
	if _, ok := _c.mutation.PotentialItemCount(); !ok {
		return &ValidationError{Name: "potential_item_count", err: errors.New(`ent: missing required field "Order.potential_item_count"`)}
	}
	if _, ok := _c.mutation.HasUnpricedItems(); !ok {
		return &ValidationError{Name: "has_unpriced_items", err: errors.New(`ent: missing required field "Order.has_unpriced_items"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Order.updated_at"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(order.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(order.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(order.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Province(); ok {
		_spec.SetField(order.FieldProvince, field.TypeString, value)
		_node.Province = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(order.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.District(); ok {
		_spec.SetField(order.FieldDistrict, field.TypeString, value)
		_node.District = &value
	}
	if value, ok := _c.mutation.Subdistrict(); ok {
		_spec.SetField(order.FieldSubdistrict, field.TypeString, value)
		_node.Subdistrict = &value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(order.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = &value
	}
	if value, ok := _c.mutation.RegionConfidence(); ok {
		_spec.SetField(order.FieldRegionConfidence, field.TypeFloat64, value)
		_node.RegionConfidence = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(order.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.PotentialItemCount(); ok {
		_spec.SetField(order.FieldPotentialItemCount, field.TypeInt, value)
		_node.PotentialItemCount = value
	}
	if value, ok := _c.mutation.HasUnpricedItems(); ok {
		_spec.SetField(order.FieldHasUnpricedItems, field.TypeBool, value)
		_node.HasUnpricedItems = value
	}
	if value, ok := _c.mutation.RawBlock(); ok {
		_spec.SetField(order.FieldRawBlock, field.TypeString, value)
		_node.RawBlock = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
