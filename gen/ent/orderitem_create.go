// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rahadianp/pesanin/gen/ent/order"
	"github.com/rahadianp/pesanin/gen/ent/orderitem"
)

// OrderItemCreate is the builder for creating a OrderItem entity.
type OrderItemCreate struct {
	config
	mutation *OrderItemMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *OrderItemCreate) SetName(v string) *OrderItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQty sets the "qty" field.
func (_c *OrderItemCreate) SetQty(v int) *OrderItemCreate {
	_c.mutation.SetQty(v)
	return _c
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableQty(v *int) *OrderItemCreate {
	if v != nil {
		_c.SetQty(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *OrderItemCreate) SetUnitPrice(v int) *OrderItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableUnitPrice(v *int) *OrderItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *OrderItemCreate) SetTotalPrice(v int) *OrderItemCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableTotalPrice(v *int) *OrderItemCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetIsManualTotal sets the "is_manual_total" field.
func (_c *OrderItemCreate) SetIsManualTotal(v bool) *OrderItemCreate {
	_c.mutation.SetIsManualTotal(v)
	return _c
}

// SetNillableIsManualTotal sets the "is_manual_total" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableIsManualTotal(v *bool) *OrderItemCreate {
	if v != nil {
		_c.SetIsManualTotal(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *OrderItemCreate) SetPosition(v int) *OrderItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillablePosition(v *int) *OrderItemCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderItemCreate) SetID(v uuid.UUID) *OrderItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableID(v *uuid.UUID) *OrderItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_c *OrderItemCreate) SetOrderID(id uuid.UUID) *OrderItemCreate {
	_c.mutation.SetOrderID(id)
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *OrderItemCreate) SetOrder(v *Order) *OrderItemCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_c *OrderItemCreate) Mutation() *OrderItemMutation {
	return _c.mutation
}

// Save creates the OrderItem in the database.
func (_c *OrderItemCreate) Save(ctx context.Context) (*OrderItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderItemCreate) SaveX(ctx context.Context) *OrderItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderItemCreate) defaults() {
	if _, ok := _c.mutation.Qty(); !ok {
		v := orderitem.DefaultQty
		_c.mutation.SetQty(v)
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		v := orderitem.DefaultUnitPrice
		_c.mutation.SetUnitPrice(v)
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		v := orderitem.DefaultTotalPrice
		_c.mutation.SetTotalPrice(v)
	}
	if _, ok := _c.mutation.IsManualTotal(); !ok {
		v := orderitem.DefaultIsManualTotal
		_c.mutation.SetIsManualTotal(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := orderitem.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := orderitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderItemCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "OrderItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := orderitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OrderItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Qty(); !ok {
		return &ValidationError{Name: "qty", err: errors.New(`ent: missing required field "OrderItem.qty"`)}
	}
	if v, ok := _c.mutation.Qty(); ok {
		if err := orderitem.QtyValidator(v); err != nil {
			return &ValidationError{Name: "qty", err: fmt.Errorf(`ent: validator failed for field "OrderItem.qty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "OrderItem.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := orderitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "OrderItem.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "OrderItem.total_price"`)}
	}
	if v, ok := _c.mutation.TotalPrice(); ok {
		if err := orderitem.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "OrderItem.total_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsManualTotal(); !ok {
		return &ValidationError{Name: "is_manual_total", err: errors.New(`ent: missing required field "OrderItem.is_manual_total"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "OrderItem.position"`)}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "OrderItem.order"`)}
	}
	return nil
}

func (_c *OrderItemCreate) sqlSave(ctx context.Context) (*OrderItem, error) {
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

func (_c *OrderItemCreate) createSpec() (*OrderItem, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderitem.Table, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(orderitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Qty(); ok {
		_spec.SetField(orderitem.FieldQty, field.TypeInt, value)
		_node.Qty = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(orderitem.FieldUnitPrice, field.TypeInt, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(orderitem.FieldTotalPrice, field.TypeInt, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.IsManualTotal(); ok {
		_spec.SetField(orderitem.FieldIsManualTotal, field.TypeBool, value)
		_node.IsManualTotal = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(orderitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.order_items = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderItemCreateBulk is the builder for creating many OrderItem entities in bulk.
type OrderItemCreateBulk struct {
	config
	err      error
	builders []*OrderItemCreate
}

// Save creates the OrderItem entities in the database.
func (_c *OrderItemCreateBulk) Save(ctx context.Context) ([]*OrderItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderItemMutation)
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
func (_c *OrderItemCreateBulk) SaveX(ctx context.Context) []*OrderItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
