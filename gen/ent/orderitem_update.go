// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rahadianp/pesanin/gen/ent/order"
	"github.com/rahadianp/pesanin/gen/ent/orderitem"
	"github.com/rahadianp/pesanin/gen/ent/predicate"
)

// OrderItemUpdate is the builder for updating OrderItem entities.
type OrderItemUpdate struct {
	config
	hooks    []Hook
	mutation *OrderItemMutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdate) Where(ps ...predicate.OrderItem) *OrderItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OrderItemUpdate) SetName(v string) *OrderItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableName(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQty sets the "qty" field.
func (_u *OrderItemUpdate) SetQty(v int) *OrderItemUpdate {
	_u.mutation.ResetQty()
	_u.mutation.SetQty(v)
	return _u
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableQty(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetQty(*v)
	}
	return _u
}

// AddQty adds value to the "qty" field.
func (_u *OrderItemUpdate) AddQty(v int) *OrderItemUpdate {
	_u.mutation.AddQty(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *OrderItemUpdate) SetUnitPrice(v int) *OrderItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableUnitPrice(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *OrderItemUpdate) AddUnitPrice(v int) *OrderItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderItemUpdate) SetTotalPrice(v int) *OrderItemUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableTotalPrice(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderItemUpdate) AddTotalPrice(v int) *OrderItemUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetIsManualTotal sets the "is_manual_total" field.
func (_u *OrderItemUpdate) SetIsManualTotal(v bool) *OrderItemUpdate {
	_u.mutation.SetIsManualTotal(v)
	return _u
}

// SetNillableIsManualTotal sets the "is_manual_total" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableIsManualTotal(v *bool) *OrderItemUpdate {
	if v != nil {
		_u.SetIsManualTotal(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *OrderItemUpdate) SetPosition(v int) *OrderItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillablePosition(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *OrderItemUpdate) AddPosition(v int) *OrderItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_u *OrderItemUpdate) SetOrderID(id uuid.UUID) *OrderItemUpdate {
	_u.mutation.SetOrderID(id)
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdate) SetOrder(v *Order) *OrderItemUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdate) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdate) ClearOrder() *OrderItemUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := orderitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OrderItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Qty(); ok {
		if err := orderitem.QtyValidator(v); err != nil {
			return &ValidationError{Name: "qty", err: fmt.Errorf(`ent: validator failed for field "OrderItem.qty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := orderitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "OrderItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPrice(); ok {
		if err := orderitem.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "OrderItem.total_price": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(orderitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Qty(); ok {
		_spec.SetField(orderitem.FieldQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQty(); ok {
		_spec.AddField(orderitem.FieldQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(orderitem.FieldUnitPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(orderitem.FieldUnitPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(orderitem.FieldTotalPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(orderitem.FieldTotalPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsManualTotal(); ok {
		_spec.SetField(orderitem.FieldIsManualTotal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderItemUpdateOne is the builder for updating a single OrderItem entity.
type OrderItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderItemMutation
}

// SetName sets the "name" field.
func (_u *OrderItemUpdateOne) SetName(v string) *OrderItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableName(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQty sets the "qty" field.
func (_u *OrderItemUpdateOne) SetQty(v int) *OrderItemUpdateOne {
	_u.mutation.ResetQty()
	_u.mutation.SetQty(v)
	return _u
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableQty(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetQty(*v)
	}
	return _u
}

// AddQty adds value to the "qty" field.
func (_u *OrderItemUpdateOne) AddQty(v int) *OrderItemUpdateOne {
	_u.mutation.AddQty(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *OrderItemUpdateOne) SetUnitPrice(v int) *OrderItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableUnitPrice(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *OrderItemUpdateOne) AddUnitPrice(v int) *OrderItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderItemUpdateOne) SetTotalPrice(v int) *OrderItemUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableTotalPrice(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderItemUpdateOne) AddTotalPrice(v int) *OrderItemUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetIsManualTotal sets the "is_manual_total" field.
func (_u *OrderItemUpdateOne) SetIsManualTotal(v bool) *OrderItemUpdateOne {
	_u.mutation.SetIsManualTotal(v)
	return _u
}

// SetNillableIsManualTotal sets the "is_manual_total" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableIsManualTotal(v *bool) *OrderItemUpdateOne {
	if v != nil {
		_u.SetIsManualTotal(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *OrderItemUpdateOne) SetPosition(v int) *OrderItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillablePosition(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *OrderItemUpdateOne) AddPosition(v int) *OrderItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_u *OrderItemUpdateOne) SetOrderID(id uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.SetOrderID(id)
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) SetOrder(v *Order) *OrderItemUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdateOne) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) ClearOrder() *OrderItemUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdateOne) Where(ps ...predicate.OrderItem) *OrderItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderItemUpdateOne) Select(field string, fields ...string) *OrderItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderItem entity.
func (_u *OrderItemUpdateOne) Save(ctx context.Context) (*OrderItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdateOne) SaveX(ctx context.Context) *OrderItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := orderitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OrderItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Qty(); ok {
		if err := orderitem.QtyValidator(v); err != nil {
			return &ValidationError{Name: "qty", err: fmt.Errorf(`ent: validator failed for field "OrderItem.qty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := orderitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "OrderItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPrice(); ok {
		if err := orderitem.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "OrderItem.total_price": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdateOne) sqlSave(ctx context.Context) (_node *OrderItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderitem.FieldID)
		for _, f := range fields {
			if !orderitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(orderitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Qty(); ok {
		_spec.SetField(orderitem.FieldQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQty(); ok {
		_spec.AddField(orderitem.FieldQty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(orderitem.FieldUnitPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(orderitem.FieldUnitPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(orderitem.FieldTotalPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(orderitem.FieldTotalPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsManualTotal(); ok {
		_spec.SetField(orderitem.FieldIsManualTotal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
