// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rahadianp/pesanin/gen/ent/order"
	"github.com/rahadianp/pesanin/gen/ent/orderitem"
	"github.com/rahadianp/pesanin/gen/ent/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v string) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *string) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *OrderUpdate) SetSource(v string) *OrderUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableSource(v *string) *OrderUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdate) SetCustomerName(v string) *OrderUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdate) ClearCustomerName() *OrderUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *OrderUpdate) SetPhone(v string) *OrderUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePhone(v *string) *OrderUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *OrderUpdate) ClearPhone() *OrderUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *OrderUpdate) SetAddress(v string) *OrderUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableAddress(v *string) *OrderUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *OrderUpdate) ClearAddress() *OrderUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetProvince sets the "province" field.
func (_u *OrderUpdate) SetProvince(v string) *OrderUpdate {
	_u.mutation.SetProvince(v)
	return _u
}

// SetNillableProvince sets the "province" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableProvince(v *string) *OrderUpdate {
	if v != nil {
		_u.SetProvince(*v)
	}
	return _u
}

// ClearProvince clears the value of the "province" field.
func (_u *OrderUpdate) ClearProvince() *OrderUpdate {
	_u.mutation.ClearProvince()
	return _u
}

// SetCity sets the "city" field.
func (_u *OrderUpdate) SetCity(v string) *OrderUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCity(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *OrderUpdate) ClearCity() *OrderUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *OrderUpdate) SetDistrict(v string) *OrderUpdate {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDistrict(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *OrderUpdate) ClearDistrict() *OrderUpdate {
	_u.mutation.ClearDistrict()
	return _u
}

// SetSubdistrict sets the "subdistrict" field.
func (_u *OrderUpdate) SetSubdistrict(v string) *OrderUpdate {
	_u.mutation.SetSubdistrict(v)
	return _u
}

// SetNillableSubdistrict sets the "subdistrict" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableSubdistrict(v *string) *OrderUpdate {
	if v != nil {
		_u.SetSubdistrict(*v)
	}
	return _u
}

// ClearSubdistrict clears the value of the "subdistrict" field.
func (_u *OrderUpdate) ClearSubdistrict() *OrderUpdate {
	_u.mutation.ClearSubdistrict()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *OrderUpdate) SetPostalCode(v string) *OrderUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePostalCode(v *string) *OrderUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *OrderUpdate) ClearPostalCode() *OrderUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetRegionConfidence sets the "region_confidence" field.
func (_u *OrderUpdate) SetRegionConfidence(v float64) *OrderUpdate {
	_u.mutation.ResetRegionConfidence()
	_u.mutation.SetRegionConfidence(v)
	return _u
}

// SetNillableRegionConfidence sets the "region_confidence" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableRegionConfidence(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetRegionConfidence(*v)
	}
	return _u
}

// AddRegionConfidence adds value to the "region_confidence" field.
func (_u *OrderUpdate) AddRegionConfidence(v float64) *OrderUpdate {
	_u.mutation.AddRegionConfidence(v)
	return _u
}

// ClearRegionConfidence clears the value of the "region_confidence" field.
func (_u *OrderUpdate) ClearRegionConfidence() *OrderUpdate {
	_u.mutation.ClearRegionConfidence()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *OrderUpdate) SetConfidence(v float64) *OrderUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableConfidence(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *OrderUpdate) AddConfidence(v float64) *OrderUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPotentialItemCount sets the "potential_item_count" field.
func (_u *OrderUpdate) SetPotentialItemCount(v int) *OrderUpdate {
	_u.mutation.ResetPotentialItemCount()
	_u.mutation.SetPotentialItemCount(v)
	return _u
}

// SetNillablePotentialItemCount sets the "potential_item_count" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePotentialItemCount(v *int) *OrderUpdate {
	if v != nil {
		_u.SetPotentialItemCount(*v)
	}
	return _u
}

// AddPotentialItemCount adds value to the "potential_item_count" field.
func (_u *OrderUpdate) AddPotentialItemCount(v int) *OrderUpdate {
	_u.mutation.AddPotentialItemCount(v)
	return _u
}

// SetHasUnpricedItems sets the "has_unpriced_items" field.
func (_u *OrderUpdate) SetHasUnpricedItems(v bool) *OrderUpdate {
	_u.mutation.SetHasUnpricedItems(v)
	return _u
}

// SetNillableHasUnpricedItems sets the "has_unpriced_items" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableHasUnpricedItems(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetHasUnpricedItems(*v)
	}
	return _u
}

// SetRawBlock sets the "raw_block" field.
func (_u *OrderUpdate) SetRawBlock(v string) *OrderUpdate {
	_u.mutation.SetRawBlock(v)
	return _u
}

// SetNillableRawBlock sets the "raw_block" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableRawBlock(v *string) *OrderUpdate {
	if v != nil {
		_u.SetRawBlock(*v)
	}
	return _u
}

// ClearRawBlock clears the value of the "raw_block" field.
func (_u *OrderUpdate) ClearRawBlock() *OrderUpdate {
	_u.mutation.ClearRawBlock()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdate) SetCreatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCreatedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdate) AddItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdate) AddItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdate) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdate) RemoveItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(order.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(order.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(order.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(order.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(order.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Province(); ok {
		_spec.SetField(order.FieldProvince, field.TypeString, value)
	}
	if _u.mutation.ProvinceCleared() {
		_spec.ClearField(order.FieldProvince, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(order.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(order.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(order.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(order.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.Subdistrict(); ok {
		_spec.SetField(order.FieldSubdistrict, field.TypeString, value)
	}
	if _u.mutation.SubdistrictCleared() {
		_spec.ClearField(order.FieldSubdistrict, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(order.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(order.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.RegionConfidence(); ok {
		_spec.SetField(order.FieldRegionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRegionConfidence(); ok {
		_spec.AddField(order.FieldRegionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.RegionConfidenceCleared() {
		_spec.ClearField(order.FieldRegionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(order.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(order.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PotentialItemCount(); ok {
		_spec.SetField(order.FieldPotentialItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPotentialItemCount(); ok {
		_spec.AddField(order.FieldPotentialItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasUnpricedItems(); ok {
		_spec.SetField(order.FieldHasUnpricedItems, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawBlock(); ok {
		_spec.SetField(order.FieldRawBlock, field.TypeString, value)
	}
	if _u.mutation.RawBlockCleared() {
		_spec.ClearField(order.FieldRawBlock, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v string) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *OrderUpdateOne) SetSource(v string) *OrderUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableSource(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdateOne) SetCustomerName(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdateOne) ClearCustomerName() *OrderUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *OrderUpdateOne) SetPhone(v string) *OrderUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePhone(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *OrderUpdateOne) ClearPhone() *OrderUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *OrderUpdateOne) SetAddress(v string) *OrderUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableAddress(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *OrderUpdateOne) ClearAddress() *OrderUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetProvince sets the "province" field.
func (_u *OrderUpdateOne) SetProvince(v string) *OrderUpdateOne {
	_u.mutation.SetProvince(v)
	return _u
}

// SetNillableProvince sets the "province" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableProvince(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetProvince(*v)
	}
	return _u
}

// ClearProvince clears the value of the "province" field.
func (_u *OrderUpdateOne) ClearProvince() *OrderUpdateOne {
	_u.mutation.ClearProvince()
	return _u
}

// SetCity sets the "city" field.
func (_u *OrderUpdateOne) SetCity(v string) *OrderUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCity(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *OrderUpdateOne) ClearCity() *OrderUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *OrderUpdateOne) SetDistrict(v string) *OrderUpdateOne {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDistrict(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *OrderUpdateOne) ClearDistrict() *OrderUpdateOne {
	_u.mutation.ClearDistrict()
	return _u
}

// SetSubdistrict sets the "subdistrict" field.
func (_u *OrderUpdateOne) SetSubdistrict(v string) *OrderUpdateOne {
	_u.mutation.SetSubdistrict(v)
	return _u
}

// SetNillableSubdistrict sets the "subdistrict" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableSubdistrict(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetSubdistrict(*v)
	}
	return _u
}

// ClearSubdistrict clears the value of the "subdistrict" field.
func (_u *OrderUpdateOne) ClearSubdistrict() *OrderUpdateOne {
	_u.mutation.ClearSubdistrict()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *OrderUpdateOne) SetPostalCode(v string) *OrderUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePostalCode(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *OrderUpdateOne) ClearPostalCode() *OrderUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetRegionConfidence sets the "region_confidence" field.
func (_u *OrderUpdateOne) SetRegionConfidence(v float64) *OrderUpdateOne {
	_u.mutation.ResetRegionConfidence()
	_u.mutation.SetRegionConfidence(v)
	return _u
}

// SetNillableRegionConfidence sets the "region_confidence" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableRegionConfidence(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetRegionConfidence(*v)
	}
	return _u
}

// AddRegionConfidence adds value to the "region_confidence" field.
func (_u *OrderUpdateOne) AddRegionConfidence(v float64) *OrderUpdateOne {
	_u.mutation.AddRegionConfidence(v)
	return _u
}

// ClearRegionConfidence clears the value of the "region_confidence" field.
func (_u *OrderUpdateOne) ClearRegionConfidence() *OrderUpdateOne {
	_u.mutation.ClearRegionConfidence()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *OrderUpdateOne) SetConfidence(v float64) *OrderUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableConfidence(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *OrderUpdateOne) AddConfidence(v float64) *OrderUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPotentialItemCount sets the "potential_item_count" field.
func (_u *OrderUpdateOne) SetPotentialItemCount(v int) *OrderUpdateOne {
	_u.mutation.ResetPotentialItemCount()
	_u.mutation.SetPotentialItemCount(v)
	return _u
}

// SetNillablePotentialItemCount sets the "potential_item_count" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePotentialItemCount(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetPotentialItemCount(*v)
	}
	return _u
}

// AddPotentialItemCount adds value to the "potential_item_count" field.
func (_u *OrderUpdateOne) AddPotentialItemCount(v int) *OrderUpdateOne {
	_u.mutation.AddPotentialItemCount(v)
	return _u
}

// SetHasUnpricedItems sets the "has_unpriced_items" field.
func (_u *OrderUpdateOne) SetHasUnpricedItems(v bool) *OrderUpdateOne {
	_u.mutation.SetHasUnpricedItems(v)
	return _u
}

// SetNillableHasUnpricedItems sets the "has_unpriced_items" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableHasUnpricedItems(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetHasUnpricedItems(*v)
	}
	return _u
}

// SetRawBlock sets the "raw_block" field.
func (_u *OrderUpdateOne) SetRawBlock(v string) *OrderUpdateOne {
	_u.mutation.SetRawBlock(v)
	return _u
}

// SetNillableRawBlock sets the "raw_block" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableRawBlock(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetRawBlock(*v)
	}
	return _u
}

// ClearRawBlock clears the value of the "raw_block" field.
func (_u *OrderUpdateOne) ClearRawBlock() *OrderUpdateOne {
	_u.mutation.ClearRawBlock()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdateOne) SetCreatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCreatedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdateOne) AddItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) AddItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdateOne) RemoveItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(order.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(order.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(order.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(order.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(order.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Province(); ok {
		_spec.SetField(order.FieldProvince, field.TypeString, value)
	}
	if _u.mutation.ProvinceCleared() {
		_spec.ClearField(order.FieldProvince, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(order.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(order.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(order.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(order.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.Subdistrict(); ok {
		_spec.SetField(order.FieldSubdistrict, field.TypeString, value)
	}
	if _u.mutation.SubdistrictCleared() {
		_spec.ClearField(order.FieldSubdistrict, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(order.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(order.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.RegionConfidence(); ok {
		_spec.SetField(order.FieldRegionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRegionConfidence(); ok {
		_spec.AddField(order.FieldRegionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.RegionConfidenceCleared() {
		_spec.ClearField(order.FieldRegionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(order.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(order.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PotentialItemCount(); ok {
		_spec.SetField(order.FieldPotentialItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPotentialItemCount(); ok {
		_spec.AddField(order.FieldPotentialItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasUnpricedItems(); ok {
		_spec.SetField(order.FieldHasUnpricedItems, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawBlock(); ok {
		_spec.SetField(order.FieldRawBlock, field.TypeString, value)
	}
	if _u.mutation.RawBlockCleared() {
		_spec.ClearField(order.FieldRawBlock, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
