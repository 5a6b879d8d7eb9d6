// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahadianp/pesanin/gen/ent/predicate"
	"github.com/rahadianp/pesanin/gen/ent/region"
)

// RegionUpdate is the builder for updating Region entities.
type RegionUpdate struct {
	config
	hooks    []Hook
	mutation *RegionMutation
}

// Where appends a list predicates to the RegionUpdate builder.
func (_u *RegionUpdate) Where(ps ...predicate.Region) *RegionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvince sets the "province" field.
func (_u *RegionUpdate) SetProvince(v string) *RegionUpdate {
	_u.mutation.SetProvince(v)
	return _u
}

// SetNillableProvince sets the "province" field if the given value is not nil.
func (_u *RegionUpdate) SetNillableProvince(v *string) *RegionUpdate {
	if v != nil {
		_u.SetProvince(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *RegionUpdate) SetCity(v string) *RegionUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *RegionUpdate) SetNillableCity(v *string) *RegionUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetDistrict sets the "district" field.
func (_u *RegionUpdate) SetDistrict(v string) *RegionUpdate {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *RegionUpdate) SetNillableDistrict(v *string) *RegionUpdate {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// SetSubdistrict sets the "subdistrict" field.
func (_u *RegionUpdate) SetSubdistrict(v string) *RegionUpdate {
	_u.mutation.SetSubdistrict(v)
	return _u
}

// SetNillableSubdistrict sets the "subdistrict" field if the given value is not nil.
func (_u *RegionUpdate) SetNillableSubdistrict(v *string) *RegionUpdate {
	if v != nil {
		_u.SetSubdistrict(*v)
	}
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *RegionUpdate) SetPostalCode(v string) *RegionUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *RegionUpdate) SetNillablePostalCode(v *string) *RegionUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *RegionUpdate) ClearPostalCode() *RegionUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// Mutation returns the RegionMutation object of the builder.
func (_u *RegionUpdate) Mutation() *RegionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegionUpdate) check() error {
	if v, ok := _u.mutation.Province(); ok {
		if err := region.ProvinceValidator(v); err != nil {
			return &ValidationError{Name: "province", err: fmt.Errorf(`ent: validator failed for field "Region.province": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := region.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Region.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.District(); ok {
		if err := region.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`ent: validator failed for field "Region.district": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subdistrict(); ok {
		if err := region.SubdistrictValidator(v); err != nil {
			return &ValidationError{Name: "subdistrict", err: fmt.Errorf(`ent: validator failed for field "Region.subdistrict": %w`, err)}
		}
	}
	return nil
}

func (_u *RegionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(region.Table, region.Columns, sqlgraph.NewFieldSpec(region.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Province(); ok {
		_spec.SetField(region.FieldProvince, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(region.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(region.FieldDistrict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subdistrict(); ok {
		_spec.SetField(region.FieldSubdistrict, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(region.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(region.FieldPostalCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{region.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegionUpdateOne is the builder for updating a single Region entity.
type RegionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegionMutation
}

// SetProvince sets the "province" field.
func (_u *RegionUpdateOne) SetProvince(v string) *RegionUpdateOne {
	_u.mutation.SetProvince(v)
	return _u
}

// SetNillableProvince sets the "province" field if the given value is not nil.
func (_u *RegionUpdateOne) SetNillableProvince(v *string) *RegionUpdateOne {
	if v != nil {
		_u.SetProvince(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *RegionUpdateOne) SetCity(v string) *RegionUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *RegionUpdateOne) SetNillableCity(v *string) *RegionUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetDistrict sets the "district" field.
func (_u *RegionUpdateOne) SetDistrict(v string) *RegionUpdateOne {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *RegionUpdateOne) SetNillableDistrict(v *string) *RegionUpdateOne {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// SetSubdistrict sets the "subdistrict" field.
func (_u *RegionUpdateOne) SetSubdistrict(v string) *RegionUpdateOne {
	_u.mutation.SetSubdistrict(v)
	return _u
}

// SetNillableSubdistrict sets the "subdistrict" field if the given value is not nil.
func (_u *RegionUpdateOne) SetNillableSubdistrict(v *string) *RegionUpdateOne {
	if v != nil {
		_u.SetSubdistrict(*v)
	}
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *RegionUpdateOne) SetPostalCode(v string) *RegionUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *RegionUpdateOne) SetNillablePostalCode(v *string) *RegionUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *RegionUpdateOne) ClearPostalCode() *RegionUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// Mutation returns the RegionMutation object of the builder.
func (_u *RegionUpdateOne) Mutation() *RegionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RegionUpdate builder.
func (_u *RegionUpdateOne) Where(ps ...predicate.Region) *RegionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegionUpdateOne) Select(field string, fields ...string) *RegionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Region entity.
func (_u *RegionUpdateOne) Save(ctx context.Context) (*Region, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegionUpdateOne) SaveX(ctx context.Context) *Region {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegionUpdateOne) check() error {
	if v, ok := _u.mutation.Province(); ok {
		if err := region.ProvinceValidator(v); err != nil {
			return &ValidationError{Name: "province", err: fmt.Errorf(`ent: validator failed for field "Region.province": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := region.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Region.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.District(); ok {
		if err := region.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`ent: validator failed for field "Region.district": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subdistrict(); ok {
		if err := region.SubdistrictValidator(v); err != nil {
			return &ValidationError{Name: "subdistrict", err: fmt.Errorf(`ent: validator failed for field "Region.subdistrict": %w`, err)}
		}
	}
	return nil
}

func (_u *RegionUpdateOne) sqlSave(ctx context.Context) (_node *Region, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(region.Table, region.Columns, sqlgraph.NewFieldSpec(region.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Region.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, region.FieldID)
		for _, f := range fields {
			if !region.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != region.FieldID {
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
	if value, ok := _u.mutation.Province(); ok {
		_spec.SetField(region.FieldProvince, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(region.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(region.FieldDistrict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subdistrict(); ok {
		_spec.SetField(region.FieldSubdistrict, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(region.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(region.FieldPostalCode, field.TypeString)
	}
	_node = &Region{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{region.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
