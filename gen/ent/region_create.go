// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahadianp/pesanin/gen/ent/region"
)

// RegionCreate is the builder for creating a Region entity.
type RegionCreate struct {
	config
	mutation *RegionMutation
	hooks    []Hook
}

// SetProvince sets the "province" field.
func (_c *RegionCreate) SetProvince(v string) *RegionCreate {
	_c.mutation.SetProvince(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *RegionCreate) SetCity(v string) *RegionCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetDistrict sets the "district" field.
func (_c *RegionCreate) SetDistrict(v string) *RegionCreate {
	_c.mutation.SetDistrict(v)
	return _c
}

// SetSubdistrict sets the "subdistrict" field.
func (_c *RegionCreate) SetSubdistrict(v string) *RegionCreate {
	_c.mutation.SetSubdistrict(v)
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *RegionCreate) SetPostalCode(v string) *RegionCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *RegionCreate) SetNillablePostalCode(v *string) *RegionCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// Mutation returns the RegionMutation object of the builder.
func (_c *RegionCreate) Mutation() *RegionMutation {
	return _c.mutation
}

// Save creates the Region in the database.
func (_c *RegionCreate) Save(ctx context.Context) (*Region, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegionCreate) SaveX(ctx context.Context) *Region {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegionCreate) check() error {
	if _, ok := _c.mutation.Province(); !ok {
		return &ValidationError{Name: "province", err: errors.New(`ent: missing required field "Region.province"`)}
	}
	if v, ok := _c.mutation.Province(); ok {
		if err := region.ProvinceValidator(v); err != nil {
			return &ValidationError{Name: "province", err: fmt.Errorf(`ent: validator failed for field "Region.province": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Region.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := region.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Region.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.District(); !ok {
		return &ValidationError{Name: "district", err: errors.New(`ent: missing required field "Region.district"`)}
	}
	if v, ok := _c.mutation.District(); ok {
		if err := region.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`ent: validator failed for field "Region.district": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subdistrict(); !ok {
		return &ValidationError{Name: "subdistrict", err: errors.New(`ent: missing required field "Region.subdistrict"`)}
	}
	if v, ok := _c.mutation.Subdistrict(); ok {
		if err := region.SubdistrictValidator(v); err != nil {
			return &ValidationError{Name: "subdistrict", err: fmt.Errorf(`ent: validator failed for field "Region.subdistrict": %w`, err)}
		}
	}
	return nil
}

func (_c *RegionCreate) sqlSave(ctx context.Context) (*Region, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RegionCreate) createSpec() (*Region, *sqlgraph.CreateSpec) {
	var (
		_node = &Region{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(region.Table, sqlgraph.NewFieldSpec(region.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Province(); ok {
		_spec.SetField(region.FieldProvince, field.TypeString, value)
		_node.Province = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(region.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.District(); ok {
		_spec.SetField(region.FieldDistrict, field.TypeString, value)
		_node.District = value
	}
	if value, ok := _c.mutation.Subdistrict(); ok {
		_spec.SetField(region.FieldSubdistrict, field.TypeString, value)
		_node.Subdistrict = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(region.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	return _node, _spec
}

// RegionCreateBulk is the builder for creating many Region entities in bulk.
type RegionCreateBulk struct {
	config
	err      error
	builders []*RegionCreate
}

// Save creates the Region entities in the database.
func (_c *RegionCreateBulk) Save(ctx context.Context) ([]*Region, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Region, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RegionCreateBulk) SaveX(ctx context.Context) []*Region {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
