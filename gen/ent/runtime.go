// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/rahadianp/pesanin/db/ent/schema"
	"github.com/rahadianp/pesanin/gen/ent/order"
	"github.com/rahadianp/pesanin/gen/ent/orderitem"
	"github.com/rahadianp/pesanin/gen/ent/region"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescStatus is the schema descriptor for status field.
	orderDescStatus := orderFields[1].Descriptor()
	// order.DefaultStatus holds the default value on creation for the status field.
	order.DefaultStatus = orderDescStatus.Default.(string)
	// orderDescSource is the schema descriptor for source field.
	orderDescSource := orderFields[2].Descriptor()
	// order.DefaultSource holds the default value on creation for the source field.
	order.DefaultSource = orderDescSource.Default.(string)
	// orderDescConfidence is the schema descriptor for confidence field.
	orderDescConfidence := orderFields[12].Descriptor()
	// order.DefaultConfidence holds the default value on creation for the confidence field.
	order.DefaultConfidence = orderDescConfidence.Default.(float64)
	// orderDescPotentialItemCount is the schema descriptor for potential_item_count field.
	orderDescPotentialItemCount := orderFields[13].Descriptor()
	// order.DefaultPotentialItemCount holds the default value on creation for the potential_item_count field.
	order.DefaultPotentialItemCount = orderDescPotentialItemCount.Default.(int)
	// orderDescHasUnpricedItems is the schema descriptor for has_unpriced_items field.
	orderDescHasUnpricedItems := orderFields[14].Descriptor()
	// order.DefaultHasUnpricedItems holds the default value on creation for the has_unpriced_items field.
	order.DefaultHasUnpricedItems = orderDescHasUnpricedItems.Default.(bool)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[16].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[17].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescName is the schema descriptor for name field.
	orderitemDescName := orderitemFields[1].Descriptor()
	// orderitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	orderitem.NameValidator = orderitemDescName.Validators[0].(func(string) error)
	// orderitemDescQty is the schema descriptor for qty field.
	orderitemDescQty := orderitemFields[2].Descriptor()
	// orderitem.DefaultQty holds the default value on creation for the qty field.
	orderitem.DefaultQty = orderitemDescQty.Default.(int)
	// orderitem.QtyValidator is a validator for the "qty" field. It is called by the builders before save.
	orderitem.QtyValidator = orderitemDescQty.Validators[0].(func(int) error)
	// orderitemDescUnitPrice is the schema descriptor for unit_price field.
	orderitemDescUnitPrice := orderitemFields[3].Descriptor()
	// orderitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	orderitem.DefaultUnitPrice = orderitemDescUnitPrice.Default.(int)
	// orderitem.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	orderitem.UnitPriceValidator = orderitemDescUnitPrice.Validators[0].(func(int) error)
	// orderitemDescTotalPrice is the schema descriptor for total_price field.
	orderitemDescTotalPrice := orderitemFields[4].Descriptor()
	// orderitem.DefaultTotalPrice holds the default value on creation for the total_price field.
	orderitem.DefaultTotalPrice = orderitemDescTotalPrice.Default.(int)
	// orderitem.TotalPriceValidator is a validator for the "total_price" field. It is called by the builders before save.
	orderitem.TotalPriceValidator = orderitemDescTotalPrice.Validators[0].(func(int) error)
	// orderitemDescIsManualTotal is the schema descriptor for is_manual_total field.
	orderitemDescIsManualTotal := orderitemFields[5].Descriptor()
	// orderitem.DefaultIsManualTotal holds the default value on creation for the is_manual_total field.
	orderitem.DefaultIsManualTotal = orderitemDescIsManualTotal.Default.(bool)
	// orderitemDescPosition is the schema descriptor for position field.
	orderitemDescPosition := orderitemFields[6].Descriptor()
	// orderitem.DefaultPosition holds the default value on creation for the position field.
	orderitem.DefaultPosition = orderitemDescPosition.Default.(int)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
	regionFields := schema.Region{}.Fields()
	_ = regionFields
	// regionDescProvince is the schema descriptor for province field.
	regionDescProvince := regionFields[0].Descriptor()
	// region.ProvinceValidator is a validator for the "province" field. It is called by the builders before save.
	region.ProvinceValidator = regionDescProvince.Validators[0].(func(string) error)
	// regionDescCity is the schema descriptor for city field.
	regionDescCity := regionFields[1].Descriptor()
	// region.CityValidator is a validator for the "city" field. It is called by the builders before save.
	region.CityValidator = regionDescCity.Validators[0].(func(string) error)
	// regionDescDistrict is the schema descriptor for district field.
	regionDescDistrict := regionFields[2].Descriptor()
	// region.DistrictValidator is a validator for the "district" field. It is called by the builders before save.
	region.DistrictValidator = regionDescDistrict.Validators[0].(func(string) error)
	// regionDescSubdistrict is the schema descriptor for subdistrict field.
	regionDescSubdistrict := regionFields[3].Descriptor()
	// region.SubdistrictValidator is a validator for the "subdistrict" field. It is called by the builders before save.
	region.SubdistrictValidator = regionDescSubdistrict.Validators[0].(func(string) error)
}
