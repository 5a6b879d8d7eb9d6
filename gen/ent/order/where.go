// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/rahadianp/pesanin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSource, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAddress, v))
}

// Province applies equality check predicate on the "province" field. It's identical to ProvinceEQ.
func Province(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldProvince, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCity, v))
}

// District applies equality check predicate on the "district" field. It's identical to DistrictEQ.
func District(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDistrict, v))
}

// Subdistrict applies equality check predicate on the "subdistrict" field. It's identical to SubdistrictEQ.
func Subdistrict(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSubdistrict, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPostalCode, v))
}

// RegionConfidence applies equality check predicate on the "region_confidence" field. It's identical to RegionConfidenceEQ.
func RegionConfidence(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRegionConfidence, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldConfidence, v))
}

// PotentialItemCount applies equality check predicate on the "potential_item_count" field. It's identical to PotentialItemCountEQ.
func PotentialItemCount(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPotentialItemCount, v))
}

// HasUnpricedItems applies equality check predicate on the "has_unpriced_items" field. It's identical to HasUnpricedItemsEQ.
func HasUnpricedItems(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldHasUnpricedItems, v))
}

// RawBlock applies equality check predicate on the "raw_block" field. It's identical to RawBlockEQ.
func RawBlock(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRawBlock, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldStatus, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldSource, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldAddress, v))
}

// ProvinceEQ applies the EQ predicate on the "province" field.
func ProvinceEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldProvince, v))
}

// ProvinceNEQ applies the NEQ predicate on the "province" field.
func ProvinceNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldProvince, v))
}

// ProvinceIn applies the In predicate on the "province" field.
func ProvinceIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldProvince, vs...))
}

// ProvinceNotIn applies the NotIn predicate on the "province" field.
func ProvinceNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldProvince, vs...))
}

// ProvinceGT applies the GT predicate on the "province" field.
func ProvinceGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldProvince, v))
}

// ProvinceGTE applies the GTE predicate on the "province" field.
func ProvinceGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldProvince, v))
}

// ProvinceLT applies the LT predicate on the "province" field.
func ProvinceLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldProvince, v))
}

// ProvinceLTE applies the LTE predicate on the "province" field.
func ProvinceLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldProvince, v))
}

// ProvinceContains applies the Contains predicate on the "province" field.
func ProvinceContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldProvince, v))
}

// ProvinceHasPrefix applies the HasPrefix predicate on the "province" field.
func ProvinceHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldProvince, v))
}

// ProvinceHasSuffix applies the HasSuffix predicate on the "province" field.
func ProvinceHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldProvince, v))
}

// ProvinceIsNil applies the IsNil predicate on the "province" field.
func ProvinceIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldProvince))
}

// ProvinceNotNil applies the NotNil predicate on the "province" field.
func ProvinceNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldProvince))
}

// ProvinceEqualFold applies the EqualFold predicate on the "province" field.
func ProvinceEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldProvince, v))
}

// ProvinceContainsFold applies the ContainsFold predicate on the "province" field.
func ProvinceContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldProvince, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCity, v))
}

// DistrictEQ applies the EQ predicate on the "district" field.
func DistrictEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDistrict, v))
}

// DistrictNEQ applies the NEQ predicate on the "district" field.
func DistrictNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDistrict, v))
}

// DistrictIn applies the In predicate on the "district" field.
func DistrictIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDistrict, vs...))
}

// DistrictNotIn applies the NotIn predicate on the "district" field.
func DistrictNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDistrict, vs...))
}

// DistrictGT applies the GT predicate on the "district" field.
func DistrictGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDistrict, v))
}

// DistrictGTE applies the GTE predicate on the "district" field.
func DistrictGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDistrict, v))
}

// DistrictLT applies the LT predicate on the "district" field.
func DistrictLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDistrict, v))
}

// DistrictLTE applies the LTE predicate on the "district" field.
func DistrictLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDistrict, v))
}

// DistrictContains applies the Contains predicate on the "district" field.
func DistrictContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldDistrict, v))
}

// DistrictHasPrefix applies the HasPrefix predicate on the "district" field.
func DistrictHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldDistrict, v))
}

// DistrictHasSuffix applies the HasSuffix predicate on the "district" field.
func DistrictHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldDistrict, v))
}

// DistrictIsNil applies the IsNil predicate on the "district" field.
func DistrictIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldDistrict))
}

// DistrictNotNil applies the NotNil predicate on the "district" field.
func DistrictNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldDistrict))
}

// DistrictEqualFold applies the EqualFold predicate on the "district" field.
func DistrictEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldDistrict, v))
}

// DistrictContainsFold applies the ContainsFold predicate on the "district" field.
func DistrictContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldDistrict, v))
}

// SubdistrictEQ applies the EQ predicate on the "subdistrict" field.
func SubdistrictEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSubdistrict, v))
}

// SubdistrictNEQ applies the NEQ predicate on the "subdistrict" field.
func SubdistrictNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldSubdistrict, v))
}

// SubdistrictIn applies the In predicate on the "subdistrict" field.
func SubdistrictIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldSubdistrict, vs...))
}

// SubdistrictNotIn applies the NotIn predicate on the "subdistrict" field.
func SubdistrictNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldSubdistrict, vs...))
}

// SubdistrictGT applies the GT predicate on the "subdistrict" field.
func SubdistrictGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldSubdistrict, v))
}

// SubdistrictGTE applies the GTE predicate on the "subdistrict" field.
func SubdistrictGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldSubdistrict, v))
}

// SubdistrictLT applies the LT predicate on the "subdistrict" field.
func SubdistrictLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldSubdistrict, v))
}

// SubdistrictLTE applies the LTE predicate on the "subdistrict" field.
func SubdistrictLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldSubdistrict, v))
}

// SubdistrictContains applies the Contains predicate on the "subdistrict" field.
func SubdistrictContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldSubdistrict, v))
}

// SubdistrictHasPrefix applies the HasPrefix predicate on the "subdistrict" field.
func SubdistrictHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldSubdistrict, v))
}

// SubdistrictHasSuffix applies the HasSuffix predicate on the "subdistrict" field.
func SubdistrictHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldSubdistrict, v))
}

// SubdistrictIsNil applies the IsNil predicate on the "subdistrict" field.
func SubdistrictIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldSubdistrict))
}

// SubdistrictNotNil applies the NotNil predicate on the "subdistrict" field.
func SubdistrictNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldSubdistrict))
}

// SubdistrictEqualFold applies the EqualFold predicate on the "subdistrict" field.
func SubdistrictEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldSubdistrict, v))
}

// SubdistrictContainsFold applies the ContainsFold predicate on the "subdistrict" field.
func SubdistrictContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldSubdistrict, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldPostalCode, v))
}

// RegionConfidenceEQ applies the EQ predicate on the "region_confidence" field.
func RegionConfidenceEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRegionConfidence, v))
}

// RegionConfidenceNEQ applies the NEQ predicate on the "region_confidence" field.
func RegionConfidenceNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldRegionConfidence, v))
}

// RegionConfidenceIn applies the In predicate on the "region_confidence" field.
func RegionConfidenceIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldRegionConfidence, vs...))
}

// RegionConfidenceNotIn applies the NotIn predicate on the "region_confidence" field.
func RegionConfidenceNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldRegionConfidence, vs...))
}

// RegionConfidenceGT applies the GT predicate on the "region_confidence" field.
func RegionConfidenceGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldRegionConfidence, v))
}

// RegionConfidenceGTE applies the GTE predicate on the "region_confidence" field.
func RegionConfidenceGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldRegionConfidence, v))
}

// RegionConfidenceLT applies the LT predicate on the "region_confidence" field.
func RegionConfidenceLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldRegionConfidence, v))
}

// RegionConfidenceLTE applies the LTE predicate on the "region_confidence" field.
func RegionConfidenceLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldRegionConfidence, v))
}

// RegionConfidenceIsNil applies the IsNil predicate on the "region_confidence" field.
func RegionConfidenceIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldRegionConfidence))
}

// RegionConfidenceNotNil applies the NotNil predicate on the "region_confidence" field.
func RegionConfidenceNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldRegionConfidence))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldConfidence, v))
}

// PotentialItemCountEQ applies the EQ predicate on the "potential_item_count" field.
func PotentialItemCountEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPotentialItemCount, v))
}

// PotentialItemCountNEQ applies the NEQ predicate on the "potential_item_count" field.
func PotentialItemCountNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPotentialItemCount, v))
}

// PotentialItemCountIn applies the In predicate on the "potential_item_count" field.
func PotentialItemCountIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPotentialItemCount, vs...))
}

// PotentialItemCountNotIn applies the NotIn predicate on the "potential_item_count" field.
func PotentialItemCountNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPotentialItemCount, vs...))
}

// PotentialItemCountGT applies the GT predicate on the "potential_item_count" field.
func PotentialItemCountGT(v int) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPotentialItemCount, v))
}

// PotentialItemCountGTE applies the GTE predicate on the "potential_item_count" field.
func PotentialItemCountGTE(v int) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPotentialItemCount, v))
}

// PotentialItemCountLT applies the LT predicate on the "potential_item_count" field.
func PotentialItemCountLT(v int) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPotentialItemCount, v))
}

// PotentialItemCountLTE applies the LTE predicate on the "potential_item_count" field.
func PotentialItemCountLTE(v int) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPotentialItemCount, v))
}

// HasUnpricedItemsEQ applies the EQ predicate on the "has_unpriced_items" field.
func HasUnpricedItemsEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldHasUnpricedItems, v))
}

// HasUnpricedItemsNEQ applies the NEQ predicate on the "has_unpriced_items" field.
func HasUnpricedItemsNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldHasUnpricedItems, v))
}

// RawBlockEQ applies the EQ predicate on the "raw_block" field.
func RawBlockEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRawBlock, v))
}

// RawBlockNEQ applies the NEQ predicate on the "raw_block" field.
func RawBlockNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldRawBlock, v))
}

// RawBlockIn applies the In predicate on the "raw_block" field.
func RawBlockIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldRawBlock, vs...))
}

// RawBlockNotIn applies the NotIn predicate on the "raw_block" field.
func RawBlockNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldRawBlock, vs...))
}

// RawBlockGT applies the GT predicate on the "raw_block" field.
func RawBlockGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldRawBlock, v))
}

// RawBlockGTE applies the GTE predicate on the "raw_block" field.
func RawBlockGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldRawBlock, v))
}

// RawBlockLT applies the LT predicate on the "raw_block" field.
func RawBlockLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldRawBlock, v))
}

// RawBlockLTE applies the LTE predicate on the "raw_block" field.
func RawBlockLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldRawBlock, v))
}

// RawBlockContains applies the Contains predicate on the "raw_block" field.
func RawBlockContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldRawBlock, v))
}

// RawBlockHasPrefix applies the HasPrefix predicate on the "raw_block" field.
func RawBlockHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldRawBlock, v))
}

// RawBlockHasSuffix applies the HasSuffix predicate on the "raw_block" field.
func RawBlockHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldRawBlock, v))
}

// RawBlockIsNil applies the IsNil predicate on the "raw_block" field.
func RawBlockIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldRawBlock))
}

// RawBlockNotNil applies the NotNil predicate on the "raw_block" field.
func RawBlockNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldRawBlock))
}

// RawBlockEqualFold applies the EqualFold predicate on the "raw_block" field.
func RawBlockEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldRawBlock, v))
}

// RawBlockContainsFold applies the ContainsFold predicate on the "raw_block" field.
func RawBlockContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldRawBlock, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.OrderItem) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
