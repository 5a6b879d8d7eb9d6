// Code generated by ent, DO NOT EDIT.

package region

import (
	"entgo.io/ent/dialect/sql"
	"github.com/rahadianp/pesanin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Region {
	return predicate.Region(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Region {
	return predicate.Region(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Region {
	return predicate.Region(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Region {
	return predicate.Region(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Region {
	return predicate.Region(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Region {
	return predicate.Region(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Region {
	return predicate.Region(sql.FieldLTE(FieldID, id))
}

// Province applies equality check predicate on the "province" field. It's identical to ProvinceEQ.
func Province(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldProvince, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldCity, v))
}

// District applies equality check predicate on the "district" field. It's identical to DistrictEQ.
func District(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldDistrict, v))
}

// Subdistrict applies equality check predicate on the "subdistrict" field. It's identical to SubdistrictEQ.
func Subdistrict(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldSubdistrict, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldPostalCode, v))
}

// ProvinceEQ applies the EQ predicate on the "province" field.
func ProvinceEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldProvince, v))
}

// ProvinceNEQ applies the NEQ predicate on the "province" field.
func ProvinceNEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldNEQ(FieldProvince, v))
}

// ProvinceIn applies the In predicate on the "province" field.
func ProvinceIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldIn(FieldProvince, vs...))
}

// ProvinceNotIn applies the NotIn predicate on the "province" field.
func ProvinceNotIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldNotIn(FieldProvince, vs...))
}

// ProvinceGT applies the GT predicate on the "province" field.
func ProvinceGT(v string) predicate.Region {
	return predicate.Region(sql.FieldGT(FieldProvince, v))
}

// ProvinceGTE applies the GTE predicate on the "province" field.
func ProvinceGTE(v string) predicate.Region {
	return predicate.Region(sql.FieldGTE(FieldProvince, v))
}

// ProvinceLT applies the LT predicate on the "province" field.
func ProvinceLT(v string) predicate.Region {
	return predicate.Region(sql.FieldLT(FieldProvince, v))
}

// ProvinceLTE applies the LTE predicate on the "province" field.
func ProvinceLTE(v string) predicate.Region {
	return predicate.Region(sql.FieldLTE(FieldProvince, v))
}

// ProvinceContains applies the Contains predicate on the "province" field.
func ProvinceContains(v string) predicate.Region {
	return predicate.Region(sql.FieldContains(FieldProvince, v))
}

// ProvinceHasPrefix applies the HasPrefix predicate on the "province" field.
func ProvinceHasPrefix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasPrefix(FieldProvince, v))
}

// ProvinceHasSuffix applies the HasSuffix predicate on the "province" field.
func ProvinceHasSuffix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasSuffix(FieldProvince, v))
}

// ProvinceEqualFold applies the EqualFold predicate on the "province" field.
func ProvinceEqualFold(v string) predicate.Region {
	return predicate.Region(sql.FieldEqualFold(FieldProvince, v))
}

// ProvinceContainsFold applies the ContainsFold predicate on the "province" field.
func ProvinceContainsFold(v string) predicate.Region {
	return predicate.Region(sql.FieldContainsFold(FieldProvince, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Region {
	return predicate.Region(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Region {
	return predicate.Region(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Region {
	return predicate.Region(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Region {
	return predicate.Region(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Region {
	return predicate.Region(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Region {
	return predicate.Region(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Region {
	return predicate.Region(sql.FieldContainsFold(FieldCity, v))
}

// DistrictEQ applies the EQ predicate on the "district" field.
func DistrictEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldDistrict, v))
}

// DistrictNEQ applies the NEQ predicate on the "district" field.
func DistrictNEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldNEQ(FieldDistrict, v))
}

// DistrictIn applies the In predicate on the "district" field.
func DistrictIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldIn(FieldDistrict, vs...))
}

// DistrictNotIn applies the NotIn predicate on the "district" field.
func DistrictNotIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldNotIn(FieldDistrict, vs...))
}

// DistrictGT applies the GT predicate on the "district" field.
func DistrictGT(v string) predicate.Region {
	return predicate.Region(sql.FieldGT(FieldDistrict, v))
}

// DistrictGTE applies the GTE predicate on the "district" field.
func DistrictGTE(v string) predicate.Region {
	return predicate.Region(sql.FieldGTE(FieldDistrict, v))
}

// DistrictLT applies the LT predicate on the "district" field.
func DistrictLT(v string) predicate.Region {
	return predicate.Region(sql.FieldLT(FieldDistrict, v))
}

// DistrictLTE applies the LTE predicate on the "district" field.
func DistrictLTE(v string) predicate.Region {
	return predicate.Region(sql.FieldLTE(FieldDistrict, v))
}

// DistrictContains applies the Contains predicate on the "district" field.
func DistrictContains(v string) predicate.Region {
	return predicate.Region(sql.FieldContains(FieldDistrict, v))
}

// DistrictHasPrefix applies the HasPrefix predicate on the "district" field.
func DistrictHasPrefix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasPrefix(FieldDistrict, v))
}

// DistrictHasSuffix applies the HasSuffix predicate on the "district" field.
func DistrictHasSuffix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasSuffix(FieldDistrict, v))
}

// DistrictEqualFold applies the EqualFold predicate on the "district" field.
func DistrictEqualFold(v string) predicate.Region {
	return predicate.Region(sql.FieldEqualFold(FieldDistrict, v))
}

// DistrictContainsFold applies the ContainsFold predicate on the "district" field.
func DistrictContainsFold(v string) predicate.Region {
	return predicate.Region(sql.FieldContainsFold(FieldDistrict, v))
}

// SubdistrictEQ applies the EQ predicate on the "subdistrict" field.
func SubdistrictEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldSubdistrict, v))
}

// SubdistrictNEQ applies the NEQ predicate on the "subdistrict" field.
func SubdistrictNEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldNEQ(FieldSubdistrict, v))
}

// SubdistrictIn applies the In predicate on the "subdistrict" field.
func SubdistrictIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldIn(FieldSubdistrict, vs...))
}

// SubdistrictNotIn applies the NotIn predicate on the "subdistrict" field.
func SubdistrictNotIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldNotIn(FieldSubdistrict, vs...))
}

// SubdistrictGT applies the GT predicate on the "subdistrict" field.
func SubdistrictGT(v string) predicate.Region {
	return predicate.Region(sql.FieldGT(FieldSubdistrict, v))
}

// SubdistrictGTE applies the GTE predicate on the "subdistrict" field.
func SubdistrictGTE(v string) predicate.Region {
	return predicate.Region(sql.FieldGTE(FieldSubdistrict, v))
}

// SubdistrictLT applies the LT predicate on the "subdistrict" field.
func SubdistrictLT(v string) predicate.Region {
	return predicate.Region(sql.FieldLT(FieldSubdistrict, v))
}

// SubdistrictLTE applies the LTE predicate on the "subdistrict" field.
func SubdistrictLTE(v string) predicate.Region {
	return predicate.Region(sql.FieldLTE(FieldSubdistrict, v))
}

// SubdistrictContains applies the Contains predicate on the "subdistrict" field.
func SubdistrictContains(v string) predicate.Region {
	return predicate.Region(sql.FieldContains(FieldSubdistrict, v))
}

// SubdistrictHasPrefix applies the HasPrefix predicate on the "subdistrict" field.
func SubdistrictHasPrefix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasPrefix(FieldSubdistrict, v))
}

// SubdistrictHasSuffix applies the HasSuffix predicate on the "subdistrict" field.
func SubdistrictHasSuffix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasSuffix(FieldSubdistrict, v))
}

// SubdistrictEqualFold applies the EqualFold predicate on the "subdistrict" field.
func SubdistrictEqualFold(v string) predicate.Region {
	return predicate.Region(sql.FieldEqualFold(FieldSubdistrict, v))
}

// SubdistrictContainsFold applies the ContainsFold predicate on the "subdistrict" field.
func SubdistrictContainsFold(v string) predicate.Region {
	return predicate.Region(sql.FieldContainsFold(FieldSubdistrict, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.Region {
	return predicate.Region(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.Region {
	return predicate.Region(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.Region {
	return predicate.Region(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.Region {
	return predicate.Region(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.Region {
	return predicate.Region(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.Region {
	return predicate.Region(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.Region {
	return predicate.Region(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.Region {
	return predicate.Region(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Region {
	return predicate.Region(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Region {
	return predicate.Region(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.Region {
	return predicate.Region(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.Region {
	return predicate.Region(sql.FieldContainsFold(FieldPostalCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Region) predicate.Region {
	return predicate.Region(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Region) predicate.Region {
	return predicate.Region(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Region) predicate.Region {
	return predicate.Region(sql.NotPredicates(p))
}
