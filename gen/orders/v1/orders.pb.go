// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: orders/v1/orders.proto

package ordersv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type OrderItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Qty           int32                  `protobuf:"varint,3,opt,name=qty,proto3" json:"qty,omitempty"`
	UnitPrice     int64                  `protobuf:"varint,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	TotalPrice    int64                  `protobuf:"varint,5,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	IsManualTotal bool                   `protobuf:"varint,6,opt,name=is_manual_total,json=isManualTotal,proto3" json:"is_manual_total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderItem) Reset() {
	*x = OrderItem{}
	mi := &file_orders_v1_orders_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderItem) ProtoMessage() {}

func (x *OrderItem) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderItem.ProtoReflect.Descriptor instead.
func (*OrderItem) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{0}
}

func (x *OrderItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *OrderItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *OrderItem) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

func (x *OrderItem) GetUnitPrice() int64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *OrderItem) GetTotalPrice() int64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

func (x *OrderItem) GetIsManualTotal() bool {
	if x != nil {
		return x.IsManualTotal
	}
	return false
}

type Order struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status             string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Source             string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	CustomerName       string                 `protobuf:"bytes,4,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	Phone              string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	Address            string                 `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	Province           string                 `protobuf:"bytes,7,opt,name=province,proto3" json:"province,omitempty"`
	City               string                 `protobuf:"bytes,8,opt,name=city,proto3" json:"city,omitempty"`
	District           string                 `protobuf:"bytes,9,opt,name=district,proto3" json:"district,omitempty"`
	Subdistrict        string                 `protobuf:"bytes,10,opt,name=subdistrict,proto3" json:"subdistrict,omitempty"`
	PostalCode         string                 `protobuf:"bytes,11,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	RegionConfidence   float64                `protobuf:"fixed64,12,opt,name=region_confidence,json=regionConfidence,proto3" json:"region_confidence,omitempty"`
	Confidence         float64                `protobuf:"fixed64,13,opt,name=confidence,proto3" json:"confidence,omitempty"`
	PotentialItemCount int32                  `protobuf:"varint,14,opt,name=potential_item_count,json=potentialItemCount,proto3" json:"potential_item_count,omitempty"`
	HasUnpricedItems   bool                   `protobuf:"varint,15,opt,name=has_unpriced_items,json=hasUnpricedItems,proto3" json:"has_unpriced_items,omitempty"`
	Items              []*OrderItem           `protobuf:"bytes,16,rep,name=items,proto3" json:"items,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_orders_v1_orders_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{1}
}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Order) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Order) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *Order) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Order) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Order) GetProvince() string {
	if x != nil {
		return x.Province
	}
	return ""
}

func (x *Order) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Order) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *Order) GetSubdistrict() string {
	if x != nil {
		return x.Subdistrict
	}
	return ""
}

func (x *Order) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *Order) GetRegionConfidence() float64 {
	if x != nil {
		return x.RegionConfidence
	}
	return 0
}

func (x *Order) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Order) GetPotentialItemCount() int32 {
	if x != nil {
		return x.PotentialItemCount
	}
	return 0
}

func (x *Order) GetHasUnpricedItems() bool {
	if x != nil {
		return x.HasUnpricedItems
	}
	return false
}

func (x *Order) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Order) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ParseTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawText       string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextRequest) Reset() {
	*x = ParseTextRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextRequest) ProtoMessage() {}

func (x *ParseTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextRequest.ProtoReflect.Descriptor instead.
func (*ParseTextRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{2}
}

func (x *ParseTextRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ParseTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextResponse) Reset() {
	*x = ParseTextResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextResponse) ProtoMessage() {}

func (x *ParseTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextResponse.ProtoReflect.Descriptor instead.
func (*ParseTextResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{3}
}

func (x *ParseTextResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type EnqueueTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawText       string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"` // optional label for logs
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueTextRequest) Reset() {
	*x = EnqueueTextRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueTextRequest) ProtoMessage() {}

func (x *EnqueueTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueTextRequest.ProtoReflect.Descriptor instead.
func (*EnqueueTextRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{4}
}

func (x *EnqueueTextRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *EnqueueTextRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type EnqueueTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueTextResponse) Reset() {
	*x = EnqueueTextResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueTextResponse) ProtoMessage() {}

func (x *EnqueueTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueTextResponse.ProtoReflect.Descriptor instead.
func (*EnqueueTextResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{5}
}

func (x *EnqueueTextResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ListOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional, one of the stored status strings
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional, YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // optional, YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{6}
}

func (x *ListOrdersRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListOrdersRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListOrdersRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{7}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type GetOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderRequest) Reset() {
	*x = GetOrderRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderRequest) ProtoMessage() {}

func (x *GetOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderRequest.ProtoReflect.Descriptor instead.
func (*GetOrderRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{8}
}

func (x *GetOrderRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderResponse) Reset() {
	*x = GetOrderResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderResponse) ProtoMessage() {}

func (x *GetOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderResponse.ProtoReflect.Descriptor instead.
func (*GetOrderResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{9}
}

func (x *GetOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type SetOrderStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetOrderStatusRequest) Reset() {
	*x = SetOrderStatusRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetOrderStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetOrderStatusRequest) ProtoMessage() {}

func (x *SetOrderStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetOrderStatusRequest.ProtoReflect.Descriptor instead.
func (*SetOrderStatusRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{10}
}

func (x *SetOrderStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetOrderStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type SetOrderStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updated       bool                   `protobuf:"varint,1,opt,name=updated,proto3" json:"updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetOrderStatusResponse) Reset() {
	*x = SetOrderStatusResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetOrderStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetOrderStatusResponse) ProtoMessage() {}

func (x *SetOrderStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetOrderStatusResponse.ProtoReflect.Descriptor instead.
func (*SetOrderStatusResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{11}
}

func (x *SetOrderStatusResponse) GetUpdated() bool {
	if x != nil {
		return x.Updated
	}
	return false
}

type ExportOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional, YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // optional, YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersRequest) Reset() {
	*x = ExportOrdersRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersRequest) ProtoMessage() {}

func (x *ExportOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersRequest.ProtoReflect.Descriptor instead.
func (*ExportOrdersRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{12}
}

func (x *ExportOrdersRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportOrdersRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportOrdersRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersResponse) Reset() {
	*x = ExportOrdersResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersResponse) ProtoMessage() {}

func (x *ExportOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersResponse.ProtoReflect.Descriptor instead.
func (*ExportOrdersResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{13}
}

func (x *ExportOrdersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{14}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      uint32                 `protobuf:"varint,1,opt,name=messages,proto3" json:"messages,omitempty"`
	Queued        uint32                 `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileResponse) Reset() {
	*x = IngestFileResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileResponse) ProtoMessage() {}

func (x *IngestFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileResponse.ProtoReflect.Descriptor instead.
func (*IngestFileResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{15}
}

func (x *IngestFileResponse) GetMessages() uint32 {
	if x != nil {
		return x.Messages
	}
	return 0
}

func (x *IngestFileResponse) GetQueued() uint32 {
	if x != nil {
		return x.Queued
	}
	return 0
}

type ResolveRegionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveRegionRequest) Reset() {
	*x = ResolveRegionRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveRegionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveRegionRequest) ProtoMessage() {}

func (x *ResolveRegionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveRegionRequest.ProtoReflect.Descriptor instead.
func (*ResolveRegionRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{16}
}

func (x *ResolveRegionRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type RegionMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Province      string                 `protobuf:"bytes,1,opt,name=province,proto3" json:"province,omitempty"`
	City          string                 `protobuf:"bytes,2,opt,name=city,proto3" json:"city,omitempty"`
	District      string                 `protobuf:"bytes,3,opt,name=district,proto3" json:"district,omitempty"`
	Subdistrict   string                 `protobuf:"bytes,4,opt,name=subdistrict,proto3" json:"subdistrict,omitempty"`
	PostalCode    string                 `protobuf:"bytes,5,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	Confidence    float64                `protobuf:"fixed64,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegionMatch) Reset() {
	*x = RegionMatch{}
	mi := &file_orders_v1_orders_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegionMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegionMatch) ProtoMessage() {}

func (x *RegionMatch) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegionMatch.ProtoReflect.Descriptor instead.
func (*RegionMatch) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{17}
}

func (x *RegionMatch) GetProvince() string {
	if x != nil {
		return x.Province
	}
	return ""
}

func (x *RegionMatch) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *RegionMatch) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *RegionMatch) GetSubdistrict() string {
	if x != nil {
		return x.Subdistrict
	}
	return ""
}

func (x *RegionMatch) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *RegionMatch) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ResolveRegionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Match         *RegionMatch           `protobuf:"bytes,1,opt,name=match,proto3" json:"match,omitempty"` // unset when nothing matched
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveRegionResponse) Reset() {
	*x = ResolveRegionResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveRegionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveRegionResponse) ProtoMessage() {}

func (x *ResolveRegionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveRegionResponse.ProtoReflect.Descriptor instead.
func (*ResolveRegionResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{18}
}

func (x *ResolveRegionResponse) GetMatch() *RegionMatch {
	if x != nil {
		return x.Match
	}
	return nil
}

var File_orders_v1_orders_proto protoreflect.FileDescriptor

const file_orders_v1_orders_proto_rawDesc = "" +
	"\n" +
	"\x16orders/v1/orders.proto\x12\torders.v1\"\xa9\x01\n" +
	"\tOrderItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x10\n" +
	"\x03qty\x18\x03 \x01(\x05R\x03qty\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\x03R\tunitPrice\x12\x1f\n" +
	"\vtotal_price\x18\x05 \x01(\x03R\n" +
	"totalPrice\x12&\n" +
	"\x0fis_manual_total\x18\x06 \x01(\bR\risManualTotal\"\xa3\x04\n" +
	"\x05Order\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12#\n" +
	"\rcustomer_name\x18\x04 \x01(\tR\fcustomerName\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\x06 \x01(\tR\aaddress\x12\x1a\n" +
	"\bprovince\x18\a \x01(\tR\bprovince\x12\x12\n" +
	"\x04city\x18\b \x01(\tR\x04city\x12\x1a\n" +
	"\bdistrict\x18\t \x01(\tR\bdistrict\x12 \n" +
	"\vsubdistrict\x18\n" +
	" \x01(\tR\vsubdistrict\x12\x1f\n" +
	"\vpostal_code\x18\v \x01(\tR\n" +
	"postalCode\x12+\n" +
	"\x11region_confidence\x18\f \x01(\x01R\x10regionConfidence\x12\x1e\n" +
	"\n" +
	"confidence\x18\r \x01(\x01R\n" +
	"confidence\x120\n" +
	"\x14potential_item_count\x18\x0e \x01(\x05R\x12potentialItemCount\x12,\n" +
	"\x12has_unpriced_items\x18\x0f \x01(\bR\x10hasUnpricedItems\x12*\n" +
	"\x05items\x18\x10 \x03(\v2\x14.orders.v1.OrderItemR\x05items\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\"-\n" +
	"\x10ParseTextRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\"=\n" +
	"\x11ParseTextResponse\x12(\n" +
	"\x06orders\x18\x01 \x03(\v2\x10.orders.v1.OrderR\x06orders\"G\n" +
	"\x12EnqueueTextRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\"-\n" +
	"\x13EnqueueTextResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"a\n" +
	"\x11ListOrdersRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\">\n" +
	"\x12ListOrdersResponse\x12(\n" +
	"\x06orders\x18\x01 \x03(\v2\x10.orders.v1.OrderR\x06orders\"!\n" +
	"\x0fGetOrderRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\":\n" +
	"\x10GetOrderResponse\x12&\n" +
	"\x05order\x18\x01 \x01(\v2\x10.orders.v1.OrderR\x05order\"?\n" +
	"\x15SetOrderStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"2\n" +
	"\x16SetOrderStatusResponse\x12\x18\n" +
	"\aupdated\x18\x01 \x01(\bR\aupdated\"c\n" +
	"\x13ExportOrdersRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportOrdersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"H\n" +
	"\x12IngestFileResponse\x12\x1a\n" +
	"\bmessages\x18\x01 \x01(\rR\bmessages\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\rR\x06queued\"0\n" +
	"\x14ResolveRegionRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"\xbc\x01\n" +
	"\vRegionMatch\x12\x1a\n" +
	"\bprovince\x18\x01 \x01(\tR\bprovince\x12\x12\n" +
	"\x04city\x18\x02 \x01(\tR\x04city\x12\x1a\n" +
	"\bdistrict\x18\x03 \x01(\tR\bdistrict\x12 \n" +
	"\vsubdistrict\x18\x04 \x01(\tR\vsubdistrict\x12\x1f\n" +
	"\vpostal_code\x18\x05 \x01(\tR\n" +
	"postalCode\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x01R\n" +
	"confidence\"E\n" +
	"\x15ResolveRegionResponse\x12,\n" +
	"\x05match\x18\x01 \x01(\v2\x16.orders.v1.RegionMatchR\x05match2\xfb\x04\n" +
	"\fOrderService\x12F\n" +
	"\tParseText\x12\x1b.orders.v1.ParseTextRequest\x1a\x1c.orders.v1.ParseTextResponse\x12L\n" +
	"\vEnqueueText\x12\x1d.orders.v1.EnqueueTextRequest\x1a\x1e.orders.v1.EnqueueTextResponse\x12I\n" +
	"\n" +
	"ListOrders\x12\x1c.orders.v1.ListOrdersRequest\x1a\x1d.orders.v1.ListOrdersResponse\x12C\n" +
	"\bGetOrder\x12\x1a.orders.v1.GetOrderRequest\x1a\x1b.orders.v1.GetOrderResponse\x12U\n" +
	"\x0eSetOrderStatus\x12 .orders.v1.SetOrderStatusRequest\x1a!.orders.v1.SetOrderStatusResponse\x12O\n" +
	"\fExportOrders\x12\x1e.orders.v1.ExportOrdersRequest\x1a\x1f.orders.v1.ExportOrdersResponse\x12I\n" +
	"\n" +
	"IngestFile\x12\x1c.orders.v1.IngestFileRequest\x1a\x1d.orders.v1.IngestFileResponse\x12R\n" +
	"\rResolveRegion\x12\x1f.orders.v1.ResolveRegionRequest\x1a .orders.v1.ResolveRegionResponseB5Z3github.com/rahadianp/pesanin/gen/orders/v1;ordersv1b\x06proto3"

var (
	file_orders_v1_orders_proto_rawDescOnce sync.Once
	file_orders_v1_orders_proto_rawDescData []byte
)

func file_orders_v1_orders_proto_rawDescGZIP() []byte {
	file_orders_v1_orders_proto_rawDescOnce.Do(func() {
		file_orders_v1_orders_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_orders_v1_orders_proto_rawDesc), len(file_orders_v1_orders_proto_rawDesc)))
	})
	return file_orders_v1_orders_proto_rawDescData
}

var file_orders_v1_orders_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_orders_v1_orders_proto_goTypes = []any{
	(*OrderItem)(nil),              // 0: orders.v1.OrderItem
	(*Order)(nil),                  // 1: orders.v1.Order
	(*ParseTextRequest)(nil),       // 2: orders.v1.ParseTextRequest
	(*ParseTextResponse)(nil),      // 3: orders.v1.ParseTextResponse
	(*EnqueueTextRequest)(nil),     // 4: orders.v1.EnqueueTextRequest
	(*EnqueueTextResponse)(nil),    // 5: orders.v1.EnqueueTextResponse
	(*ListOrdersRequest)(nil),      // 6: orders.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),     // 7: orders.v1.ListOrdersResponse
	(*GetOrderRequest)(nil),        // 8: orders.v1.GetOrderRequest
	(*GetOrderResponse)(nil),       // 9: orders.v1.GetOrderResponse
	(*SetOrderStatusRequest)(nil),  // 10: orders.v1.SetOrderStatusRequest
	(*SetOrderStatusResponse)(nil), // 11: orders.v1.SetOrderStatusResponse
	(*ExportOrdersRequest)(nil),    // 12: orders.v1.ExportOrdersRequest
	(*ExportOrdersResponse)(nil),   // 13: orders.v1.ExportOrdersResponse
	(*IngestFileRequest)(nil),      // 14: orders.v1.IngestFileRequest
	(*IngestFileResponse)(nil),     // 15: orders.v1.IngestFileResponse
	(*ResolveRegionRequest)(nil),   // 16: orders.v1.ResolveRegionRequest
	(*RegionMatch)(nil),            // 17: orders.v1.RegionMatch
	(*ResolveRegionResponse)(nil),  // 18: orders.v1.ResolveRegionResponse
}
var file_orders_v1_orders_proto_depIdxs = []int32{
	0,  // 0: orders.v1.Order.items:type_name -> orders.v1.OrderItem
	1,  // 1: orders.v1.ParseTextResponse.orders:type_name -> orders.v1.Order
	1,  // 2: orders.v1.ListOrdersResponse.orders:type_name -> orders.v1.Order
	1,  // 3: orders.v1.GetOrderResponse.order:type_name -> orders.v1.Order
	17, // 4: orders.v1.ResolveRegionResponse.match:type_name -> orders.v1.RegionMatch
	2,  // 5: orders.v1.OrderService.ParseText:input_type -> orders.v1.ParseTextRequest
	4,  // 6: orders.v1.OrderService.EnqueueText:input_type -> orders.v1.EnqueueTextRequest
	6,  // 7: orders.v1.OrderService.ListOrders:input_type -> orders.v1.ListOrdersRequest
	8,  // 8: orders.v1.OrderService.GetOrder:input_type -> orders.v1.GetOrderRequest
	10, // 9: orders.v1.OrderService.SetOrderStatus:input_type -> orders.v1.SetOrderStatusRequest
	12, // 10: orders.v1.OrderService.ExportOrders:input_type -> orders.v1.ExportOrdersRequest
	14, // 11: orders.v1.OrderService.IngestFile:input_type -> orders.v1.IngestFileRequest
	16, // 12: orders.v1.OrderService.ResolveRegion:input_type -> orders.v1.ResolveRegionRequest
	3,  // 13: orders.v1.OrderService.ParseText:output_type -> orders.v1.ParseTextResponse
	5,  // 14: orders.v1.OrderService.EnqueueText:output_type -> orders.v1.EnqueueTextResponse
	7,  // 15: orders.v1.OrderService.ListOrders:output_type -> orders.v1.ListOrdersResponse
	9,  // 16: orders.v1.OrderService.GetOrder:output_type -> orders.v1.GetOrderResponse
	11, // 17: orders.v1.OrderService.SetOrderStatus:output_type -> orders.v1.SetOrderStatusResponse
	13, // 18: orders.v1.OrderService.ExportOrders:output_type -> orders.v1.ExportOrdersResponse
	15, // 19: orders.v1.OrderService.IngestFile:output_type -> orders.v1.IngestFileResponse
	18, // 20: orders.v1.OrderService.ResolveRegion:output_type -> orders.v1.ResolveRegionResponse
	13, // [13:21] is the sub-list for method output_type
	5,  // [5:13] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_orders_v1_orders_proto_init() }
func file_orders_v1_orders_proto_init() {
	if File_orders_v1_orders_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_orders_v1_orders_proto_rawDesc), len(file_orders_v1_orders_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_orders_v1_orders_proto_goTypes,
		DependencyIndexes: file_orders_v1_orders_proto_depIdxs,
		MessageInfos:      file_orders_v1_orders_proto_msgTypes,
	}.Build()
	File_orders_v1_orders_proto = out.File
	file_orders_v1_orders_proto_goTypes = nil
	file_orders_v1_orders_proto_depIdxs = nil
}
