// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: orders/v1/orders.proto

package ordersv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	OrderService_ParseText_FullMethodName      = "/orders.v1.OrderService/ParseText"
	OrderService_EnqueueText_FullMethodName    = "/orders.v1.OrderService/EnqueueText"
	OrderService_ListOrders_FullMethodName     = "/orders.v1.OrderService/ListOrders"
	OrderService_GetOrder_FullMethodName       = "/orders.v1.OrderService/GetOrder"
	OrderService_SetOrderStatus_FullMethodName = "/orders.v1.OrderService/SetOrderStatus"
	OrderService_ExportOrders_FullMethodName   = "/orders.v1.OrderService/ExportOrders"
	OrderService_IngestFile_FullMethodName     = "/orders.v1.OrderService/IngestFile"
	OrderService_ResolveRegion_FullMethodName  = "/orders.v1.OrderService/ResolveRegion"
)

// OrderServiceClient is the client API for OrderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// OrderService exposes parsing, review, and export of chat orders.
type OrderServiceClient interface {
	// ParseText runs the extraction pipeline synchronously and returns the
	// persisted orders.
	ParseText(ctx context.Context, in *ParseTextRequest, opts ...grpc.CallOption) (*ParseTextResponse, error)
	// EnqueueText hands the raw text to the background worker pool.
	EnqueueText(ctx context.Context, in *EnqueueTextRequest, opts ...grpc.CallOption) (*EnqueueTextResponse, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
	GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error)
	SetOrderStatus(ctx context.Context, in *SetOrderStatusRequest, opts ...grpc.CallOption) (*SetOrderStatusResponse, error)
	ExportOrders(ctx context.Context, in *ExportOrdersRequest, opts ...grpc.CallOption) (*ExportOrdersResponse, error)
	// IngestFile reads messages out of a local txt/xlsx file and enqueues
	// each one for parsing.
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestFileResponse, error)
	// ResolveRegion matches a free-form address against the gazetteer.
	ResolveRegion(ctx context.Context, in *ResolveRegionRequest, opts ...grpc.CallOption) (*ResolveRegionResponse, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc}
}

func (c *orderServiceClient) ParseText(ctx context.Context, in *ParseTextRequest, opts ...grpc.CallOption) (*ParseTextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseTextResponse)
	err := c.cc.Invoke(ctx, OrderService_ParseText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) EnqueueText(ctx context.Context, in *EnqueueTextRequest, opts ...grpc.CallOption) (*EnqueueTextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueTextResponse)
	err := c.cc.Invoke(ctx, OrderService_EnqueueText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListOrdersResponse)
	err := c.cc.Invoke(ctx, OrderService_ListOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetOrderResponse)
	err := c.cc.Invoke(ctx, OrderService_GetOrder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) SetOrderStatus(ctx context.Context, in *SetOrderStatusRequest, opts ...grpc.CallOption) (*SetOrderStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetOrderStatusResponse)
	err := c.cc.Invoke(ctx, OrderService_SetOrderStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) ExportOrders(ctx context.Context, in *ExportOrdersRequest, opts ...grpc.CallOption) (*ExportOrdersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportOrdersResponse)
	err := c.cc.Invoke(ctx, OrderService_ExportOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestFileResponse)
	err := c.cc.Invoke(ctx, OrderService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) ResolveRegion(ctx context.Context, in *ResolveRegionRequest, opts ...grpc.CallOption) (*ResolveRegionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveRegionResponse)
	err := c.cc.Invoke(ctx, OrderService_ResolveRegion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OrderServiceServer is the server API for OrderService service.
// All implementations must embed UnimplementedOrderServiceServer
// for forward compatibility.
//
// OrderService exposes parsing, review, and export of chat orders.
type OrderServiceServer interface {
	// ParseText runs the extraction pipeline synchronously and returns the
	// persisted orders.
	ParseText(context.Context, *ParseTextRequest) (*ParseTextResponse, error)
	// EnqueueText hands the raw text to the background worker pool.
	EnqueueText(context.Context, *EnqueueTextRequest) (*EnqueueTextResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error)
	SetOrderStatus(context.Context, *SetOrderStatusRequest) (*SetOrderStatusResponse, error)
	ExportOrders(context.Context, *ExportOrdersRequest) (*ExportOrdersResponse, error)
	// IngestFile reads messages out of a local txt/xlsx file and enqueues
	// each one for parsing.
	IngestFile(context.Context, *IngestFileRequest) (*IngestFileResponse, error)
	// ResolveRegion matches a free-form address against the gazetteer.
	ResolveRegion(context.Context, *ResolveRegionRequest) (*ResolveRegionResponse, error)
	mustEmbedUnimplementedOrderServiceServer()
}

// UnimplementedOrderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOrderServiceServer struct{}

func (UnimplementedOrderServiceServer) ParseText(context.Context, *ParseTextRequest) (*ParseTextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseText not implemented")
}
func (UnimplementedOrderServiceServer) EnqueueText(context.Context, *EnqueueTextRequest) (*EnqueueTextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueText not implemented")
}
func (UnimplementedOrderServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOrders not implemented")
}
func (UnimplementedOrderServiceServer) GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOrder not implemented")
}
func (UnimplementedOrderServiceServer) SetOrderStatus(context.Context, *SetOrderStatusRequest) (*SetOrderStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetOrderStatus not implemented")
}
func (UnimplementedOrderServiceServer) ExportOrders(context.Context, *ExportOrdersRequest) (*ExportOrdersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportOrders not implemented")
}
func (UnimplementedOrderServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedOrderServiceServer) ResolveRegion(context.Context, *ResolveRegionRequest) (*ResolveRegionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveRegion not implemented")
}
func (UnimplementedOrderServiceServer) mustEmbedUnimplementedOrderServiceServer() {}
func (UnimplementedOrderServiceServer) testEmbeddedByValue()                      {}

// UnsafeOrderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OrderServiceServer will
// result in compilation errors.
type UnsafeOrderServiceServer interface {
	mustEmbedUnimplementedOrderServiceServer()
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	// If the following call pancis, it indicates UnimplementedOrderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

func _OrderService_ParseText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).ParseText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_ParseText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).ParseText(ctx, req.(*ParseTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_EnqueueText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).EnqueueText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_EnqueueText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).EnqueueText(ctx, req.(*EnqueueTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_ListOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).ListOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_ListOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).ListOrders(ctx, req.(*ListOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_GetOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).GetOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_GetOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).GetOrder(ctx, req.(*GetOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_SetOrderStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetOrderStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).SetOrderStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_SetOrderStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).SetOrderStatus(ctx, req.(*SetOrderStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_ExportOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).ExportOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_ExportOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).ExportOrders(ctx, req.(*ExportOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_ResolveRegion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveRegionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).ResolveRegion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_ResolveRegion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).ResolveRegion(ctx, req.(*ResolveRegionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OrderService_ServiceDesc is the grpc.ServiceDesc for OrderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orders.v1.OrderService",
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseText",
			Handler:    _OrderService_ParseText_Handler,
		},
		{
			MethodName: "EnqueueText",
			Handler:    _OrderService_EnqueueText_Handler,
		},
		{
			MethodName: "ListOrders",
			Handler:    _OrderService_ListOrders_Handler,
		},
		{
			MethodName: "GetOrder",
			Handler:    _OrderService_GetOrder_Handler,
		},
		{
			MethodName: "SetOrderStatus",
			Handler:    _OrderService_SetOrderStatus_Handler,
		},
		{
			MethodName: "ExportOrders",
			Handler:    _OrderService_ExportOrders_Handler,
		},
		{
			MethodName: "IngestFile",
			Handler:    _OrderService_IngestFile_Handler,
		},
		{
			MethodName: "ResolveRegion",
			Handler:    _OrderService_ResolveRegion_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orders/v1/orders.proto",
}
