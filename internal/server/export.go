package server

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordersv1 "github.com/rahadianp/pesanin/gen/orders/v1"
)

func (s *OrderService) ExportOrders(ctx context.Context, req *ordersv1.ExportOrdersRequest) (*ordersv1.ExportOrdersResponse, error) {
	statusFilter, err := parseStatusFilter(req.GetStatus())
	if err != nil {
		return nil, err
	}
	from, err := parseDate(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportOrdersXLSX(ctx, statusFilter, from, to)
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &ordersv1.ExportOrdersResponse{Xlsx: xlsx}, nil
}
