package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/repository"
)

// Service is a tiny façade over the order repository that produces XLSX
// bytes for exports.
type Service struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

func NewService(orders repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, logger: logger}
}

// ExportOrdersXLSX returns an XLSX workbook (as bytes) for the given status
// and date window. One row per order item; contact columns repeat per item.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> all orders.
func (s *Service) ExportOrdersXLSX(ctx context.Context, status *constants.ParseStatus, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		now := time.Now().UTC()
		t := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	orders, err := s.orders.ListOrders(ctx, status, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheet {
		_ = f.DeleteSheet(defaultSheet)
	}

	headers := []string{
		"Date",
		"Customer",
		"Phone",
		"Address",
		"Region",
		"Item",
		"Qty",
		"Unit Price",
		"Total Price",
		"Status",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	rows := 0
	for _, o := range orders {
		items := o.Edges.Items
		if len(items) == 0 {
			writeOrderRow(f, sheet, row, o, nil)
			row++
			rows++
			continue
		}
		for _, it := range items {
			writeOrderRow(f, sheet, row, o, it)
			row++
			rows++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 48)
	_ = f.SetColWidth(sheet, "E", "E", 32)
	_ = f.SetColWidth(sheet, "F", "F", 28)
	_ = f.SetColWidth(sheet, "G", "I", 12)
	_ = f.SetColWidth(sheet, "J", "K", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"orders", len(orders),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeOrderRow(f *excelize.File, sheet string, row int, o *ent.Order, it *ent.OrderItem) {
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, o.CreatedAt.Format("2006-01-02"))
	write(2, o.CustomerName)
	write(3, o.Phone)
	write(4, o.Address)
	write(5, regionLabel(o))
	if it != nil {
		write(6, it.Name)
		write(7, it.Qty)
		write(8, it.UnitPrice)
		write(9, it.TotalPrice)
	}
	write(10, o.Status)
	write(11, fmt.Sprintf("%.2f", o.Confidence))
}

// regionLabel renders the resolved region as "Subdistrict, District, City"
// or empty when no match was merged.
func regionLabel(o *ent.Order) string {
	var parts []string
	for _, p := range []*string{o.Subdistrict, o.District, o.City} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}
