package gazetteer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rahadianp/pesanin/internal/repository"
)

const insertBatchSize = 500

// LoadFile loads gazetteer rows from a CSV or XLSX file into the region
// table. Expected columns: province, city, district, subdistrict,
// postal_code. A header row is detected and skipped. Returns the number of
// rows loaded.
func LoadFile(ctx context.Context, regions repository.RegionRepository, path string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readXLSXRows(path)
	default:
		return 0, fmt.Errorf("unsupported gazetteer format: %q", filepath.Ext(path))
	}
	if err != nil {
		return 0, err
	}

	loaded := 0
	batch := make([]repository.RegionRecord, 0, insertBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := regions.BulkInsert(ctx, batch); err != nil {
			return err
		}
		loaded += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows {
		rec, ok := parseRegionRow(row)
		if !ok {
			if i == 0 {
				continue // header row
			}
			logger.Warn("gazetteer.row_skipped", "path", path, "row", i+1)
			continue
		}
		batch = append(batch, rec)
		if len(batch) >= insertBatchSize {
			if err := flush(); err != nil {
				return loaded, err
			}
		}
	}
	if err := flush(); err != nil {
		return loaded, err
	}

	logger.Info("gazetteer.loaded", "path", path, "rows", loaded)
	return loaded, nil
}

// parseRegionRow maps one row to a record. Province through subdistrict are
// required; the postal code is optional. Header rows fail the lowercase
// "provinsi"/"province" check.
func parseRegionRow(row []string) (repository.RegionRecord, bool) {
	if len(row) < 4 {
		return repository.RegionRecord{}, false
	}
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	rec := repository.RegionRecord{
		Province:    get(0),
		City:        get(1),
		District:    get(2),
		Subdistrict: get(3),
		PostalCode:  get(4),
	}
	if rec.Province == "" || rec.City == "" || rec.District == "" || rec.Subdistrict == "" {
		return repository.RegionRecord{}, false
	}
	switch strings.ToLower(rec.Province) {
	case "province", "provinsi":
		return repository.RegionRecord{}, false
	}
	return rec, true
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
