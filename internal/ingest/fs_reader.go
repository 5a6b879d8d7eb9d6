package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// allowedExts are the source formats we know how to read, lowercased sans '.'.
var allowedExts = map[string]struct{}{
	"txt": {}, "text": {}, "xlsx": {},
}

// FSReader reads message sources from the local filesystem.
type FSReader struct {
	logger *slog.Logger
}

var _ Reader = (*FSReader)(nil)

func NewFSReader(logger *slog.Logger) *FSReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSReader{logger: logger}
}

func (r *FSReader) ReadPath(ctx context.Context, path string) ([]Message, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	ext := normalizeExt(filepath.Ext(abs))
	if _, ok := allowedExts[ext]; !ok {
		return nil, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	var msgs []Message
	switch ext {
	case "xlsx":
		msgs, err = readXLSX(abs)
	default:
		msgs, err = readText(abs)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("ingest.read", "path", abs, "messages", len(msgs))
	return msgs, nil
}

// ReadDirectory walks root, skips hidden entries if requested, and reads
// every matching file. Per-file errors are logged and counted, not fatal.
func (r *FSReader) ReadDirectory(ctx context.Context, root string, skipHidden bool) ([]Message, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var msgs []Message
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			r.logger.Warn("ingest.walk_failed", "path", path, "error", walkErr)
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := allowedExts[normalizeExt(filepath.Ext(path))]; !ok {
			return nil
		}
		stats.Matched++

		fileMsgs, err := r.ReadPath(ctx, path)
		if err != nil {
			stats.Failed++
			r.logger.Warn("ingest.read_failed", "path", path, "error", err)
			return nil
		}
		msgs = append(msgs, fileMsgs...)
		stats.Messages += uint32(len(fileMsgs))
		return nil
	})
	if err != nil {
		return msgs, stats, fmt.Errorf("walk: %w", err)
	}
	return msgs, stats, nil
}

// readText treats the whole file as one pasted message; block segmentation
// happens downstream.
func readText(path string) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}
	return []Message{{SourcePath: path, Index: 0, Text: text}}, nil
}

// readXLSX reads the first sheet and treats each non-empty first-column cell
// as one pasted message. Spreadsheet order logs keep one message per row.
func readXLSX(path string) ([]Message, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var msgs []Message
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		text := strings.TrimSpace(row[0])
		if text == "" {
			continue
		}
		msgs = append(msgs, Message{SourcePath: path, Index: i, Text: text})
	}
	return msgs, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
