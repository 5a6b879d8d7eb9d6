package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestReader() *FSReader {
	return NewFSReader(slog.New(slog.DiscardHandler))
}

func writeXLSX(t *testing.T, dir string, cells []string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, text := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, text))
	}
	path := filepath.Join(dir, "orders.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadPathText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pesanan.txt")
	require.NoError(t, os.WriteFile(path, []byte("Nama: Budi\nHP: 081234567890\n"), 0o644))

	msgs, err := newTestReader().ReadPath(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Nama: Budi\nHP: 081234567890", msgs[0].Text)
	assert.Zero(t, msgs[0].Index)
}

func TestReadPathEmptyText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\n"), 0o644))

	msgs, err := newTestReader().ReadPath(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestReadPathXLSX(t *testing.T) {
	dir := t.TempDir()
	path := writeXLSX(t, dir, []string{
		"Nama: Budi\n2x Pocky @15000",
		"",
		"Nama: Siti\n1 Chitato 25000",
	})

	msgs, err := newTestReader().ReadPath(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, 0, msgs[0].Index)
	assert.Equal(t, 2, msgs[1].Index)
	assert.Contains(t, msgs[1].Text, "Chitato")
}

func TestReadPathUnsupportedExt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := newTestReader().ReadPath(context.Background(), path)
	assert.Error(t, err)
}

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("pesanan pertama dari budi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("tersembunyi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("bukan sumber"), 0o644))
	writeXLSX(t, dir, []string{"pesanan kedua dari siti"})

	msgs, stats, err := newTestReader().ReadDirectory(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Messages)
	assert.Zero(t, stats.Failed)
}

func TestReadDirectoryEmptyRoot(t *testing.T) {
	_, _, err := newTestReader().ReadDirectory(context.Background(), "  ", false)
	assert.Error(t, err)
}
