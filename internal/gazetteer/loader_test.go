package gazetteer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/repository"
)

type recordingRegions struct {
	inserted []repository.RegionRecord
}

func (r *recordingRegions) SearchCandidates(context.Context, []string, int) ([]*ent.Region, error) {
	return nil, nil
}

func (r *recordingRegions) Count(context.Context) (int, error) {
	return len(r.inserted), nil
}

func (r *recordingRegions) BulkInsert(_ context.Context, records []repository.RegionRecord) error {
	r.inserted = append(r.inserted, records...)
	return nil
}

func TestLoadFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.csv")
	csv := "province,city,district,subdistrict,postal_code\n" +
		"Jawa Barat,Depok,Beji,Kemiri Muka,16423\n" +
		"Jawa Barat,Depok,Beji,Pondok Cina,16424\n" +
		"DKI Jakarta,Jakarta Selatan,Kebayoran Baru,Senayan,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	regions := &recordingRegions{}
	n, err := LoadFile(context.Background(), regions, path, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, regions.inserted, 3)
	assert.Equal(t, "Kemiri Muka", regions.inserted[0].Subdistrict)
	assert.Equal(t, "16424", regions.inserted[1].PostalCode)
	assert.Empty(t, regions.inserted[2].PostalCode)
}

func TestLoadFileSkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.csv")
	csv := "Jawa Barat,Depok,Beji,Kemiri Muka,16423\n" +
		"Jawa Barat,,Beji,Pondok Cina,16424\n" +
		"too,short\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	regions := &recordingRegions{}
	n, err := LoadFile(context.Background(), regions, path, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	regions := &recordingRegions{}
	_, err := LoadFile(context.Background(), regions, "regions.json", slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestParseRegionRow(t *testing.T) {
	_, ok := parseRegionRow([]string{"Provinsi", "Kota", "Kecamatan", "Kelurahan", "Kode Pos"})
	assert.False(t, ok, "header row must be rejected")

	rec, ok := parseRegionRow([]string{" Jawa Barat ", "Depok", "Beji", "Kemiri Muka"})
	require.True(t, ok)
	assert.Equal(t, "Jawa Barat", rec.Province)
	assert.Empty(t, rec.PostalCode)
}
