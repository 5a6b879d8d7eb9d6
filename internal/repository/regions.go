package repository

import (
	"context"
	"log/slog"

	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/gen/ent/predicate"
	"github.com/rahadianp/pesanin/gen/ent/region"
)

// RegionRecord is one gazetteer row to load.
type RegionRecord struct {
	Province    string
	City        string
	District    string
	Subdistrict string
	PostalCode  string
}

type RegionRepository interface {
	// SearchCandidates returns rows whose subdistrict, district, city, or
	// postal code matches any of the tokens (case-insensitive).
	SearchCandidates(ctx context.Context, tokens []string, limit int) ([]*ent.Region, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, records []RegionRecord) error
}

type regionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRegionRepository(client *ent.Client, logger *slog.Logger) RegionRepository {
	return &regionRepository{client: client, logger: logger}
}

func (r *regionRepository) SearchCandidates(ctx context.Context, tokens []string, limit int) ([]*ent.Region, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	preds := make([]predicate.Region, 0, len(tokens)*4)
	for _, tok := range tokens {
		preds = append(preds,
			region.SubdistrictEqualFold(tok),
			region.DistrictEqualFold(tok),
			region.CityEqualFold(tok),
			region.PostalCodeEQ(tok),
		)
	}
	rows, err := r.client.Region.Query().
		Where(region.Or(preds...)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to search regions", "tokens", len(tokens), "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *regionRepository) Count(ctx context.Context) (int, error) {
	return r.client.Region.Query().Count(ctx)
}

func (r *regionRepository) BulkInsert(ctx context.Context, records []RegionRecord) error {
	if len(records) == 0 {
		return nil
	}
	bulk := make([]*ent.RegionCreate, len(records))
	for i, rec := range records {
		bulk[i] = r.client.Region.Create().
			SetProvince(rec.Province).
			SetCity(rec.City).
			SetDistrict(rec.District).
			SetSubdistrict(rec.Subdistrict).
			SetPostalCode(rec.PostalCode)
	}
	if err := r.client.Region.CreateBulk(bulk...).Exec(ctx); err != nil {
		r.logger.Error("failed to bulk insert regions", "count", len(records), "error", err)
		return err
	}
	r.logger.Info("regions loaded", "count", len(records))
	return nil
}
