// Package gazetteer resolves free-form address text against the
// administrative-region reference table. It is consulted once per recovered
// address; a nil result just means the raw address stays unstructured.
package gazetteer

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/textparse"
)

const candidateLimit = 50

// addressStopwords are street-level tokens that never name a region.
var addressStopwords = map[string]struct{}{
	"jl": {}, "jalan": {}, "gg": {}, "gang": {}, "blok": {}, "no": {},
	"rt": {}, "rw": {}, "komplek": {}, "komp": {}, "perum": {},
	"perumahan": {}, "ruko": {}, "dekat": {}, "samping": {}, "depan": {},
	"belakang": {}, "kel": {}, "kec": {}, "kab": {}, "kode": {}, "pos": {},
}

var rePostal = regexp.MustCompile(`\b\d{5}\b`)

type Resolver struct {
	regions repository.RegionRepository
	logger  *slog.Logger
}

var _ textparse.RegionResolver = (*Resolver)(nil)

func NewResolver(regions repository.RegionRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{regions: regions, logger: logger}
}

// ResolveRegion tokenizes the address, pulls matching gazetteer rows, and
// returns the best-scoring candidate. Scores are heuristic: deeper
// administrative levels weigh more because they disambiguate better.
func (r *Resolver) ResolveRegion(ctx context.Context, address string) (*textparse.RegionMatch, error) {
	tokens := Tokenize(address)
	if len(tokens) == 0 {
		return nil, nil
	}

	rows, err := r.regions.SearchCandidates(ctx, tokens, candidateLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lower := strings.ToLower(address)
	var best *ent.Region
	bestScore := 0.0
	for _, row := range rows {
		score := ScoreCandidate(lower, repository.RegionRecord{
			Province:    row.Province,
			City:        row.City,
			District:    row.District,
			Subdistrict: row.Subdistrict,
			PostalCode:  row.PostalCode,
		})
		if score > bestScore {
			best, bestScore = row, score
		}
	}
	if best == nil {
		return nil, nil
	}

	r.logger.Debug("gazetteer.resolved",
		"subdistrict", best.Subdistrict,
		"city", best.City,
		"confidence", bestScore,
	)
	return &textparse.RegionMatch{
		Province:    best.Province,
		City:        best.City,
		District:    best.District,
		Subdistrict: best.Subdistrict,
		PostalCode:  best.PostalCode,
		Confidence:  bestScore,
	}, nil
}

// Tokenize extracts lookup tokens from an address: words of 3+ letters that
// are not street-level noise, plus any 5-digit postal code.
func Tokenize(address string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	add := func(tok string) {
		if _, dup := seen[tok]; dup {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	for _, word := range strings.Fields(strings.ToLower(address)) {
		word = strings.Trim(word, ".,;:()")
		if len(word) < 3 {
			continue
		}
		if _, stop := addressStopwords[word]; stop {
			continue
		}
		if strings.IndexFunc(word, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
			continue
		}
		add(word)
	}
	for _, code := range rePostal.FindAllString(address, -1) {
		add(code)
	}
	return tokens
}

// ScoreCandidate rates how well one gazetteer row explains the address
// text. Subdistrict and postal code are the strongest signals.
func ScoreCandidate(addressLower string, rec repository.RegionRecord) float64 {
	score := 0.0
	if rec.Subdistrict != "" && strings.Contains(addressLower, strings.ToLower(rec.Subdistrict)) {
		score += 0.40
	}
	if rec.District != "" && strings.Contains(addressLower, strings.ToLower(rec.District)) {
		score += 0.25
	}
	if rec.City != "" && strings.Contains(addressLower, strings.ToLower(rec.City)) {
		score += 0.20
	}
	if rec.Province != "" && strings.Contains(addressLower, strings.ToLower(rec.Province)) {
		score += 0.10
	}
	if rec.PostalCode != "" && strings.Contains(addressLower, rec.PostalCode) {
		score += 0.30
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
