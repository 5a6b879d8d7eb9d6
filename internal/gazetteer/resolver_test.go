package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahadianp/pesanin/internal/repository"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Jl. Margonda Raya No. 10, RT 03 RW 05, Beji, Depok 16424")
	assert.Contains(t, tokens, "margonda")
	assert.Contains(t, tokens, "beji")
	assert.Contains(t, tokens, "depok")
	assert.Contains(t, tokens, "16424")
	assert.NotContains(t, tokens, "jl")
	assert.NotContains(t, tokens, "no")
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("Jl. No. RT RW"))
}

func TestScoreCandidate(t *testing.T) {
	rec := repository.RegionRecord{
		Province:    "Jawa Barat",
		City:        "Depok",
		District:    "Beji",
		Subdistrict: "Kemiri Muka",
		PostalCode:  "16423",
	}

	full := ScoreCandidate("jl. margonda, kemiri muka, beji, depok, jawa barat 16423", rec)
	assert.InDelta(t, 1.0, full, 1e-9)

	partial := ScoreCandidate("beji, depok", rec)
	assert.InDelta(t, 0.45, partial, 1e-9)

	none := ScoreCandidate("jl. sudirman jakarta", rec)
	assert.Zero(t, none)
}

func TestScoreCandidateOrdering(t *testing.T) {
	addr := "kemiri muka, beji"
	deep := repository.RegionRecord{Subdistrict: "Kemiri Muka", District: "Beji"}
	shallow := repository.RegionRecord{City: "Beji"}
	assert.Greater(t, ScoreCandidate(addr, deep), ScoreCandidate(addr, shallow))
}
