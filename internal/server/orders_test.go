package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rahadianp/pesanin/constants"
	"github.com/rahadianp/pesanin/gen/ent"
)

func TestParseStatusFilter(t *testing.T) {
	got, err := parseStatusFilter("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseStatusFilter("NEEDS_REVIEW")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, constants.ParseStatusNeedsReview, *got)

	_, err = parseStatusFilter("BOGUS")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("", "from_date")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDate("2026-08-20", "from_date")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), got.UTC())

	_, err = parseDate("20/08/2026", "from_date")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToProtoOrder(t *testing.T) {
	sub := "Kemiri Muka"
	conf := 0.85
	o := &ent.Order{
		ID:           uuid.New(),
		Status:       string(constants.ParseStatusRulesOK),
		Source:       string(constants.SourceRules),
		CustomerName: "Budi",
		Phone:        "081234567890",
		Subdistrict:  &sub,
		RegionConfidence: &conf,
		Confidence:   0.95,
		CreatedAt:    time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Edges: ent.OrderEdges{Items: []*ent.OrderItem{
			{ID: uuid.New(), Name: "Pocky", Qty: 2, UnitPrice: 15000, TotalPrice: 30000},
		}},
	}

	pb := toProtoOrder(o)
	assert.Equal(t, o.ID.String(), pb.Id)
	assert.Equal(t, "RULES_OK", pb.Status)
	assert.Equal(t, "Kemiri Muka", pb.Subdistrict)
	assert.Empty(t, pb.City, "unset region fields stay empty")
	assert.InDelta(t, 0.85, pb.RegionConfidence, 1e-9)
	require.Len(t, pb.Items, 1)
	assert.Equal(t, int64(30000), pb.Items[0].TotalPrice)
}
