package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func twoTiers() []TierInfo {
	return []TierInfo{
		{ID: uuid.New(), Label: "Small", MinWeight: fp(0), MaxWeight: fp(5), Price: 20},
		{ID: uuid.New(), Label: "Large", MinWeight: fp(5), MaxWeight: fp(10), Price: 30},
	}
}

func TestMatchTier_MinBoundaryInclusive(t *testing.T) {
	tiers := twoTiers()

	match, ok := MatchTier(7, tiers)
	require.True(t, ok)
	assert.Equal(t, tiers[1].ID, match.ID)
	assert.Equal(t, 30.0, match.Price)
}

func TestMatchTier_OverlapFirstMatchWins(t *testing.T) {
	tiers := twoTiers()

	// 5 sits in both ranges; list order decides
	match, ok := MatchTier(5, tiers)
	require.True(t, ok)
	assert.Equal(t, tiers[0].ID, match.ID)
}

func TestMatchTier_OpenEndedBounds(t *testing.T) {
	tiers := []TierInfo{
		{ID: uuid.New(), Label: "Up to 10", MaxWeight: fp(10), Price: 25},
		{ID: uuid.New(), Label: "Over 10", MinWeight: fp(10.01), Price: 45},
	}

	light, ok := MatchTier(3, tiers)
	require.True(t, ok)
	assert.Equal(t, tiers[0].ID, light.ID)

	heavy, ok := MatchTier(42, tiers)
	require.True(t, ok)
	assert.Equal(t, tiers[1].ID, heavy.ID)
}

func TestMatchTier_NoMatch(t *testing.T) {
	tiers := twoTiers()

	_, ok := MatchTier(25, tiers)
	assert.False(t, ok)
}

func TestAutoSelectTier_SelectsByWeight(t *testing.T) {
	tiers := twoTiers()
	sel := RowSelection{RowID: uuid.New(), ServiceID: uuid.New(), TierSource: TierSourceNone}

	out, changed := AutoSelectTier(sel, fp(7), tiers)

	assert.True(t, changed)
	require.NotNil(t, out.PriceTierID)
	assert.Equal(t, tiers[1].ID, *out.PriceTierID)
	assert.Equal(t, TierSourceAuto, out.TierSource)
}

func TestAutoSelectTier_ReselectsOnWeightChange(t *testing.T) {
	tiers := twoTiers()
	sel := RowSelection{RowID: uuid.New(), ServiceID: uuid.New()}

	sel, _ = AutoSelectTier(sel, fp(3), tiers)
	require.NotNil(t, sel.PriceTierID)
	assert.Equal(t, tiers[0].ID, *sel.PriceTierID)

	sel, changed := AutoSelectTier(sel, fp(8), tiers)
	assert.True(t, changed)
	assert.Equal(t, tiers[1].ID, *sel.PriceTierID)
	assert.Equal(t, TierSourceAuto, sel.TierSource)
}

func TestAutoSelectTier_NoChangeWhenSameTierMatches(t *testing.T) {
	tiers := twoTiers()
	sel := RowSelection{RowID: uuid.New(), ServiceID: uuid.New()}

	sel, _ = AutoSelectTier(sel, fp(7), tiers)
	out, changed := AutoSelectTier(sel, fp(8), tiers)

	assert.False(t, changed)
	assert.Equal(t, sel, out)
}

func TestAutoSelectTier_NeverOverridesManual(t *testing.T) {
	tiers := twoTiers()
	manual := tiers[0].ID
	sel := RowSelection{
		RowID:       uuid.New(),
		ServiceID:   uuid.New(),
		PriceTierID: &manual,
		TierSource:  TierSourceManual,
	}

	out, changed := AutoSelectTier(sel, fp(8), tiers)
	assert.False(t, changed)
	assert.Equal(t, manual, *out.PriceTierID)
	assert.Equal(t, TierSourceManual, out.TierSource)

	// a weight change to nil doesn't clear a manual selection either
	out, changed = AutoSelectTier(sel, nil, tiers)
	assert.False(t, changed)
	assert.Equal(t, manual, *out.PriceTierID)
}

func TestAutoSelectTier_NeverOverridesStored(t *testing.T) {
	tiers := twoTiers()
	stored := tiers[1].ID
	sel := RowSelection{
		RowID:       uuid.New(),
		ServiceID:   uuid.New(),
		PriceTierID: &stored,
		TierSource:  TierSourceStored,
	}

	out, changed := AutoSelectTier(sel, fp(2), tiers)
	assert.False(t, changed)
	assert.Equal(t, stored, *out.PriceTierID)
}

func TestAutoSelectTier_NilWeightClearsAutoSelection(t *testing.T) {
	tiers := twoTiers()
	sel := RowSelection{RowID: uuid.New(), ServiceID: uuid.New()}

	sel, _ = AutoSelectTier(sel, fp(7), tiers)
	require.NotNil(t, sel.PriceTierID)

	out, changed := AutoSelectTier(sel, nil, tiers)
	assert.True(t, changed)
	assert.Nil(t, out.PriceTierID)
	assert.Equal(t, TierSourceNone, out.TierSource)
}

func TestAutoSelectTier_NoMatchClearsAutoSelection(t *testing.T) {
	tiers := twoTiers()
	sel := RowSelection{RowID: uuid.New(), ServiceID: uuid.New()}

	sel, _ = AutoSelectTier(sel, fp(7), tiers)
	require.NotNil(t, sel.PriceTierID)

	out, changed := AutoSelectTier(sel, fp(99), tiers)
	assert.True(t, changed)
	assert.Nil(t, out.PriceTierID)
	assert.Equal(t, TierSourceNone, out.TierSource)
}

func TestAutoSelectTier_NilWeightWithNoSelectionIsNoop(t *testing.T) {
	sel := RowSelection{RowID: uuid.New(), ServiceID: uuid.New(), TierSource: TierSourceNone}

	out, changed := AutoSelectTier(sel, nil, twoTiers())
	assert.False(t, changed)
	assert.Nil(t, out.PriceTierID)
}
