package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeRowTotals_BaseService(t *testing.T) {
	svc := &ServiceInfo{ID: uuid.New(), Name: "Full Groom", Price: 55, Duration: 90}

	totals := ComputeRowTotals(svc, nil, nil, 0)

	assert.Equal(t, 55.0, totals.Price)
	assert.Equal(t, 90, totals.Duration)
	assert.False(t, totals.RequiresTier)
}

func TestComputeRowTotals_TierOverridesBasePrice(t *testing.T) {
	svc := &ServiceInfo{ID: uuid.New(), Price: 55, Duration: 90}
	tier := &TierInfo{ID: uuid.New(), Label: "Large", Price: 75}
	addons := []AddonInfo{
		{ID: uuid.New(), Name: "Nail trim", Price: 10},
		{ID: uuid.New(), Name: "Teeth brushing", Price: 8},
	}

	totals := ComputeRowTotals(svc, tier, addons, 3)

	// tier price replaces the base price entirely; add-ons stack
	assert.Equal(t, 93.0, totals.Price)
	assert.Equal(t, 90, totals.Duration)
	assert.False(t, totals.RequiresTier)
}

func TestComputeRowTotals_RequiresTier(t *testing.T) {
	svc := &ServiceInfo{ID: uuid.New(), Price: 55, Duration: 60}

	withTiersNoneSelected := ComputeRowTotals(svc, nil, nil, 2)
	assert.True(t, withTiersNoneSelected.RequiresTier)

	noTiers := ComputeRowTotals(svc, nil, nil, 0)
	assert.False(t, noTiers.RequiresTier)

	tier := &TierInfo{ID: uuid.New(), Price: 40}
	selected := ComputeRowTotals(svc, tier, nil, 2)
	assert.False(t, selected.RequiresTier)
}

func TestComputeRowTotals_UnloadedCatalogContributesZero(t *testing.T) {
	totals := ComputeRowTotals(nil, nil, nil, 0)

	assert.Equal(t, 0.0, totals.Price)
	assert.Equal(t, 0, totals.Duration)
	assert.False(t, totals.RequiresTier)
}

func TestComputeRowTotals_AddonsWithoutService(t *testing.T) {
	addons := []AddonInfo{{ID: uuid.New(), Price: 12}}

	totals := ComputeRowTotals(nil, nil, addons, 0)

	assert.Equal(t, 12.0, totals.Price)
	assert.Equal(t, 0, totals.Duration)
}

func TestSumTotals(t *testing.T) {
	sum := SumTotals(
		RowTotals{Price: 55, Duration: 90},
		RowTotals{Price: 20, Duration: 30},
		RowTotals{Price: 0, Duration: 0, RequiresTier: true},
	)

	assert.Equal(t, 75.0, sum.Price)
	assert.Equal(t, 120, sum.Duration)
	assert.True(t, sum.RequiresTier)
}

func TestSumTotals_Empty(t *testing.T) {
	assert.Equal(t, RowTotals{}, SumTotals())
}

func TestTotals_SumPerPetThenAppointment(t *testing.T) {
	totals := make(Totals)

	pet1Row1 := uuid.New()
	pet1Row2 := uuid.New()
	pet2Row1 := uuid.New()

	totals.Set(pet1Row1, RowTotals{Price: 55, Duration: 90})
	totals.Set(pet1Row2, RowTotals{Price: 15, Duration: 15})
	totals.Set(pet2Row1, RowTotals{Price: 40, Duration: 45})

	pet1 := totals.Sum(pet1Row1, pet1Row2)
	assert.Equal(t, 70.0, pet1.Price)
	assert.Equal(t, 105, pet1.Duration)

	appt := totals.SumAll()
	assert.Equal(t, 110.0, appt.Price)
	assert.Equal(t, 150, appt.Duration)
}

func TestTotals_RowAwaitingTierStaysInRollups(t *testing.T) {
	// A row whose service has tiers but none selected still quotes at
	// base price plus add-ons; aggregates must include it.
	svc := &ServiceInfo{ID: uuid.New(), Price: 55, Duration: 60}
	addons := []AddonInfo{{ID: uuid.New(), Name: "Nail trim", Price: 10}}

	awaiting := ComputeRowTotals(svc, nil, addons, 2)
	assert.True(t, awaiting.RequiresTier)
	assert.Equal(t, 65.0, awaiting.Price)
	assert.Equal(t, 60, awaiting.Duration)

	totals := make(Totals)
	resolvedRow := uuid.New()
	awaitingRow := uuid.New()
	totals.Set(resolvedRow, RowTotals{Price: 40, Duration: 45})
	totals.Set(awaitingRow, awaiting)

	appt := totals.SumAll()
	assert.Equal(t, 105.0, appt.Price)
	assert.Equal(t, 105, appt.Duration)
	assert.True(t, appt.RequiresTier)
}

func TestTotals_RemoveDiscardsRow(t *testing.T) {
	totals := make(Totals)
	row := uuid.New()
	totals.Set(row, RowTotals{Price: 30, Duration: 20})
	totals.Remove(row)

	assert.Equal(t, RowTotals{}, totals.SumAll())
}

func TestTotals_SumIgnoresUnknownRows(t *testing.T) {
	totals := make(Totals)
	known := uuid.New()
	totals.Set(known, RowTotals{Price: 25, Duration: 30})

	sum := totals.Sum(known, uuid.New())
	assert.Equal(t, 25.0, sum.Price)
	assert.Equal(t, 30, sum.Duration)
}
