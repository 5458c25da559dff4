// Package booking holds the derived-state computations behind the
// appointment form: per-row price/duration totals, weight-based price
// tier selection, and recurrence rule handling. Everything in here is
// pure and synchronous; callers own all state and I/O.
package booking

import "github.com/google/uuid"

// TierSource records how a row's price tier came to be selected.
type TierSource string

const (
	TierSourceNone   TierSource = "none"
	TierSourceAuto   TierSource = "auto"
	TierSourceManual TierSource = "manual"
	TierSourceStored TierSource = "stored"
)

// ServiceInfo is the slice of the service catalog the aggregator needs.
type ServiceInfo struct {
	ID       uuid.UUID
	Name     string
	Price    float64
	Duration int // default duration in minutes
}

// TierInfo is one weight-range price tier of a service. Nil bounds are
// open-ended.
type TierInfo struct {
	ID        uuid.UUID
	Label     string
	MinWeight *float64
	MaxWeight *float64
	Price     float64
}

// AddonInfo is one optional extra charge attachable to a row.
type AddonInfo struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

// RowSelection is the mutable selection state of one service row.
type RowSelection struct {
	RowID       uuid.UUID
	ServiceID   uuid.UUID
	PriceTierID *uuid.UUID
	TierSource  TierSource
	AddonIDs    []uuid.UUID
}

// RowTotals is the derived price/duration of a row, plus whether the
// row is blocked on a tier selection.
type RowTotals struct {
	Price        float64
	Duration     int
	RequiresTier bool
}

// ComputeRowTotals derives a row's totals from its resolved catalog
// data. A selected tier overrides the service base price; add-on prices
// stack on top. Catalog data that hasn't loaded yet (nil service)
// contributes zero. tierCount is the number of tiers the service
// offers: a row with tiers on offer but none selected requires one
// before the form may submit.
func ComputeRowTotals(svc *ServiceInfo, tier *TierInfo, addons []AddonInfo, tierCount int) RowTotals {
	var t RowTotals

	switch {
	case tier != nil:
		t.Price = tier.Price
	case svc != nil:
		t.Price = svc.Price
	}
	for _, a := range addons {
		t.Price += a.Price
	}

	if svc != nil {
		t.Duration = svc.Duration
	}

	t.RequiresTier = tierCount > 0 && tier == nil
	return t
}

// SumTotals rolls row totals up into a single aggregate. RequiresTier
// is true if any contributing row still needs a tier.
func SumTotals(rows ...RowTotals) RowTotals {
	var sum RowTotals
	for _, r := range rows {
		sum.Price += r.Price
		sum.Duration += r.Duration
		sum.RequiresTier = sum.RequiresTier || r.RequiresTier
	}
	return sum
}

// Totals is a per-row computed cache keyed by row id, consumed by
// parent aggregation (per pet, then per appointment).
type Totals map[uuid.UUID]RowTotals

// Set publishes a row's computed totals.
func (t Totals) Set(rowID uuid.UUID, totals RowTotals) {
	t[rowID] = totals
}

// Remove discards a row's totals when its row leaves the form.
func (t Totals) Remove(rowID uuid.UUID) {
	delete(t, rowID)
}

// Sum aggregates the totals of the given row ids. Unknown ids
// contribute nothing (their rows haven't computed yet).
func (t Totals) Sum(rowIDs ...uuid.UUID) RowTotals {
	var rows []RowTotals
	for _, id := range rowIDs {
		if rt, ok := t[id]; ok {
			rows = append(rows, rt)
		}
	}
	return SumTotals(rows...)
}

// SumAll aggregates every published row.
func (t Totals) SumAll() RowTotals {
	var sum RowTotals
	for _, rt := range t {
		sum.Price += rt.Price
		sum.Duration += rt.Duration
		sum.RequiresTier = sum.RequiresTier || rt.RequiresTier
	}
	return sum
}
