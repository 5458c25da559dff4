package booking

// MatchTier returns the first tier whose [MinWeight, MaxWeight] range
// contains weight. Both bounds are inclusive; a nil bound is unbounded.
// Ties between overlapping tiers go to the first match in list order.
func MatchTier(weight float64, tiers []TierInfo) (TierInfo, bool) {
	for _, t := range tiers {
		if t.MinWeight != nil && weight < *t.MinWeight {
			continue
		}
		if t.MaxWeight != nil && weight > *t.MaxWeight {
			continue
		}
		return t, true
	}
	return TierInfo{}, false
}

// AutoSelectTier reconciles a row's tier selection with the pet's
// weight. A manual or stored selection is never overridden. Otherwise,
// a valid weight selects the first matching tier and marks the source
// auto; a nil weight clears a previous auto selection back to none.
// The returned bool reports whether the selection changed.
func AutoSelectTier(sel RowSelection, weight *float64, tiers []TierInfo) (RowSelection, bool) {
	if sel.TierSource == TierSourceManual || sel.TierSource == TierSourceStored {
		return sel, false
	}

	if weight == nil {
		if sel.TierSource == TierSourceAuto && sel.PriceTierID != nil {
			sel.PriceTierID = nil
			sel.TierSource = TierSourceNone
			return sel, true
		}
		return sel, false
	}

	match, ok := MatchTier(*weight, tiers)
	if !ok {
		if sel.TierSource == TierSourceAuto && sel.PriceTierID != nil {
			sel.PriceTierID = nil
			sel.TierSource = TierSourceNone
			return sel, true
		}
		return sel, false
	}

	if sel.PriceTierID != nil && *sel.PriceTierID == match.ID {
		return sel, false
	}

	id := match.ID
	sel.PriceTierID = &id
	sel.TierSource = TierSourceAuto
	return sel, true
}
