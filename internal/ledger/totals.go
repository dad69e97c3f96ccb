package ledger

import "github.com/shopspring/decimal"

// ComputeTotals calculates the totals for one month from its list fields.
// It is a pure function and tolerates legacy-shaped months.
//
// Planned spend is read from the current plannedItems list when it has
// entries and from the legacy plannedExpenses list otherwise; the two are
// never summed together. The same preference applies to assigned actuals,
// which fall back to the actualAmount values on legacy planned expenses.
//
// The difference accounts for rollovers in both directions:
//
//	difference = planned + rolloverFromPrevious - rolloverToNext - actual
func ComputeTotals(month BudgetMonth) MonthTotals {
	var planned decimal.Decimal
	if len(month.PlannedItems) > 0 {
		for _, item := range month.PlannedItems {
			planned = planned.Add(item.PlannedAmount)
		}
	} else {
		for _, e := range month.PlannedExpenses {
			planned = planned.Add(e.PlannedAmount)
		}
	}

	var assigned decimal.Decimal
	if len(month.Actuals) > 0 {
		for _, a := range month.Actuals {
			assigned = assigned.Add(a.Amount)
		}
	} else {
		// Legacy months track realized spend on the planned expenses
		// themselves. Entries without a value carry no information and are
		// skipped, not counted as zero.
		for _, e := range month.PlannedExpenses {
			if e.ActualAmount != nil {
				assigned = assigned.Add(*e.ActualAmount)
			}
		}
	}

	var unassigned decimal.Decimal
	for _, e := range month.UnassignedActuals {
		unassigned = unassigned.Add(e.Amount())
	}

	actual := assigned.Add(unassigned)

	// An adjustment contributes to the month it targets and is subtracted
	// from the month it is sourced from, regardless of which month stores it.
	var rolloverIn, rolloverOut decimal.Decimal
	for _, a := range month.Adjustments {
		if a.RolloverTargetMonth == month.Month {
			rolloverIn = rolloverIn.Add(a.Amount)
		}
		if a.RolloverSourceMonth == month.Month {
			rolloverOut = rolloverOut.Add(a.Amount)
		}
	}

	return MonthTotals{
		Planned:              planned,
		Actual:               actual,
		Difference:           planned.Add(rolloverIn).Sub(rolloverOut).Sub(actual),
		RolloverFromPrevious: rolloverIn,
		RolloverToNext:       rolloverOut,
	}
}
