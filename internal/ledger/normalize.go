package ledger

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/pocketledger/backend/internal/types"
)

// NormalizeMonth reconstructs a schema-complete month from a possibly
// legacy-shaped stored month.
//
// It is the read path for selectors and never mutates its input; the result
// is consumed and thrown away, never persisted. Snapshots arriving from
// remote sync may contain months written by any client version, so every
// field falls back from the current shape to the legacy one and finally to
// the empty default.
//
// month == nil stands for a month that does not exist in the store.
func NormalizeMonth(key string, month *BudgetMonth, currency types.Currency) BudgetMonth {
	if month == nil {
		return EmptyMonth(key, currency)
	}

	resolved := month.Currency.Or(currency).Or(types.DefaultCurrency)

	// Start from the raw month so unknown-but-valid fields survive, then
	// overlay every explicitly resolved field below. Explicit derivations
	// win over partially populated legacy fields.
	out := *month
	out.Month = key
	out.Currency = resolved
	out.Rollovers = nil

	// Raw legacy months may carry no timestamps at all, they get the same
	// defaults a freshly created empty month would have.
	ts := now().In(time.UTC)
	if out.CreatedAt.IsZero() {
		out.CreatedAt = ts
	}
	if out.UpdatedAt.IsZero() {
		out.UpdatedAt = ts
	}

	out.PlannedItems = normalizePlannedItems(month, resolved)
	out.Actuals = normalizeActuals(month, resolved)
	out.UnassignedActuals = normalizeUnassigned(month.UnassignedActuals, resolved)
	out.Adjustments = normalizeAdjustments(key, month, resolved)
	out.RecurringAllocations = normalizeAllocations(key, month.RecurringAllocations, resolved)

	// Totals are displayed as last persisted, they are not recomputed on
	// the read path.
	out.Totals = month.Totals

	return out
}

func normalizePlannedItems(month *BudgetMonth, currency types.Currency) []PlannedItem {
	if len(month.PlannedItems) > 0 {
		return slices.Clone(month.PlannedItems)
	}

	items := make([]PlannedItem, 0, len(month.PlannedExpenses))
	for _, e := range month.PlannedExpenses {
		items = append(items, e.plannedItem(currency))
	}
	return items
}

func normalizeActuals(month *BudgetMonth, currency types.Currency) []Actual {
	if len(month.Actuals) > 0 {
		return slices.Clone(month.Actuals)
	}

	// Legacy months track realized spend on the planned expenses. Only
	// entries with a value become actuals, the others are dropped rather
	// than zero-filled.
	actuals := make([]Actual, 0, len(month.PlannedExpenses))
	for _, e := range month.PlannedExpenses {
		if e.ActualAmount == nil {
			continue
		}
		actuals = append(actuals, Actual{
			ID:          e.ID,
			CategoryID:  e.CategoryID,
			Description: e.Name,
			Amount:      *e.ActualAmount,
			Currency:    currency,
			OccurredOn:  e.DueDate,
		})
	}
	return actuals
}

func normalizeUnassigned(entries []UnassignedEntry, currency types.Currency) []UnassignedEntry {
	out := make([]UnassignedEntry, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.Transaction != nil:
			t := e.Transaction
			out = append(out, NewUnassignedActual(Actual{
				ID:            t.ID,
				CategoryID:    t.CategoryID,
				Description:   t.Description,
				Amount:        t.Amount.Abs(),
				Currency:      t.Currency.Or(currency),
				OccurredOn:    t.Date,
				TransactionID: t.ID,
			}))
		case e.Actual != nil:
			out = append(out, NewUnassignedActual(*e.Actual))
		}
	}
	return out
}

func normalizeAdjustments(key string, month *BudgetMonth, currency types.Currency) []Adjustment {
	if len(month.Adjustments) > 0 {
		return slices.Clone(month.Adjustments)
	}

	// Legacy rollover entries with a zero or missing remainder carry no
	// information and are dropped.
	adjustments := make([]Adjustment, 0, len(month.Rollovers))
	for _, r := range month.Rollovers {
		if r.RemainderAmount == nil || r.RemainderAmount.IsZero() {
			continue
		}
		adjustments = append(adjustments, Adjustment{
			ID:                  r.ID,
			CategoryID:          r.CategoryID,
			Amount:              *r.RemainderAmount,
			Currency:            currency,
			Reason:              "rollover",
			RolloverSourceMonth: key,
		})
	}
	return adjustments
}

func normalizeAllocations(key string, entries []AllocationEntry, currency types.Currency) []AllocationEntry {
	out := make([]AllocationEntry, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.Allocation != nil:
			out = append(out, NewAllocation(*e.Allocation))
		case e.Expense != nil:
			out = append(out, NewAllocation(e.Expense.allocation(key, currency)))
		}
	}
	return out
}
