package ledger

import (
	"golang.org/x/exp/slices"

	"github.com/pocketledger/backend/internal/types"
)

// The selectors in this file are the read-only boundary of the engine.
// Everything they return went through NormalizeMonth, so consumers never see
// an un-normalized legacy shape.

// MonthKeys returns all month keys in the store, sorted.
func (s Snapshot) MonthKeys() []string {
	keys := make([]string, 0, len(s.Months))
	for key := range s.Months {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// NormalizedMonth returns the normalized month for the key. Months that do
// not exist normalize to the empty month.
func (s Snapshot) NormalizedMonth(key string) BudgetMonth {
	currency := s.Currency.Or(types.DefaultCurrency)

	month, ok := s.Months[key]
	if !ok {
		return NormalizeMonth(key, nil, currency)
	}
	return NormalizeMonth(key, &month, currency)
}

// NormalizedMonths returns every stored month normalized, sorted by key.
func (s Snapshot) NormalizedMonths() []BudgetMonth {
	months := make([]BudgetMonth, 0, len(s.Months))
	for _, key := range s.MonthKeys() {
		months = append(months, s.NormalizedMonth(key))
	}
	return months
}

// TotalsSummary sums the cached totals of all months.
func (s Snapshot) TotalsSummary() MonthTotals {
	var sum MonthTotals
	for _, month := range s.NormalizedMonths() {
		sum = sum.Add(month.Totals)
	}
	return sum
}

// PlannedExpenseByID returns the stored planned expense with the given id
// together with its owning month key.
func (s Snapshot) PlannedExpenseByID(id string) (PlannedExpense, string, bool) {
	key, ok := s.monthOfPlanned(id)
	if !ok {
		return PlannedExpense{}, "", false
	}

	for _, e := range s.Months[key].PlannedExpenses {
		if e.ID == id {
			return e, key, true
		}
	}
	return PlannedExpense{}, "", false
}

// RecurringExpenseByID returns the stored recurring expense with the given id.
func (s Snapshot) RecurringExpenseByID(id string) (RecurringExpense, bool) {
	idx := slices.IndexFunc(s.RecurringExpenses, func(e RecurringExpense) bool {
		return e.ID == id
	})
	if idx < 0 {
		return RecurringExpense{}, false
	}
	return s.RecurringExpenses[idx], true
}

// AllPlannedItems returns the planned items of all months, flattened in
// month order.
func (s Snapshot) AllPlannedItems() []PlannedItem {
	items := make([]PlannedItem, 0)
	for _, month := range s.NormalizedMonths() {
		items = append(items, month.PlannedItems...)
	}
	return items
}

// AllActuals returns the assigned actuals of all months, flattened in month
// order.
func (s Snapshot) AllActuals() []Actual {
	actuals := make([]Actual, 0)
	for _, month := range s.NormalizedMonths() {
		actuals = append(actuals, month.Actuals...)
	}
	return actuals
}

// AllAdjustments returns the adjustments of all months, flattened in month
// order.
func (s Snapshot) AllAdjustments() []Adjustment {
	adjustments := make([]Adjustment, 0)
	for _, month := range s.NormalizedMonths() {
		adjustments = append(adjustments, month.Adjustments...)
	}
	return adjustments
}
