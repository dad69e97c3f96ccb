package ledger

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/pocketledger/backend/internal/types"
)

// SyncPlannedExpenses replaces both planned-spend representations of a month
// with the given legacy list and its mapped current list.
//
// This is the single place where the two lists are written, so that they
// always describe the same set of planned entries after a write completes.
// Every mutation routes planned-expense changes through here.
//
// If the month does not exist the snapshot is returned unchanged.
func (s Snapshot) SyncPlannedExpenses(key string, expenses []PlannedExpense) Snapshot {
	month, ok := s.Months[key]
	if !ok {
		return s
	}

	// The currency is resolved once per month and applied uniformly.
	currency := month.Currency.Or(s.Currency).Or(types.DefaultCurrency)

	items := make([]PlannedItem, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, e.plannedItem(currency))
	}

	month.PlannedExpenses = slices.Clone(expenses)
	month.PlannedItems = items
	month.UpdatedAt = now().In(time.UTC)

	return s.withMonth(key, month)
}
