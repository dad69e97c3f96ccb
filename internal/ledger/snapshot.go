// Package ledger implements the month-keyed budget ledger.
//
// A Snapshot is an immutable value: every operation returns a new Snapshot
// and leaves its receiver untouched. The package performs no I/O; reading
// and writing snapshots is the job of the models package.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/types"
)

// now is replaced in tests that need deterministic timestamps.
var now = time.Now

// Snapshot is the full ledger state of one profile.
type Snapshot struct {
	Currency          types.Currency         `json:"currency,omitempty"`
	Months            map[string]BudgetMonth `json:"budgetMonths"`
	RecurringExpenses []RecurringExpense     `json:"recurringExpenses,omitempty"`

	// plannedMonths maps a planned expense id to its owning month key so
	// that mutations do not have to scan every month. It is rebuilt by
	// Reindex after a snapshot is decoded and kept up to date by every
	// mutation. Lookups fall back to a scan while it is nil.
	plannedMonths map[string]string
}

// BudgetMonth is one entry of the ledger, keyed by its "YYYY-MM" month.
//
// The month key is stored redundantly in the Month field so that a month
// survives key/value drift in persisted data.
//
// PlannedExpenses is the legacy planned-spend representation and is kept in
// lock-step with PlannedItems by SyncPlannedExpenses. Rollovers only ever
// contains data written by old clients; current code reads it during
// normalization and never writes it.
type BudgetMonth struct {
	Month                string            `json:"month"`
	Currency             types.Currency    `json:"currency,omitempty"`
	PlannedItems         []PlannedItem     `json:"plannedItems"`
	PlannedExpenses      []PlannedExpense  `json:"plannedExpenses"`
	Actuals              []Actual          `json:"actuals"`
	UnassignedActuals    []UnassignedEntry `json:"unassignedActuals"`
	Adjustments          []Adjustment      `json:"adjustments"`
	Rollovers            []LegacyRollover  `json:"rollovers,omitempty"`
	RecurringAllocations []AllocationEntry `json:"recurringAllocations"`
	Totals               MonthTotals       `json:"totals"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// PlannedItem is the current representation of planned spend.
type PlannedItem struct {
	ID             string           `json:"id"`
	CategoryID     string           `json:"categoryId"`
	Name           string           `json:"name"`
	PlannedAmount  decimal.Decimal  `json:"plannedAmount"`
	RolloverAmount *decimal.Decimal `json:"rolloverAmount,omitempty"`
	Currency       types.Currency   `json:"currency"`
	Notes          string           `json:"notes,omitempty"`
}

// PlannedExpense is the legacy representation of planned spend. It is still
// the system of record for the mutation operations, which route every change
// through SyncPlannedExpenses to keep both representations agreeing.
type PlannedExpense struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	PlannedAmount   decimal.Decimal  `json:"plannedAmount"`
	ActualAmount    *decimal.Decimal `json:"actualAmount,omitempty"`
	CategoryID      string           `json:"categoryId"`
	DueDate         string           `json:"dueDate,omitempty"`
	Priority        string           `json:"priority,omitempty"`
	RemainderAmount *decimal.Decimal `json:"remainderAmount,omitempty"`
	Status          string           `json:"status,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// plannedItem maps the legacy shape to the current one. The month's resolved
// currency is applied uniformly, it is never inferred per record.
func (e PlannedExpense) plannedItem(currency types.Currency) PlannedItem {
	return PlannedItem{
		ID:             e.ID,
		CategoryID:     e.CategoryID,
		Name:           e.Name,
		PlannedAmount:  e.PlannedAmount,
		RolloverAmount: e.RemainderAmount,
		Currency:       currency,
		Notes:          e.Notes,
	}
}

// monthKey returns the key of the month the expense belongs to.
func (e PlannedExpense) monthKey() string {
	if e.DueDate != "" {
		return MonthKey(e.DueDate)
	}
	if !e.CreatedAt.IsZero() {
		return MonthKey(e.CreatedAt.Format(time.RFC3339))
	}
	return MonthKey("")
}

// Actual is realized spend, either matched to a planned item or assigned to
// a category.
type Actual struct {
	ID            string          `json:"id"`
	CategoryID    string          `json:"categoryId"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      types.Currency  `json:"currency"`
	OccurredOn    string          `json:"occurredOn,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
}

// Adjustment is a manual correction or rollover entry. A rollover links the
// source month's leftover to a target month.
type Adjustment struct {
	ID                  string          `json:"id"`
	CategoryID          string          `json:"categoryId"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            types.Currency  `json:"currency"`
	Reason              string          `json:"reason"`
	RolloverSourceMonth string          `json:"rolloverSourceMonth,omitempty"`
	RolloverTargetMonth string          `json:"rolloverTargetMonth,omitempty"`
}

// RecurringAllocation is the portion of a recurring expense attributed to
// one month. Allocations are always rebuilt wholesale during a month
// recompute, never patched incrementally.
type RecurringAllocation struct {
	ID                 string          `json:"id"`
	RecurringExpenseID string          `json:"recurringExpenseId"`
	CategoryID         string          `json:"categoryId"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           types.Currency  `json:"currency"`
	StartMonth         string          `json:"startMonth"`
	EndMonth           string          `json:"endMonth"`
}

// RecurringExpense is a repeating expense. Its due reference decides which
// month it is allocated to.
type RecurringExpense struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    types.Currency  `json:"currency,omitempty"`
	DueDate     string          `json:"dueDate,omitempty"`
	NextDueDate string          `json:"nextDueDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// monthKey returns the key of the month the expense is due in.
func (r RecurringExpense) monthKey() string {
	if r.NextDueDate != "" {
		return MonthKey(r.NextDueDate)
	}
	if r.DueDate != "" {
		return MonthKey(r.DueDate)
	}
	if !r.CreatedAt.IsZero() {
		return MonthKey(r.CreatedAt.Format(time.RFC3339))
	}
	return MonthKey("")
}

// allocation synthesizes the allocation for one month.
func (r RecurringExpense) allocation(key string, currency types.Currency) RecurringAllocation {
	return RecurringAllocation{
		ID:                 r.ID,
		RecurringExpenseID: r.ID,
		CategoryID:         r.CategoryID,
		Amount:             r.Amount,
		Currency:           r.Currency.Or(currency),
		StartMonth:         key,
		EndMonth:           key,
	}
}

// Transaction is a raw account transaction as written into the unassigned
// actuals list by old clients. Only the fields the ledger needs are decoded.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    types.Currency  `json:"currency,omitempty"`
	Date        string          `json:"date,omitempty"`
}

// MonthTotals is the cached aggregation for one month. It is derived state
// and must always equal ComputeTotals for the month it is stored on.
type MonthTotals struct {
	Planned              decimal.Decimal `json:"planned"`
	Actual               decimal.Decimal `json:"actual"`
	Difference           decimal.Decimal `json:"difference"`
	RolloverFromPrevious decimal.Decimal `json:"rolloverFromPrevious"`
	RolloverToNext       decimal.Decimal `json:"rolloverToNext"`
}

// Add returns the field-wise sum of two totals.
func (t MonthTotals) Add(o MonthTotals) MonthTotals {
	return MonthTotals{
		Planned:              t.Planned.Add(o.Planned),
		Actual:               t.Actual.Add(o.Actual),
		Difference:           t.Difference.Add(o.Difference),
		RolloverFromPrevious: t.RolloverFromPrevious.Add(o.RolloverFromPrevious),
		RolloverToNext:       t.RolloverToNext.Add(o.RolloverToNext),
	}
}

// EmptyMonth returns a schema-complete month with no entries and zero totals.
func EmptyMonth(key string, currency types.Currency) BudgetMonth {
	ts := now().In(time.UTC)
	return BudgetMonth{
		Month:                key,
		Currency:             currency.Or(types.DefaultCurrency),
		PlannedItems:         []PlannedItem{},
		PlannedExpenses:      []PlannedExpense{},
		Actuals:              []Actual{},
		UnassignedActuals:    []UnassignedEntry{},
		Adjustments:          []Adjustment{},
		RecurringAllocations: []AllocationEntry{},
		CreatedAt:            ts,
		UpdatedAt:            ts,
	}
}

// EnsureMonth creates the month if it does not exist yet. Months are created
// lazily and never deleted, an empty month simply shows zero totals.
func (s Snapshot) EnsureMonth(key string) Snapshot {
	if _, ok := s.Months[key]; ok {
		return s
	}
	return s.withMonth(key, EmptyMonth(key, s.Currency))
}

// withMonth returns a snapshot with the month stored under key. The months
// map is copied, the receiver is not modified.
func (s Snapshot) withMonth(key string, month BudgetMonth) Snapshot {
	months := make(map[string]BudgetMonth, len(s.Months)+1)
	for k, v := range s.Months {
		months[k] = v
	}
	month.Month = key
	months[key] = month
	s.Months = months
	return s
}

// Reindex rebuilds the planned-expense owner index. Load paths call it once
// after decoding a snapshot so that subsequent owner lookups are O(1).
func (s Snapshot) Reindex() Snapshot {
	index := make(map[string]string)
	for key, month := range s.Months {
		for _, e := range month.PlannedExpenses {
			index[e.ID] = key
		}
	}
	s.plannedMonths = index
	return s
}

// monthOfPlanned returns the key of the month owning the planned expense.
func (s Snapshot) monthOfPlanned(id string) (string, bool) {
	if s.plannedMonths != nil {
		key, ok := s.plannedMonths[id]
		return key, ok
	}

	for key, month := range s.Months {
		for _, e := range month.PlannedExpenses {
			if e.ID == id {
				return key, true
			}
		}
	}
	return "", false
}

// withPlannedIndex updates the owner index for one planned expense id.
// key == "" removes the entry.
func (s Snapshot) withPlannedIndex(id, key string) Snapshot {
	if s.plannedMonths == nil {
		return s
	}

	index := make(map[string]string, len(s.plannedMonths)+1)
	for k, v := range s.plannedMonths {
		index[k] = v
	}
	if key == "" {
		delete(index, id)
	} else {
		index[id] = key
	}
	s.plannedMonths = index
	return s
}
