package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// This file contains the tagged unions for list fields whose element shape
// depends on the client version that wrote the month. The shape is decided
// once, at decode time. These types are a compatibility shim for data still
// in the wild, not a long-term contract.

// UnassignedEntry is one element of a month's unassigned actuals list.
//
// Old clients wrote raw account transactions into the list, current clients
// write Actual records. The two are told apart by the accountId field that
// only raw transactions carry. Exactly one of the two members is set.
type UnassignedEntry struct {
	Actual      *Actual
	Transaction *Transaction
}

// NewUnassignedActual wraps an Actual for storage in the unassigned list.
func NewUnassignedActual(a Actual) UnassignedEntry {
	return UnassignedEntry{Actual: &a}
}

// Amount returns the spend amount of the entry regardless of its shape.
// Transaction amounts are signed, so their absolute value is used.
func (e UnassignedEntry) Amount() decimal.Decimal {
	if e.Transaction != nil {
		return e.Transaction.Amount.Abs()
	}
	if e.Actual != nil {
		return e.Actual.Amount
	}
	return decimal.Zero
}

func (e *UnassignedEntry) UnmarshalJSON(data []byte) error {
	var probe struct {
		AccountID *string `json:"accountId"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if probe.AccountID != nil {
		e.Transaction = &Transaction{}
		e.Actual = nil
		return json.Unmarshal(data, e.Transaction)
	}

	e.Actual = &Actual{}
	e.Transaction = nil
	return json.Unmarshal(data, e.Actual)
}

func (e UnassignedEntry) MarshalJSON() ([]byte, error) {
	if e.Transaction != nil {
		return json.Marshal(e.Transaction)
	}
	if e.Actual != nil {
		return json.Marshal(e.Actual)
	}
	return []byte("null"), nil
}

// AllocationEntry is one element of a month's recurring allocations list.
//
// Old clients wrote the recurring expenses themselves into the list, current
// clients write RecurringAllocation records, recognizable by their
// recurringExpenseId field. Exactly one of the two members is set.
type AllocationEntry struct {
	Allocation *RecurringAllocation
	Expense    *RecurringExpense
}

// NewAllocation wraps a RecurringAllocation for storage.
func NewAllocation(a RecurringAllocation) AllocationEntry {
	return AllocationEntry{Allocation: &a}
}

func (e *AllocationEntry) UnmarshalJSON(data []byte) error {
	var probe struct {
		RecurringExpenseID *string `json:"recurringExpenseId"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if probe.RecurringExpenseID != nil {
		e.Allocation = &RecurringAllocation{}
		e.Expense = nil
		return json.Unmarshal(data, e.Allocation)
	}

	e.Expense = &RecurringExpense{}
	e.Allocation = nil
	return json.Unmarshal(data, e.Expense)
}

func (e AllocationEntry) MarshalJSON() ([]byte, error) {
	if e.Allocation != nil {
		return json.Marshal(e.Allocation)
	}
	if e.Expense != nil {
		return json.Marshal(e.Expense)
	}
	return []byte("null"), nil
}

// LegacyRollover is a rollover entry as written by old clients. Current
// clients write Adjustment records instead; normalization maps entries with
// a non-zero remainder to adjustments and drops the rest.
type LegacyRollover struct {
	ID              string           `json:"id,omitempty"`
	CategoryID      string           `json:"categoryId,omitempty"`
	Name            string           `json:"name,omitempty"`
	RemainderAmount *decimal.Decimal `json:"remainderAmount,omitempty"`
}
