package ledger

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// The mutation operations in this file are atomic from the caller's point of
// view: each is a single synchronous transform of the full snapshot. An
// operation that cannot locate its target returns the snapshot unchanged, it
// never fails. Malformed or missing dates degrade to the current month via
// MonthKey.

// AddPlannedExpense adds a planned expense to the month its due date (or,
// lacking one, its creation date) falls in.
func (s Snapshot) AddPlannedExpense(e PlannedExpense) Snapshot {
	e = stampPlanned(e)

	key := e.monthKey()
	s = s.EnsureMonth(key)

	expenses := append(slices.Clone(s.Months[key].PlannedExpenses), e)
	s = s.SyncPlannedExpenses(key, expenses)
	s = s.RecomputeMonth(key)
	return s.withPlannedIndex(e.ID, key)
}

// UpdatePlannedExpense replaces the planned expense with the same id. When
// the updated due date moves the expense to a different month, it is removed
// from the old month and inserted into the new one; both months are
// recomputed. Unknown ids are a no-op.
func (s Snapshot) UpdatePlannedExpense(e PlannedExpense) Snapshot {
	oldKey, ok := s.monthOfPlanned(e.ID)
	if !ok {
		return s
	}

	// Carry the original creation time when the caller did not send one, it
	// is part of the month derivation for expenses without a due date.
	if e.CreatedAt.IsZero() {
		for _, old := range s.Months[oldKey].PlannedExpenses {
			if old.ID == e.ID {
				e.CreatedAt = old.CreatedAt
				break
			}
		}
	}
	e.UpdatedAt = now().In(time.UTC)

	nextKey := e.monthKey()

	s = s.SyncPlannedExpenses(oldKey, removePlanned(s.Months[oldKey].PlannedExpenses, e.ID))

	s = s.EnsureMonth(nextKey)
	s = s.SyncPlannedExpenses(nextKey, append(slices.Clone(s.Months[nextKey].PlannedExpenses), e))

	s = s.RecomputeMonth(oldKey)
	if nextKey != oldKey {
		s = s.RecomputeMonth(nextKey)
	}
	return s.withPlannedIndex(e.ID, nextKey)
}

// DeletePlannedExpense removes the planned expense with the given id from
// its owning month. Unknown ids are a no-op.
func (s Snapshot) DeletePlannedExpense(id string) Snapshot {
	key, ok := s.monthOfPlanned(id)
	if !ok {
		return s
	}

	s = s.SyncPlannedExpenses(key, removePlanned(s.Months[key].PlannedExpenses, id))
	s = s.RecomputeMonth(key)
	return s.withPlannedIndex(id, "")
}

// AddRecurringExpense appends the expense to the global recurring list and
// recomputes the month its due reference falls in. The month's allocations
// are rebuilt by the recompute, they are not appended incrementally.
func (s Snapshot) AddRecurringExpense(r RecurringExpense) Snapshot {
	r = stampRecurring(r)

	s.RecurringExpenses = append(slices.Clone(s.RecurringExpenses), r)

	key := r.monthKey()
	s = s.EnsureMonth(key)
	return s.RecomputeMonth(key)
}

// UpdateRecurringExpense replaces the recurring expense with the same id and
// recomputes both the previously owning month and the new one. Unknown ids
// are a no-op.
func (s Snapshot) UpdateRecurringExpense(r RecurringExpense) Snapshot {
	idx := slices.IndexFunc(s.RecurringExpenses, func(e RecurringExpense) bool {
		return e.ID == r.ID
	})
	if idx < 0 {
		return s
	}

	previous := s.RecurringExpenses[idx]
	if r.CreatedAt.IsZero() {
		r.CreatedAt = previous.CreatedAt
	}
	r.UpdatedAt = now().In(time.UTC)

	expenses := slices.Clone(s.RecurringExpenses)
	expenses[idx] = r
	s.RecurringExpenses = expenses

	oldKey := previous.monthKey()
	nextKey := r.monthKey()

	s = s.EnsureMonth(oldKey).RecomputeMonth(oldKey)
	if nextKey != oldKey {
		s = s.EnsureMonth(nextKey).RecomputeMonth(nextKey)
	}
	return s
}

// DeleteRecurringExpense removes the recurring expense with the given id and
// recomputes the month it was allocated to. Unknown ids are a no-op.
func (s Snapshot) DeleteRecurringExpense(id string) Snapshot {
	idx := slices.IndexFunc(s.RecurringExpenses, func(e RecurringExpense) bool {
		return e.ID == id
	})
	if idx < 0 {
		return s
	}

	deleted := s.RecurringExpenses[idx]
	s.RecurringExpenses = slices.Delete(slices.Clone(s.RecurringExpenses), idx, idx+1)

	key := deleted.monthKey()
	s = s.EnsureMonth(key)
	return s.RecomputeMonth(key)
}

// AddUnassignedActuals appends realized spend that is not linked to any
// planned item to the month derived from each actual's occurrence date.
func (s Snapshot) AddUnassignedActuals(actuals []Actual) Snapshot {
	for _, a := range actuals {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}

		key := MonthKey(a.OccurredOn)
		s = s.EnsureMonth(key)

		month := s.Months[key]
		month.UnassignedActuals = append(slices.Clone(month.UnassignedActuals), NewUnassignedActual(a))
		s = s.withMonth(key, month)
		s = s.RecomputeMonth(key)
	}
	return s
}

// RecomputeMonth rebuilds the month's recurring allocations from the global
// recurring list and refreshes its cached totals. Any mutation of a month's
// lists must be followed by a recompute before the month is consistent.
//
// External collaborators that merge snapshots must call EnsureMonth and
// RecomputeMonth for every month they touched.
func (s Snapshot) RecomputeMonth(key string) Snapshot {
	month, ok := s.Months[key]
	if !ok {
		return s
	}

	allocations := make([]AllocationEntry, 0)
	for _, r := range s.RecurringExpenses {
		if r.monthKey() == key {
			allocations = append(allocations, NewAllocation(r.allocation(key, month.Currency.Or(s.Currency))))
		}
	}
	month.RecurringAllocations = allocations

	month.Totals = ComputeTotals(month)
	month.UpdatedAt = now().In(time.UTC)

	return s.withMonth(key, month)
}

// stampPlanned fills in the id and timestamps of a new planned expense.
func stampPlanned(e PlannedExpense) PlannedExpense {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	ts := now().In(time.UTC)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = ts
	}
	e.UpdatedAt = ts
	return e
}

// stampRecurring fills in the id and timestamps of a new recurring expense.
func stampRecurring(r RecurringExpense) RecurringExpense {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	ts := now().In(time.UTC)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = ts
	}
	r.UpdatedAt = ts
	return r
}

// removePlanned returns the list without the expense with the given id.
func removePlanned(expenses []PlannedExpense, id string) []PlannedExpense {
	out := make([]PlannedExpense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
