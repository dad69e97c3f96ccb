// Package importer turns raw account transactions into unassigned actuals
// for the ledger.
package importer

import (
	"github.com/ryanuber/go-glob"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// Actuals maps raw transactions to unassigned actuals.
//
// Each transaction is matched against the rules in the order given; the
// first rule whose glob matches the description assigns its category. Since
// rules are loaded from the database in priority order, the first match
// wins. Transactions without a matching rule keep their own category, which
// may be empty.
func Actuals(transactions []ledger.Transaction, rules []models.MatchRule) []ledger.Actual {
	actuals := make([]ledger.Actual, 0, len(transactions))
	for _, t := range transactions {
		actuals = append(actuals, ledger.Actual{
			ID:            t.ID,
			CategoryID:    categorize(t, rules),
			Description:   t.Description,
			Amount:        t.Amount.Abs(),
			Currency:      t.Currency,
			OccurredOn:    t.Date,
			TransactionID: t.ID,
		})
	}
	return actuals
}

func categorize(t ledger.Transaction, rules []models.MatchRule) string {
	for _, rule := range rules {
		if glob.Glob(rule.Match, t.Description) {
			return rule.CategoryID
		}
	}
	return t.CategoryID
}
