package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/test"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestTransactionImport() {
	t := suite.T()
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Import"})

	_ = suite.createTestMatchRule(v1.MatchRuleEditable{
		ProfileID:  pl_uuid.UUID{UUID: profile.ID},
		Priority:   1,
		Match:      "REWE*",
		CategoryID: "groceries",
	})
	_ = suite.createTestMatchRule(v1.MatchRuleEditable{
		ProfileID:  pl_uuid.UUID{UUID: profile.ID},
		Priority:   2,
		Match:      "*",
		CategoryID: "uncategorized",
	})

	transactions := []ledger.Transaction{
		{ID: "t-1", AccountID: "acc-1", Description: "REWE Markt Bonn", Amount: decimal.NewFromFloat(-54.20), Date: "2024-04-03"},
		{ID: "t-2", AccountID: "acc-1", Description: "Shell 1234", Amount: decimal.NewFromFloat(-40.00), Date: "2024-04-07"},
		{ID: "t-3", AccountID: "acc-1", Description: "REWE Markt Bonn", Amount: decimal.NewFromFloat(-12.80), Date: "2024-05-01"},
	}

	recorder := test.Request(t, suite.router, http.MethodPost, profile.Links.Transactions, transactions)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.TransactionImportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, 3, response.Data.Imported)
	assert.Equal(t, []string{"2024-04", "2024-05"}, response.Data.Months)

	april := suite.getMonth(profile, "2024-04")
	require.Len(t, april.UnassignedActuals, 2)

	// Amounts are stored as absolute spend and categories follow the rules
	// in priority order
	var categories []string
	for _, entry := range april.UnassignedActuals {
		require.NotNil(t, entry.Actual)
		assert.True(t, entry.Actual.Amount.IsPositive())
		categories = append(categories, entry.Actual.CategoryID)
	}
	assert.ElementsMatch(t, []string{"groceries", "uncategorized"}, categories)

	assert.True(t, april.Totals.Actual.Equal(decimal.NewFromFloat(94.20)),
		"actual total is %s", april.Totals.Actual)
}

func (suite *TestSuiteStandard) TestTransactionImportInvalidBody() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Import invalid"})

	recorder := test.RequestString(suite.T(), suite.router, http.MethodPost, profile.Links.Transactions, `{ "oops": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionImportUnknownProfile() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/profiles/0cb6f637-ad35-4a51-b79c-4a34b3a27c64/transactions", []ledger.Transaction{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
