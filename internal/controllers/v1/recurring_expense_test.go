package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/test"
)

func (suite *TestSuiteStandard) TestRecurringExpenseCreate() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring create"})

	expense := suite.createTestRecurringExpense(profile, v1.RecurringExpenseEditable{
		Name:        "Rent",
		CategoryID:  "housing",
		Amount:      decimal.NewFromInt(950),
		NextDueDate: "2024-03-01",
	})

	assert.NotEmpty(suite.T(), expense.ID)
	assert.False(suite.T(), expense.CreatedAt.IsZero())

	// The due month carries the synthesized allocation
	march := suite.getMonth(profile, "2024-03")
	require.Len(suite.T(), march.RecurringAllocations, 1)
	allocation := march.RecurringAllocations[0].Allocation
	require.NotNil(suite.T(), allocation)
	assert.Equal(suite.T(), expense.ID, allocation.RecurringExpenseID)
	assert.True(suite.T(), allocation.Amount.Equal(decimal.NewFromInt(950)))
}

func (suite *TestSuiteStandard) TestRecurringExpenseCreateInvalid() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring invalid"})

	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestString(t, suite.router, http.MethodPost, profile.Links.RecurringExpenses, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringExpenseGetList() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring list"})
	_ = suite.createTestRecurringExpense(profile, v1.RecurringExpenseEditable{Name: "Rent", NextDueDate: "2024-03-01"})
	_ = suite.createTestRecurringExpense(profile, v1.RecurringExpenseEditable{Name: "Netflix", NextDueDate: "2024-03-12"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, profile.Links.RecurringExpenses, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestRecurringExpenseGet() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring get"})
	expense := suite.createTestRecurringExpense(profile, v1.RecurringExpenseEditable{
		Name:        "Car insurance",
		Amount:      decimal.NewFromFloat(62.50),
		NextDueDate: "2024-05-01",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Car insurance", response.Data.Name)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(62.50)))
}

func (suite *TestSuiteStandard) TestRecurringExpenseUpdateMovesMonth() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring move"})
	expense := suite.createTestRecurringExpense(profile, v1.RecurringExpenseEditable{
		Name:        "Gym",
		Amount:      decimal.NewFromInt(30),
		NextDueDate: "2024-03-05",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, expense.Links.Self, v1.RecurringExpenseEditable{
		Name:        "Gym",
		Amount:      decimal.NewFromInt(30),
		NextDueDate: "2024-04-05",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The old month's allocation is gone, the new month carries it
	march := suite.getMonth(profile, "2024-03")
	assert.Empty(suite.T(), march.RecurringAllocations)

	april := suite.getMonth(profile, "2024-04")
	require.Len(suite.T(), april.RecurringAllocations, 1)
	require.NotNil(suite.T(), april.RecurringAllocations[0].Allocation)
	assert.Equal(suite.T(), expense.ID, april.RecurringAllocations[0].Allocation.RecurringExpenseID)
}

func (suite *TestSuiteStandard) TestRecurringExpenseUpdateUnknown() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring unknown"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, profile.Links.RecurringExpenses+"/a2d47016-d433-4eab-b36a-c40eaf6d8912", v1.RecurringExpenseEditable{Name: "Nope"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecurringExpenseDelete() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Recurring delete"})
	expense := suite.createTestRecurringExpense(profile, v1.RecurringExpenseEditable{
		Name:        "Streaming",
		Amount:      decimal.NewFromInt(13),
		NextDueDate: "2024-06-10",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	june := suite.getMonth(profile, "2024-06")
	assert.Empty(suite.T(), june.RecurringAllocations)
}
