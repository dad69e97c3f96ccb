package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/test"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestCleanup() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Cleanup"})
	_ = suite.createTestMatchRule(v1.MatchRuleEditable{ProfileID: pl_uuid.UUID{UUID: profile.ID}, Match: "REWE*"})
	_ = suite.createTestPlannedExpense(profile, v1.PlannedExpenseEditable{Name: "Rent", DueDate: "2024-03-01"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	tests := []string{
		"http://example.com/v1/profiles",
		"http://example.com/v1/match-rules",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, tt, nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name    string
		confirm string
	}{
		{"No confirmation", ""},
		{"Wrong confirmation", "confirm=please"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodDelete, "http://example.com/v1?"+tt.confirm, nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
