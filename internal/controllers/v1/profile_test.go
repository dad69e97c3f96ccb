package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/test"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestProfileCreate() {
	profile := suite.createTestProfile(v1.ProfileEditable{
		Name:     "Our household",
		Currency: "EUR",
	})

	assert.Equal(suite.T(), "Our household", profile.Name)
	assert.Equal(suite.T(), "http://example.com/v1/profiles/"+profile.ID.String(), profile.Links.Self)
}

func (suite *TestSuiteStandard) TestProfileCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": `},
		{"Invalid currency", `{ "name": "x", "currency": "MONEYZ" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestString(t, suite.router, http.MethodPost, "http://example.com/v1/profiles", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestProfileNameConflict() {
	_ = suite.createTestProfile(v1.ProfileEditable{Name: "Taken"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/profiles", v1.ProfileEditable{Name: "Taken"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProfileList() {
	_ = suite.createTestProfile(v1.ProfileEditable{Name: "Banana"})
	_ = suite.createTestProfile(v1.ProfileEditable{Name: "Apple"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/profiles", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "Apple", response.Data[0].Name)
		assert.Equal(suite.T(), "Banana", response.Data[1].Name)
	}
}

func (suite *TestSuiteStandard) TestProfileGetNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/profiles/5b95e1a9-522d-4a36-9074-32f7c15846a9", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProfileGetInvalidID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/profiles/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProfileUpdate() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Before"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, profile.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "After", response.Data.Name)
}

func (suite *TestSuiteStandard) TestProfileDelete() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Doomed"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, profile.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, profile.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProfileOptions() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Options"})

	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/profiles", http.StatusNoContent, "GET, POST"},
		{"Detail", profile.Links.Self, http.StatusNoContent, "GET, PATCH, DELETE"},
		{"Unknown resource", "http://example.com/v1/profiles/b4cb4247-02cf-4b17-926b-835b3b282e38", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfileDeleteCascades() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Cascade"})
	_ = suite.createTestMatchRule(v1.MatchRuleEditable{ProfileID: pl_uuid.UUID{UUID: profile.ID}, Match: "REWE*", CategoryID: "groceries"})
	_ = suite.createTestPlannedExpense(profile, v1.PlannedExpenseEditable{Name: "Rent", DueDate: "2024-03-01"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, profile.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?profile=%s", profile.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}
