package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/test"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestMatchRuleCreate() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Rules"})

	matchRule := suite.createTestMatchRule(v1.MatchRuleEditable{
		ProfileID:  pl_uuid.UUID{UUID: profile.ID},
		Priority:   1,
		Match:      "REWE*",
		CategoryID: "groceries",
	})

	assert.Equal(suite.T(), "REWE*", matchRule.Match)
	assert.Equal(suite.T(), "http://example.com/v1/match-rules/"+matchRule.ID.String(), matchRule.Links.Self)
}

func (suite *TestSuiteStandard) TestMatchRuleCreateInvalid() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Rules invalid"})

	tests := []struct {
		name string
		body any
	}{
		{"No match pattern", v1.MatchRuleEditable{ProfileID: pl_uuid.UUID{UUID: profile.ID}}},
		{"Unknown profile", v1.MatchRuleEditable{ProfileID: pl_uuid.New(), Match: "REWE*"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/match-rules", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRuleListOrdered() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Rules ordered"})

	_ = suite.createTestMatchRule(v1.MatchRuleEditable{ProfileID: pl_uuid.UUID{UUID: profile.ID}, Priority: 5, Match: "*", CategoryID: "other"})
	_ = suite.createTestMatchRule(v1.MatchRuleEditable{ProfileID: pl_uuid.UUID{UUID: profile.ID}, Priority: 1, Match: "Shell*", CategoryID: "fuel"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/match-rules", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "Shell*", response.Data[0].Match)
		assert.Equal(suite.T(), "*", response.Data[1].Match)
	}
}

func (suite *TestSuiteStandard) TestMatchRuleUpdate() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Rules update"})
	matchRule := suite.createTestMatchRule(v1.MatchRuleEditable{
		ProfileID:  pl_uuid.UUID{UUID: profile.ID},
		Match:      "REWE*",
		CategoryID: "groceries",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, matchRule.Links.Self, map[string]any{
		"categoryId": "food",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "food", response.Data.CategoryID)
	assert.Equal(suite.T(), "REWE*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestMatchRuleDelete() {
	profile := suite.createTestProfile(v1.ProfileEditable{Name: "Rules delete"})
	matchRule := suite.createTestMatchRule(v1.MatchRuleEditable{
		ProfileID: pl_uuid.UUID{UUID: profile.ID},
		Match:     "Shell*",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, matchRule.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, matchRule.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
