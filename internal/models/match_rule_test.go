package models_test

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMatchRuleBeforeCreate() {
	profile := suite.createTestProfile(models.Profile{})

	_ = suite.createTestMatchRule(models.MatchRule{
		ProfileID:  profile.ID,
		Match:      "REWE*",
		CategoryID: "groceries",
	})
}

func (suite *TestSuiteStandard) TestMatchRuleRequiresProfile() {
	err := models.DB.Create(&models.MatchRule{
		ProfileID: uuid.New(),
		Match:     "REWE*",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMatchRuleRequiresMatch() {
	profile := suite.createTestProfile(models.Profile{})

	err := models.DB.Create(&models.MatchRule{
		ProfileID: profile.ID,
		Match:     "  ",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleNoGlob)
}

func (suite *TestSuiteStandard) TestMatchRulesForOrder() {
	t := suite.T()
	profile := suite.createTestProfile(models.Profile{})
	other := suite.createTestProfile(models.Profile{Name: "Other"})

	_ = suite.createTestMatchRule(models.MatchRule{ProfileID: profile.ID, Priority: 2, Match: "*", CategoryID: "other"})
	_ = suite.createTestMatchRule(models.MatchRule{ProfileID: profile.ID, Priority: 1, Match: "REWE*", CategoryID: "groceries"})
	_ = suite.createTestMatchRule(models.MatchRule{ProfileID: other.ID, Priority: 0, Match: "Shell*", CategoryID: "fuel"})

	rules, err := models.MatchRulesFor(models.DB, profile.ID)
	require.Nil(t, err)

	require.Len(t, rules, 2)
	assert.Equal(t, "REWE*", rules[0].Match)
	assert.Equal(t, "*", rules[1].Match)
}
