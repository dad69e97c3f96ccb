package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	profile := suite.createTestProfile(models.Profile{
		Name: " Our household\t",
		Note: " Shared with Ana ",
	})

	assert.Equal(suite.T(), "Our household", profile.Name)
	assert.Equal(suite.T(), "Shared with Ana", profile.Note)
}

func (suite *TestSuiteStandard) TestProfileCurrency() {
	tests := []struct {
		name     string
		currency types.Currency
		want     types.Currency
		err      error
	}{
		{"empty defaults", "", types.DefaultCurrency, nil},
		{"valid code", "EUR", "EUR", nil},
		{"invalid code", "MONEYZ", "", types.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			profile := models.Profile{Name: "Currency " + tt.name, Currency: tt.currency}
			err := models.DB.Create(&profile).Error
			assert.ErrorIs(t, err, tt.err)

			if tt.err == nil {
				assert.Equal(t, tt.want, profile.Currency)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfileNameUnique() {
	_ = suite.createTestProfile(models.Profile{Name: "Unique"})

	err := models.DB.Create(&models.Profile{Name: "Unique"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProfileNameNotUnique)
}
