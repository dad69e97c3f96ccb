package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestLedgerRecordRequiresProfile() {
	record := models.LedgerRecord{ProfileID: uuid.New()}

	err := models.DB.Create(&record).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestLoadSnapshotWithoutRecord() {
	profile := suite.createTestProfile(models.Profile{Name: "Fresh", Currency: "EUR"})

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), profile.Currency, snapshot.Currency)
	assert.Empty(suite.T(), snapshot.Months)
}

func (suite *TestSuiteStandard) TestLoadSnapshotUnknownProfile() {
	_, err := models.LoadSnapshot(models.DB, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSnapshotRoundTrip() {
	t := suite.T()
	profile := suite.createTestProfile(models.Profile{Name: "Round trip", Currency: "EUR"})

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	require.Nil(t, err)

	snapshot = snapshot.AddPlannedExpense(ledger.PlannedExpense{
		Name:          "Rent",
		PlannedAmount: decimal.NewFromInt(950),
		DueDate:       "2024-03-01",
	})

	require.Nil(t, models.SaveSnapshot(models.DB, profile.ID, snapshot))

	loaded, err := models.LoadSnapshot(models.DB, profile.ID)
	require.Nil(t, err)

	require.Contains(t, loaded.Months, "2024-03")
	month := loaded.Months["2024-03"]
	require.Len(t, month.PlannedExpenses, 1)
	require.Len(t, month.PlannedItems, 1)
	assert.Equal(t, "Rent", month.PlannedExpenses[0].Name)
	assert.True(t, month.Totals.Planned.Equal(decimal.NewFromInt(950)), "planned total is %s", month.Totals.Planned)
}

// The loaded snapshot has to be reindexed so that mutations find the owner
// months of existing planned expenses.
func (suite *TestSuiteStandard) TestLoadedSnapshotIsIndexed() {
	t := suite.T()
	profile := suite.createTestProfile(models.Profile{Name: "Indexed"})

	snapshot := ledger.Snapshot{}.Reindex().AddPlannedExpense(ledger.PlannedExpense{
		ID:            "pe-1",
		Name:          "Insurance",
		PlannedAmount: decimal.NewFromInt(120),
		DueDate:       "2024-05-20",
	})
	require.Nil(t, models.SaveSnapshot(models.DB, profile.ID, snapshot))

	loaded, err := models.LoadSnapshot(models.DB, profile.ID)
	require.Nil(t, err)

	loaded = loaded.DeletePlannedExpense("pe-1")
	assert.Empty(t, loaded.Months["2024-05"].PlannedExpenses)
	assert.Empty(t, loaded.Months["2024-05"].PlannedItems)
}

func (suite *TestSuiteStandard) TestSaveSnapshotReplaces() {
	t := suite.T()
	profile := suite.createTestProfile(models.Profile{Name: "Replace"})

	first := ledger.Snapshot{}.Reindex().AddPlannedExpense(ledger.PlannedExpense{
		Name: "One", PlannedAmount: decimal.NewFromInt(1), DueDate: "2024-01-10",
	})
	require.Nil(t, models.SaveSnapshot(models.DB, profile.ID, first))

	second := first.AddPlannedExpense(ledger.PlannedExpense{
		Name: "Two", PlannedAmount: decimal.NewFromInt(2), DueDate: "2024-02-10",
	})
	require.Nil(t, models.SaveSnapshot(models.DB, profile.ID, second))

	loaded, err := models.LoadSnapshot(models.DB, profile.ID)
	require.Nil(t, err)
	assert.Equal(t, []string{"2024-01", "2024-02"}, loaded.MonthKeys())

	var count int64
	models.DB.Model(&models.LedgerRecord{}).Where("profile_id = ?", profile.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
