package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/ledger"
)

// LedgerRecord stores a profile's full ledger snapshot opaquely. The engine
// does not know about the storage medium and the storage does not inspect
// the snapshot beyond serializing it.
type LedgerRecord struct {
	Timestamps
	ProfileID uuid.UUID       `gorm:"primaryKey"`
	Profile   Profile         `json:"-"`
	Data      ledger.Snapshot `gorm:"serializer:json"`
}

func (r *LedgerRecord) BeforeCreate(tx *gorm.DB) error {
	return tx.First(&Profile{}, "id = ?", r.ProfileID).Error
}

// LoadSnapshot reads the profile's snapshot. A profile without a stored
// snapshot yet starts with an empty one in the profile's currency.
//
// The returned snapshot is reindexed so that owner lookups during mutations
// are O(1).
func LoadSnapshot(db *gorm.DB, profileID uuid.UUID) (ledger.Snapshot, error) {
	var profile Profile
	err := db.First(&profile, "id = ?", profileID).Error
	if err != nil {
		return ledger.Snapshot{}, err
	}

	var record LedgerRecord
	err = db.First(&record, "profile_id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
		return ledger.Snapshot{Currency: profile.Currency}.Reindex(), nil
	}
	if err != nil {
		return ledger.Snapshot{}, err
	}

	snapshot := record.Data
	if snapshot.Currency == "" {
		snapshot.Currency = profile.Currency
	}

	return snapshot.Reindex(), nil
}

// SaveSnapshot writes the profile's snapshot, replacing the stored one.
func SaveSnapshot(db *gorm.DB, profileID uuid.UUID, snapshot ledger.Snapshot) error {
	var record LedgerRecord
	err := db.First(&record, "profile_id = ?", profileID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, ErrResourceNotFound) {
		return err
	}

	record.ProfileID = profileID
	record.Data = snapshot

	return db.Save(&record).Error
}
