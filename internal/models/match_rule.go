package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule assigns a category to imported transactions whose description
// matches a glob pattern. Rules are applied in priority order, lowest value
// first; the first match wins.
type MatchRule struct {
	DefaultModel
	ProfileID  uuid.UUID
	Profile    Profile `json:"-"`
	Priority   uint
	Match      string
	CategoryID string
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.Match == "" {
		return ErrMatchRuleNoGlob
	}

	return tx.First(&Profile{}, "id = ?", r.ProfileID).Error
}

// BeforeUpdate verifies the state of the match rule before committing an
// update to the database.
func (r *MatchRule) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Match") {
		toSave := tx.Statement.Dest.(MatchRule)
		if strings.TrimSpace(toSave.Match) == "" {
			return ErrMatchRuleNoGlob
		}
	}

	if tx.Statement.Changed("ProfileID") {
		toSave := tx.Statement.Dest.(MatchRule)
		return tx.First(&Profile{}, "id = ?", toSave.ProfileID).Error
	}

	return nil
}

// MatchRulesFor returns the profile's match rules in application order.
func MatchRulesFor(db *gorm.DB, profileID uuid.UUID) ([]MatchRule, error) {
	var rules []MatchRule
	err := db.
		Where(&MatchRule{ProfileID: profileID}).
		Order("priority ASC").
		Find(&rules).Error

	return rules, err
}
