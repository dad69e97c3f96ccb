package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/types"
)

// Profile is the highest level of organization in pocketledger. A profile
// owns one ledger snapshot and supplies the currency that months fall back
// to when they do not carry their own.
type Profile struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Currency types.Currency
	Archived bool
}

// BeforeSave trims whitespace and validates the currency. An unset currency
// resolves to the default.
func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	currency, err := types.ParseCurrency(string(p.Currency))
	if err != nil {
		return err
	}
	p.Currency = currency

	return nil
}
