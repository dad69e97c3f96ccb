package types

import (
	"errors"
	"strings"

	"golang.org/x/text/currency"
)

// Currency is an ISO 4217 currency code.
type Currency string

// DefaultCurrency is used when neither a month nor its profile specify a
// currency. It matches the default of the clients that wrote the data this
// backend still has to read.
const DefaultCurrency Currency = "INR"

var ErrInvalidCurrency = errors.New("the currency must be a valid ISO 4217 code")

// ParseCurrency validates a currency code. The empty string resolves to
// DefaultCurrency.
func ParseCurrency(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCurrency, nil
	}

	unit, err := currency.ParseISO(s)
	if err != nil {
		return "", ErrInvalidCurrency
	}

	return Currency(unit.String()), nil
}

func (c Currency) String() string {
	return string(c)
}

// Or returns the currency itself if set and the fallback otherwise.
func (c Currency) Or(fallback Currency) Currency {
	if c == "" {
		return fallback
	}
	return c
}
