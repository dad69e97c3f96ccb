package ledger

import (
	"strings"

	"github.com/pocketledger/backend/internal/types"
)

// keyLength is the length of a "YYYY-MM" month key.
const keyLength = 7

// MonthKey derives the canonical "YYYY-MM" key for a date-like string.
//
// An absent or empty value resolves to the current month. Any other value is
// truncated to its first seven characters without calendar validation:
// persisted data contains keys written by clients this backend has no
// control over, and rejecting them here would make their months unreachable.
// Well-formedness is instead enforced at the API boundary via types.Month.
func MonthKey(dateLike string) string {
	dateLike = strings.TrimSpace(dateLike)
	if dateLike == "" {
		return types.MonthOf(now()).String()
	}

	if len(dateLike) < keyLength {
		return dateLike
	}
	return dateLike[:keyLength]
}
