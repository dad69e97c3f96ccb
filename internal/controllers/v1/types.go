package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

type URIID struct {
	ID pl_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URISubID struct {
	URIID
	SubID string `uri:"subId" binding:"required"` // ID of the nested resource
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2022-07"` // Year and month in YYYY-MM format
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
