package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	Name     string         `json:"name" example:"Our household" default:""`      // Name of the profile
	Note     string         `json:"note" example:"Shared with Ana" default:""`    // Notes about the profile
	Currency types.Currency `json:"currency" example:"EUR" default:"INR"`         // Currency the profile's months settle in
	Archived bool           `json:"archived" example:"true" default:"false"`      // Is the profile archived?
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Archived: editable.Archived,
	}
}

type ProfileLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                       // The profile itself
	Months            string `json:"months" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/months"`              // The ledger months of the profile
	PlannedExpenses   string `json:"plannedExpenses" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/planned-expenses"`     // Planned expense mutations
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/recurring-expenses"` // Recurring expense mutations
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/transactions"` // Transaction import
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := httputil.RequestHost(c)

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Archived: model.Archived,
		},
		Links: ProfileLinks{
			Self:              fmt.Sprintf("%s/v1/profiles/%s", url, model.ID),
			Months:            fmt.Sprintf("%s/v1/profiles/%s/months", url, model.ID),
			PlannedExpenses:   fmt.Sprintf("%s/v1/profiles/%s/planned-expenses", url, model.ID),
			RecurringExpenses: fmt.Sprintf("%s/v1/profiles/%s/recurring-expenses", url, model.ID),
			Transactions:      fmt.Sprintf("%s/v1/profiles/%s/transactions", url, model.ID),
		},
	}
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`  // Data for the profile
	Error *string  `json:"error"` // The error, if any occurred
}

type ProfileListResponse struct {
	Data  []Profile `json:"data"`  // List of profiles
	Error *string   `json:"error"` // The error, if any occurred
}
