package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterMonthRoutes registers the routes for ledger months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/months", OptionsMonths)
	r.GET("/:id/months", GetMonths)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/profiles/{id}/months [options]
func OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get ledger months
// @Description	Returns the normalized ledger months of the profile. With the month parameter set, only that month is returned; months that have no data yet return empty with zero totals.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		404		{object}	MonthListResponse
// @Param			id		path		string	true	"ID of the profile"
// @Param			month	query		string	false	"Year and month in YYYY-MM format"
// @Router			/v1/profiles/{id}/months [get]
func GetMonths(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	// A single month is requested
	if c.Query("month") != "" {
		var query QueryMonth
		if err := c.Bind(&query); err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, MonthListResponse{Error: &e})
			return
		}

		month := snapshot.NormalizedMonth(query.Month.Key())
		c.JSON(http.StatusOK, MonthListResponse{Data: &MonthList{
			Months:  []ledger.BudgetMonth{month},
			Summary: month.Totals,
		}})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: &MonthList{
		Months:  snapshot.NormalizedMonths(),
		Summary: snapshot.TotalsSummary(),
	}})
}

// MonthList is the payload for month queries.
type MonthList struct {
	Months  []ledger.BudgetMonth `json:"months"`  // The normalized months
	Summary ledger.MonthTotals   `json:"summary"` // Totals summed over the returned months
}

type MonthListResponse struct {
	Data  *MonthList `json:"data"`  // Data for the months
	Error *string    `json:"error"` // The error, if any occurred
}
