package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/importer"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transaction imports
// with the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/transactions", OptionsTransactions)
	r.POST("/:id/transactions", ImportTransactions)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/profiles/{id}/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions
// @Description	Categorizes the submitted transactions with the profile's match rules and books them as unassigned actuals in the months their dates fall in
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201				{object}	TransactionImportResponse
// @Failure		400				{object}	TransactionImportResponse
// @Failure		404				{object}	TransactionImportResponse
// @Param			id				path		string					true	"ID of the profile"
// @Param			transactions	body		[]ledger.Transaction	true	"Transactions"
// @Router			/v1/profiles/{id}/transactions [post]
func ImportTransactions(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{Error: &e})
		return
	}

	var transactions []ledger.Transaction
	if err := httputil.BindData(c, &transactions); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionImportResponse{Error: &e})
		return
	}

	rules, err := models.MatchRulesFor(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{Error: &e})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{Error: &e})
		return
	}

	actuals := importer.Actuals(transactions, rules)
	snapshot = snapshot.AddUnassignedActuals(actuals)

	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionImportResponse{Error: &e})
		return
	}

	months := make([]string, 0)
	for _, actual := range actuals {
		key := ledger.MonthKey(actual.OccurredOn)
		if !slices.Contains(months, key) {
			months = append(months, key)
		}
	}
	slices.Sort(months)

	c.JSON(http.StatusCreated, TransactionImportResponse{Data: &TransactionImport{
		Imported: len(actuals),
		Months:   months,
	}})
}

// TransactionImport summarizes one import run.
type TransactionImport struct {
	Imported int      `json:"imported" example:"12"` // Number of transactions booked
	Months   []string `json:"months"`                // Keys of the months that received actuals
}

type TransactionImportResponse struct {
	Data  *TransactionImport `json:"data"`  // Data for the import
	Error *string            `json:"error"` // The error, if any occurred
}
