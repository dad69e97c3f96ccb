package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterRecurringExpenseRoutes registers the routes for recurring expenses
// with the RouterGroup that is passed.
func RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/recurring-expenses", OptionsRecurringExpenseList)
	r.GET("/:id/recurring-expenses", GetRecurringExpenses)
	r.POST("/:id/recurring-expenses", CreateRecurringExpense)

	r.OPTIONS("/:id/recurring-expenses/:subId", OptionsRecurringExpenseDetail)
	r.GET("/:id/recurring-expenses/:subId", GetRecurringExpense)
	r.PATCH("/:id/recurring-expenses/:subId", UpdateRecurringExpense)
	r.DELETE("/:id/recurring-expenses/:subId", DeleteRecurringExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/profiles/{id}/recurring-expenses [options]
func OptionsRecurringExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string	true	"ID of the profile"
// @Param			subId	path		string	true	"ID of the recurring expense"
// @Router			/v1/profiles/{id}/recurring-expenses/{subId} [options]
func OptionsRecurringExpenseDetail(c *gin.Context) {
	_, _, _, err := recurringExpenseFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring expense
// @Description	Adds a recurring expense. It is allocated to the month its due reference falls in.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		404		{object}	RecurringExpenseResponse
// @Param			id		path		string						true	"ID of the profile"
// @Param			expense	body		RecurringExpenseEditable	true	"Recurring expense"
// @Router			/v1/profiles/{id}/recurring-expenses [post]
func CreateRecurringExpense(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	var editable RecurringExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, RecurringExpenseResponse{Error: &e})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()
	expense.ID = uuid.NewString()

	snapshot = snapshot.AddRecurringExpense(expense)
	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	stored, _ := snapshot.RecurringExpenseByID(expense.ID)
	data := newRecurringExpense(c, profile, stored)
	c.JSON(http.StatusCreated, RecurringExpenseResponse{Data: &data})
}

// @Summary		List recurring expenses
// @Description	Returns all recurring expenses of the profile
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		400	{object}	RecurringExpenseListResponse
// @Failure		404	{object}	RecurringExpenseListResponse
// @Param			id	path		string	true	"ID of the profile"
// @Router			/v1/profiles/{id}/recurring-expenses [get]
func GetRecurringExpenses(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{Error: &e})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{Error: &e})
		return
	}

	data := make([]RecurringExpense, 0, len(snapshot.RecurringExpenses))
	for _, expense := range snapshot.RecurringExpenses {
		data = append(data, newRecurringExpense(c, profile, expense))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: data})
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		404		{object}	RecurringExpenseResponse
// @Param			id		path		string	true	"ID of the profile"
// @Param			subId	path		string	true	"ID of the recurring expense"
// @Router			/v1/profiles/{id}/recurring-expenses/{subId} [get]
func GetRecurringExpense(c *gin.Context) {
	profile, _, expense, err := recurringExpenseFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	data := newRecurringExpense(c, profile, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Update recurring expense
// @Description	Updates an existing recurring expense. When the due reference moves it to another month, both months are updated.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		404		{object}	RecurringExpenseResponse
// @Param			id		path		string						true	"ID of the profile"
// @Param			subId	path		string						true	"ID of the recurring expense"
// @Param			expense	body		RecurringExpenseEditable	true	"Recurring expense"
// @Router			/v1/profiles/{id}/recurring-expenses/{subId} [patch]
func UpdateRecurringExpense(c *gin.Context) {
	profile, snapshot, existing, err := recurringExpenseFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	var editable RecurringExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, RecurringExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()
	expense.ID = existing.ID
	expense.CreatedAt = existing.CreatedAt

	snapshot = snapshot.UpdateRecurringExpense(expense)
	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	stored, _ := snapshot.RecurringExpenseByID(expense.ID)
	data := newRecurringExpense(c, profile, stored)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Delete recurring expense
// @Description	Removes a recurring expense and its allocation
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string	true	"ID of the profile"
// @Param			subId	path		string	true	"ID of the recurring expense"
// @Router			/v1/profiles/{id}/recurring-expenses/{subId} [delete]
func DeleteRecurringExpense(c *gin.Context) {
	profile, snapshot, existing, err := recurringExpenseFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	snapshot = snapshot.DeleteRecurringExpense(existing.ID)
	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// recurringExpenseFromURI loads the profile, its snapshot and the recurring
// expense referenced by the URI.
func recurringExpenseFromURI(c *gin.Context) (models.Profile, ledger.Snapshot, ledger.RecurringExpense, error) {
	var uri URISubID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Profile{}, ledger.Snapshot{}, ledger.RecurringExpense{}, err
	}

	var profile models.Profile
	if err := models.DB.First(&profile, "id = ?", uri.ID.UUID).Error; err != nil {
		return models.Profile{}, ledger.Snapshot{}, ledger.RecurringExpense{}, err
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		return models.Profile{}, ledger.Snapshot{}, ledger.RecurringExpense{}, err
	}

	expense, ok := snapshot.RecurringExpenseByID(uri.SubID)
	if !ok {
		return models.Profile{}, ledger.Snapshot{}, ledger.RecurringExpense{}, models.ErrResourceNotFound
	}

	return profile, snapshot, expense, nil
}
