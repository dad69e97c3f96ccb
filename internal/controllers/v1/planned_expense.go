package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterPlannedExpenseRoutes registers the routes for planned expenses
// with the RouterGroup that is passed.
func RegisterPlannedExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/planned-expenses", OptionsPlannedExpenseList)
	r.POST("/:id/planned-expenses", CreatePlannedExpense)

	r.OPTIONS("/:id/planned-expenses/:subId", OptionsPlannedExpenseDetail)
	r.GET("/:id/planned-expenses/:subId", GetPlannedExpense)
	r.PATCH("/:id/planned-expenses/:subId", UpdatePlannedExpense)
	r.DELETE("/:id/planned-expenses/:subId", DeletePlannedExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PlannedExpenses
// @Success		204
// @Router			/v1/profiles/{id}/planned-expenses [options]
func OptionsPlannedExpenseList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PlannedExpenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string	true	"ID of the profile"
// @Param			subId	path		string	true	"ID of the planned expense"
// @Router			/v1/profiles/{id}/planned-expenses/{subId} [options]
func OptionsPlannedExpenseDetail(c *gin.Context) {
	_, _, _, err := plannedExpenseFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create planned expense
// @Description	Adds a planned expense to the month its due date falls in
// @Tags			PlannedExpenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	PlannedExpenseResponse
// @Failure		400		{object}	PlannedExpenseResponse
// @Failure		404		{object}	PlannedExpenseResponse
// @Param			id		path		string					true	"ID of the profile"
// @Param			expense	body		PlannedExpenseEditable	true	"Planned expense"
// @Router			/v1/profiles/{id}/planned-expenses [post]
func CreatePlannedExpense(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedExpenseResponse{Error: &e})
		return
	}

	var editable PlannedExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, PlannedExpenseResponse{Error: &e})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()
	expense.ID = uuid.NewString()

	snapshot = snapshot.AddPlannedExpense(expense)
	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedExpenseResponse{Error: &e})
		return
	}

	stored, monthKey, _ := snapshot.PlannedExpenseByID(expense.ID)
	data := newPlannedExpense(c, profile, stored, monthKey)
	c.JSON(http.StatusCreated, PlannedExpenseResponse{Data: &data})
}

// @Summary		Get planned expense
// @Description	Returns a specific planned expense
// @Tags			PlannedExpenses
// @Produce		json
// @Success		200		{object}	PlannedExpenseResponse
// @Failure		400		{object}	PlannedExpenseResponse
// @Failure		404		{object}	PlannedExpenseResponse
// @Param			id		path		string	true	"ID of the profile"
// @Param			subId	path		string	true	"ID of the planned expense"
// @Router			/v1/profiles/{id}/planned-expenses/{subId} [get]
func GetPlannedExpense(c *gin.Context) {
	profile, _, expense, err := plannedExpenseFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedExpenseResponse{Error: &e})
		return
	}

	data := newPlannedExpense(c, profile, expense.PlannedExpense, expense.MonthKey)
	c.JSON(http.StatusOK, PlannedExpenseResponse{Data: &data})
}

// @Summary		Update planned expense
// @Description	Updates an existing planned expense. When the due date moves it to another month, both months are updated.
// @Tags			PlannedExpenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	PlannedExpenseResponse
// @Failure		400		{object}	PlannedExpenseResponse
// @Failure		404		{object}	PlannedExpenseResponse
// @Param			id		path		string					true	"ID of the profile"
// @Param			subId	path		string					true	"ID of the planned expense"
// @Param			expense	body		PlannedExpenseEditable	true	"Planned expense"
// @Router			/v1/profiles/{id}/planned-expenses/{subId} [patch]
func UpdatePlannedExpense(c *gin.Context) {
	profile, snapshot, existing, err := plannedExpenseFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedExpenseResponse{Error: &e})
		return
	}

	var editable PlannedExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, PlannedExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()
	expense.ID = existing.PlannedExpense.ID
	expense.CreatedAt = existing.PlannedExpense.CreatedAt

	snapshot = snapshot.UpdatePlannedExpense(expense)
	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		e := err.Error()
		c.JSON(status(err), PlannedExpenseResponse{Error: &e})
		return
	}

	stored, monthKey, _ := snapshot.PlannedExpenseByID(expense.ID)
	data := newPlannedExpense(c, profile, stored, monthKey)
	c.JSON(http.StatusOK, PlannedExpenseResponse{Data: &data})
}

// @Summary		Delete planned expense
// @Description	Removes a planned expense from its owning month
// @Tags			PlannedExpenses
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string	true	"ID of the profile"
// @Param			subId	path		string	true	"ID of the planned expense"
// @Router			/v1/profiles/{id}/planned-expenses/{subId} [delete]
func DeletePlannedExpense(c *gin.Context) {
	profile, snapshot, existing, err := plannedExpenseFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	snapshot = snapshot.DeletePlannedExpense(existing.PlannedExpense.ID)
	if err := models.SaveSnapshot(models.DB, profile.ID, snapshot); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ownedPlannedExpense is a planned expense together with the month that owns it.
type ownedPlannedExpense struct {
	PlannedExpense ledger.PlannedExpense
	MonthKey       string
}

// plannedExpenseFromURI loads the profile, its snapshot and the planned
// expense referenced by the URI.
func plannedExpenseFromURI(c *gin.Context) (models.Profile, ledger.Snapshot, ownedPlannedExpense, error) {
	var uri URISubID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Profile{}, ledger.Snapshot{}, ownedPlannedExpense{}, err
	}

	var profile models.Profile
	if err := models.DB.First(&profile, "id = ?", uri.ID.UUID).Error; err != nil {
		return models.Profile{}, ledger.Snapshot{}, ownedPlannedExpense{}, err
	}

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	if err != nil {
		return models.Profile{}, ledger.Snapshot{}, ownedPlannedExpense{}, err
	}

	expense, monthKey, ok := snapshot.PlannedExpenseByID(uri.SubID)
	if !ok {
		return models.Profile{}, ledger.Snapshot{}, ownedPlannedExpense{}, models.ErrResourceNotFound
	}

	return profile, snapshot, ownedPlannedExpense{PlannedExpense: expense, MonthKey: monthKey}, nil
}
