package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterProfileRoutes registers the routes for profiles with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProfileList)
		r.GET("", GetProfiles)
		r.POST("", CreateProfile)
	}

	// Profile with ID
	{
		r.OPTIONS("/:id", OptionsProfileDetail)
		r.GET("/:id", GetProfile)
		r.PATCH("/:id", UpdateProfile)
		r.DELETE("/:id", DeleteProfile)
	}

	// The ledger owned by the profile
	RegisterMonthRoutes(r)
	RegisterPlannedExpenseRoutes(r)
	RegisterRecurringExpenseRoutes(r)
	RegisterTransactionRoutes(r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfileList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/profiles/{id} [options]
func OptionsProfileDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err := models.DB.First(&models.Profile{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create profile
// @Description	Creates a new profile
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles [post]
func CreateProfile(c *gin.Context) {
	var editable ProfileEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	profile := editable.model()
	if err := models.DB.Create(&profile).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusCreated, ProfileResponse{Data: &data})
}

// @Summary		List profiles
// @Description	Returns a list of profiles
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileListResponse
// @Failure		500	{object}	ProfileListResponse
// @Param			archived	query	bool	false	"Is the profile archived?"
// @Router			/v1/profiles [get]
func GetProfiles(c *gin.Context) {
	var filter struct {
		Archived bool `form:"archived"`
	}
	_ = c.Bind(&filter)

	q := models.DB.Order("name ASC")

	// Only filter when the parameter is set so that "archived=false"
	// can be used to query active profiles explicitly
	if _, ok := c.GetQuery("archived"); ok {
		q = q.Where("archived = ?", filter.Archived)
	}

	var profiles []models.Profile
	err := q.Find(&profiles).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileListResponse{Error: &e})
		return
	}

	data := make([]Profile, 0, len(profiles))
	for _, profile := range profiles {
		data = append(data, newProfile(c, profile))
	}

	c.JSON(http.StatusOK, ProfileListResponse{Data: data})
}

// @Summary		Get profile
// @Description	Returns a specific profile
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/profiles/{id} [get]
func GetProfile(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates an existing profile. Only values to be updated need to be specified.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{id} [patch]
func UpdateProfile(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	var editable ProfileEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Delete profile
// @Description	Deletes a profile and its ledger
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/profiles/{id} [delete]
func DeleteProfile(c *gin.Context) {
	profile, err := profileFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The ledger record and match rules belong to the profile and go with it.
	err = models.DB.Where("profile_id = ?", profile.ID).Delete(&models.LedgerRecord{}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Where("profile_id = ?", profile.ID).Delete(&models.MatchRule{}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&profile).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// profileFromURI loads the profile referenced by the id URI parameter.
func profileFromURI(c *gin.Context) (models.Profile, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	err := models.DB.First(&profile, "id = ?", uri.ID.UUID).Error
	if err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}
