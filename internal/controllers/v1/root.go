package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
)

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Profiles   string `json:"profiles" example:"https://example.com/api/v1/profiles"`      // URL of the profile collection
	MatchRules string `json:"matchRules" example:"https://example.com/api/v1/match-rules"` // URL of the match rule collection
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Profiles:   url + "/v1/profiles",
			MatchRules: url + "/v1/match-rules",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
