package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	ProfileID  pl_uuid.UUID `json:"profileId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the profile the rule belongs to
	Priority   uint         `json:"priority" example:"2"`                                     // Rules are applied in ascending priority order
	Match      string       `json:"match" example:"REWE*"`                                    // Glob pattern matched against the transaction description
	CategoryID string       `json:"categoryId" example:"groceries"`                           // Category assigned to matching transactions
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		ProfileID:  editable.ProfileID.UUID,
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: editable.CategoryID,
	}
}

// MatchRuleQueryFilter contains the fields that match rules can be filtered with.
type MatchRuleQueryFilter struct {
	Profile pl_uuid.UUID `form:"profile"` // By profile ID
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := httputil.RequestHost(c)

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			ProfileID:  pl_uuid.UUID{UUID: model.ProfileID},
			Priority:   model.Priority,
			Match:      model.Match,
			CategoryID: model.CategoryID,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`  // Data for the match rule
	Error *string    `json:"error"` // The error, if any occurred
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`  // List of match rules
	Error *string     `json:"error"` // The error, if any occurred
}
