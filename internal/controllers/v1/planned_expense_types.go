package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// PlannedExpenseEditable represents all user configurable parameters
type PlannedExpenseEditable struct {
	Name            string           `json:"name" example:"Electricity bill" default:""`         // Name of the planned expense
	PlannedAmount   decimal.Decimal  `json:"plannedAmount" example:"84.30"`                      // Amount planned for the month
	ActualAmount    *decimal.Decimal `json:"actualAmount" example:"81.17"`                       // Realized amount, if known
	CategoryID      string           `json:"categoryId" example:"utilities"`                     // Category the expense belongs to
	DueDate         string           `json:"dueDate" example:"2024-03-15" default:""`            // Date the expense is due, decides the owning month
	Priority        string           `json:"priority" example:"high" default:""`                 // Free-form priority marker
	RemainderAmount *decimal.Decimal `json:"remainderAmount" example:"3.13"`                     // Leftover amount carried as rollover
	Status          string           `json:"status" example:"pending" default:""`                // Free-form status marker
	Notes           string           `json:"notes" example:"Provider switch in April" default:""` // Notes about the expense
}

func (editable PlannedExpenseEditable) model() ledger.PlannedExpense {
	return ledger.PlannedExpense{
		Name:            editable.Name,
		PlannedAmount:   editable.PlannedAmount,
		ActualAmount:    editable.ActualAmount,
		CategoryID:      editable.CategoryID,
		DueDate:         editable.DueDate,
		Priority:        editable.Priority,
		RemainderAmount: editable.RemainderAmount,
		Status:          editable.Status,
		Notes:           editable.Notes,
	}
}

type PlannedExpenseLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/planned-expenses/d27cf699-4d48-4c5d-8df4-26e97a5b1a4e"` // The planned expense itself
	Month string `json:"month" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/months?month=2024-03"`                                 // The month that owns the expense
}

type PlannedExpense struct {
	ledger.PlannedExpense
	MonthKey string              `json:"monthKey" example:"2024-03"` // Key of the owning month
	Links    PlannedExpenseLinks `json:"links"`
}

func newPlannedExpense(c *gin.Context, profile models.Profile, expense ledger.PlannedExpense, monthKey string) PlannedExpense {
	url := httputil.RequestHost(c)

	return PlannedExpense{
		PlannedExpense: expense,
		MonthKey:       monthKey,
		Links: PlannedExpenseLinks{
			Self:  fmt.Sprintf("%s/v1/profiles/%s/planned-expenses/%s", url, profile.ID, expense.ID),
			Month: fmt.Sprintf("%s/v1/profiles/%s/months?month=%s", url, profile.ID, monthKey),
		},
	}
}

type PlannedExpenseResponse struct {
	Data  *PlannedExpense `json:"data"`  // Data for the planned expense
	Error *string         `json:"error"` // The error, if any occurred
}
