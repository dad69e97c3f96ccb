package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

// RecurringExpenseEditable represents all user configurable parameters
type RecurringExpenseEditable struct {
	Name        string          `json:"name" example:"Rent" default:""`           // Name of the recurring expense
	CategoryID  string          `json:"categoryId" example:"housing"`             // Category the expense belongs to
	Amount      decimal.Decimal `json:"amount" example:"950"`                     // Amount due per occurrence
	Currency    types.Currency  `json:"currency" example:"EUR" default:""`        // Currency, falls back to the month's
	DueDate     string          `json:"dueDate" example:"2024-03-01" default:""`  // First due date
	NextDueDate string          `json:"nextDueDate" example:"2024-04-01" default:""` // Next due date, decides the allocated month
}

func (editable RecurringExpenseEditable) model() ledger.RecurringExpense {
	return ledger.RecurringExpense{
		Name:        editable.Name,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Currency:    editable.Currency,
		DueDate:     editable.DueDate,
		NextDueDate: editable.NextDueDate,
	}
}

type RecurringExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/recurring-expenses/8f2184dc-1236-479a-bc21-5d6c29e9ee30"` // The recurring expense itself
}

type RecurringExpense struct {
	ledger.RecurringExpense
	Links RecurringExpenseLinks `json:"links"`
}

func newRecurringExpense(c *gin.Context, profile models.Profile, expense ledger.RecurringExpense) RecurringExpense {
	url := httputil.RequestHost(c)

	return RecurringExpense{
		RecurringExpense: expense,
		Links: RecurringExpenseLinks{
			Self: fmt.Sprintf("%s/v1/profiles/%s/recurring-expenses/%s", url, profile.ID, expense.ID),
		},
	}
}

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`  // Data for the recurring expense
	Error *string           `json:"error"` // The error, if any occurred
}

type RecurringExpenseListResponse struct {
	Data  []RecurringExpense `json:"data"`  // List of recurring expenses
	Error *string            `json:"error"` // The error, if any occurred
}
