package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

// Response is the wire form of an expense, shared with the dashboard.
type Response struct {
	ID          uuid.UUID    `json:"id"`
	ApartmentID *uuid.UUID   `json:"apartment_id"`
	Type        expense.Type `json:"expense_type"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Vendor      *string      `json:"vendor"`
	ReceiptURL  *string      `json:"receipt_url"`
	CreatedAt   time.Time    `json:"created_at"`
}

func ToResponse(e *expense.Expense) Response {
	return Response{
		ID:          e.ID,
		ApartmentID: e.ApartmentID,
		Type:        e.Type,
		Amount:      money.Float(e.Amount),
		Description: e.Description,
		Date:        respond.FormatDate(e.Date),
		Vendor:      e.Vendor,
		ReceiptURL:  e.ReceiptURL,
		CreatedAt:   e.CreatedAt,
	}
}

func ToResponseList(expenses []*expense.Expense) []Response {
	resp := make([]Response, len(expenses))
	for i, e := range expenses {
		resp[i] = ToResponse(e)
	}

	return resp
}
