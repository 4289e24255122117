package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
)

// Response is the wire form of a rent payment, shared with the dashboard.
type Response struct {
	ID            uuid.UUID      `json:"id"`
	TenantID      uuid.UUID      `json:"tenant_id"`
	ApartmentID   uuid.UUID      `json:"apartment_id"`
	Amount        float64        `json:"amount"`
	DueDate       string         `json:"due_date"`
	PaidDate      *string        `json:"paid_date"`
	Status        payment.Status `json:"status"`
	PaymentMethod *string        `json:"payment_method"`
	Notes         *string        `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
}

func ToResponse(p *payment.Payment) Response {
	return Response{
		ID:            p.ID,
		TenantID:      p.TenantID,
		ApartmentID:   p.ApartmentID,
		Amount:        money.Float(p.Amount),
		DueDate:       respond.FormatDate(p.DueDate),
		PaidDate:      respond.FormatOptionalDate(p.PaidDate),
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

func ToResponseList(payments []*payment.Payment) []Response {
	resp := make([]Response, len(payments))
	for i, p := range payments {
		resp[i] = ToResponse(p)
	}

	return resp
}
