package tenant

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
)

type tenantResponse struct {
	ID                    uuid.UUID  `json:"id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	ApartmentID           *uuid.UUID `json:"apartment_id"`
	LeaseStart            string     `json:"lease_start"`
	LeaseEnd              string     `json:"lease_end"`
	MonthlyRent           float64    `json:"monthly_rent"`
	DepositPaid           float64    `json:"deposit_paid"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
	CreatedAt             time.Time  `json:"created_at"`
}

func toResponse(t *tenant.Tenant) tenantResponse {
	return tenantResponse{
		ID:                    t.ID,
		FirstName:             t.FirstName,
		LastName:              t.LastName,
		Email:                 t.Email,
		Phone:                 t.Phone,
		ApartmentID:           t.ApartmentID,
		LeaseStart:            respond.FormatDate(t.LeaseStart),
		LeaseEnd:              respond.FormatDate(t.LeaseEnd),
		MonthlyRent:           money.Float(t.MonthlyRent),
		DepositPaid:           money.Float(t.DepositPaid),
		EmergencyContactName:  t.EmergencyContactName,
		EmergencyContactPhone: t.EmergencyContactPhone,
		CreatedAt:             t.CreatedAt,
	}
}

func toResponseList(tenants []*tenant.Tenant) []tenantResponse {
	resp := make([]tenantResponse, len(tenants))
	for i, t := range tenants {
		resp[i] = toResponse(t)
	}

	return resp
}
