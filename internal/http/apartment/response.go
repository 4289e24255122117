package apartment

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/apartment"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

type apartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	UnitNumber  string    `json:"unit_number"`
	Address     string    `json:"address"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	SquareFeet  *int      `json:"square_feet"`
	MonthlyRent float64   `json:"monthly_rent"`
	Deposit     float64   `json:"deposit"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(a *apartment.Apartment) apartmentResponse {
	return apartmentResponse{
		ID:          a.ID,
		UnitNumber:  a.UnitNumber,
		Address:     a.Address,
		Bedrooms:    a.Bedrooms,
		Bathrooms:   a.Bathrooms,
		SquareFeet:  a.SquareFeet,
		MonthlyRent: money.Float(a.MonthlyRent),
		Deposit:     money.Float(a.Deposit),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func toResponseList(apartments []*apartment.Apartment) []apartmentResponse {
	resp := make([]apartmentResponse, len(apartments))
	for i, a := range apartments {
		resp[i] = toResponse(a)
	}

	return resp
}
