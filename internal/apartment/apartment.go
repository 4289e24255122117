package apartment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

var ErrNotFound = fmt.Errorf("apartment %w", apperror.ErrNotFound)

// Apartment is a rentable unit.
type Apartment struct {
	ID          uuid.UUID
	UnitNumber  string
	Address     string
	Bedrooms    int
	Bathrooms   float64
	SquareFeet  *int
	MonthlyRent int64 // Amount in cents
	Deposit     int64 // Amount in cents
	Description *string
	CreatedAt   time.Time
}
