package expense

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

var ErrNotFound = fmt.Errorf("expense %w", apperror.ErrNotFound)

type Type string

const (
	TypeMaintenance Type = "maintenance"
	TypeUtilities   Type = "utilities"
	TypeInsurance   Type = "insurance"
	TypeTaxes       Type = "taxes"
	TypeFamily      Type = "family"
	TypeOther       Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeMaintenance, TypeUtilities, TypeInsurance, TypeTaxes, TypeFamily, TypeOther:
		return true
	}

	return false
}

// Expense is money spent on the portfolio, optionally attributed to one apartment.
type Expense struct {
	ID          uuid.UUID
	ApartmentID *uuid.UUID
	Type        Type
	Amount      int64 // Amount in cents
	Description string
	Date        time.Time
	Vendor      *string
	ReceiptURL  *string
	CreatedAt   time.Time
}
