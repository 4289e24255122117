package tenant

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

var ErrNotFound = fmt.Errorf("tenant %w", apperror.ErrNotFound)

// Tenant is a person holding a lease. ApartmentID is not checked against
// the apartments collection, so it may dangle after an apartment is deleted.
type Tenant struct {
	ID                    uuid.UUID
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	ApartmentID           *uuid.UUID
	LeaseStart            time.Time // Calendar date, UTC midnight
	LeaseEnd              time.Time // Calendar date, UTC midnight
	MonthlyRent           int64     // Amount in cents
	DepositPaid           int64     // Amount in cents
	EmergencyContactName  *string
	EmergencyContactPhone *string
	CreatedAt             time.Time
}

// LeaseOverlaps reports whether the lease overlaps [from, until], both ends
// inclusive. A lease ending before it starts never overlaps anything.
func (t *Tenant) LeaseOverlaps(from, until time.Time) bool {
	if t.LeaseEnd.Before(t.LeaseStart) {
		return false
	}

	return !t.LeaseStart.After(until) && !t.LeaseEnd.Before(from)
}
