package payment

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

var ErrNotFound = fmt.Errorf("payment %w", apperror.ErrNotFound)

// Status is set by the caller and never changes on its own; lateness is
// derived from the due date at query time.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusUnpaid  Status = "unpaid"
	StatusOverdue Status = "overdue"
	StatusPartial Status = "partial"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusUnpaid, StatusOverdue, StatusPartial:
		return true
	}

	return false
}

// OutstandingStatuses are the statuses that make a past-due payment overdue.
var OutstandingStatuses = []Status{StatusUnpaid, StatusPartial}

// Payment is a single rent installment owed by a tenant.
type Payment struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ApartmentID   uuid.UUID
	Amount        int64      // Amount in cents
	DueDate       time.Time  // Calendar date, UTC midnight
	PaidDate      *time.Time // Calendar date, UTC midnight
	Status        Status
	PaymentMethod *string
	Notes         *string
	CreatedAt     time.Time
}

// OverdueOn reports whether the payment is still outstanding after its due
// date as of today.
func (p *Payment) OverdueOn(today time.Time) bool {
	if !p.DueDate.Before(today) {
		return false
	}

	return slices.Contains(OutstandingStatuses, p.Status)
}
