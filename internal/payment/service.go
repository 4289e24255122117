package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	CountPayments(ctx context.Context, filter ListFilter) (int, error)
	SumPayments(ctx context.Context, filter ListFilter) (int64, error)
	UpdatePayment(ctx context.Context, p *Payment) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	TenantID      uuid.UUID  `validate:"required"`
	ApartmentID   uuid.UUID  `validate:"required"`
	Amount        int64      `validate:"gt=0"`
	DueDate       time.Time  `validate:"required"`
	PaidDate      *time.Time
	Status        Status `validate:"required,oneof=paid unpaid overdue partial"`
	PaymentMethod *string
	Notes         *string
}

// Order selects the sort order of ListPayments.
type Order int

const (
	OrderNewest  Order = iota // created_at descending
	OrderDueDate              // due_date ascending
)

// ListFilter narrows payment queries. PaidFrom is inclusive, PaidBefore and
// DueBefore are exclusive. A non-empty Statuses matches any of its values.
type ListFilter struct {
	Statuses    []Status
	TenantID    *uuid.UUID
	ApartmentID *uuid.UUID
	PaidFrom    *time.Time
	PaidBefore  *time.Time
	DueBefore   *time.Time
	Order       Order
	Limit       int
}

// OverdueFilter selects, oldest due date first, the payments for which
// OverdueOn(today) holds.
func OverdueFilter(today time.Time) ListFilter {
	return ListFilter{
		Statuses:  OutstandingStatuses,
		DueBefore: &today,
		Order:     OrderDueDate,
	}
}

func (s *Service) Create(ctx context.Context, params Params) (*Payment, error) {
	if params.Status == "" {
		params.Status = StatusUnpaid
	}

	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	p := &Payment{}
	params.apply(p)

	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

func (s *Service) Count(ctx context.Context, filter ListFilter) (int, error) {
	return s.repo.CountPayments(ctx, filter)
}

// Sum returns the total amount in cents of the payments matching filter.
func (s *Service) Sum(ctx context.Context, filter ListFilter) (int64, error) {
	return s.repo.SumPayments(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Payment, error) {
	if params.Status == "" {
		params.Status = StatusUnpaid
	}

	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	p := &Payment{ID: id}
	params.apply(p)

	if err := s.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (p Params) apply(pm *Payment) {
	pm.TenantID = p.TenantID
	pm.ApartmentID = p.ApartmentID
	pm.Amount = p.Amount
	pm.DueDate = p.DueDate
	pm.PaidDate = p.PaidDate
	pm.Status = p.Status
	pm.PaymentMethod = p.PaymentMethod
	pm.Notes = p.Notes
}
