package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	SumExpenses(ctx context.Context, filter ListFilter) (int64, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	ApartmentID *uuid.UUID
	Type        Type      `validate:"required,oneof=maintenance utilities insurance taxes family other"`
	Amount      int64     `validate:"gt=0"`
	Description string    `validate:"required"`
	Date        time.Time `validate:"required"`
	Vendor      *string
	ReceiptURL  *string `validate:"omitempty,url"`
}

type Order int

const (
	OrderNewest   Order = iota // created_at descending
	OrderDateDesc              // date descending, ties by id
)

// ListFilter narrows expense queries. From is inclusive, Before is exclusive.
type ListFilter struct {
	Type        *Type
	ApartmentID *uuid.UUID
	From        *time.Time
	Before      *time.Time
	Order       Order
	Limit       int
}

func (s *Service) Create(ctx context.Context, params Params) (*Expense, error) {
	params.Description = strings.TrimSpace(params.Description)

	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	e := &Expense{}
	params.apply(e)

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// Sum returns the total amount in cents of the expenses matching filter.
func (s *Service) Sum(ctx context.Context, filter ListFilter) (int64, error) {
	return s.repo.SumExpenses(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Expense, error) {
	params.Description = strings.TrimSpace(params.Description)

	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	e := &Expense{ID: id}
	params.apply(e)

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (p Params) apply(e *Expense) {
	e.ApartmentID = p.ApartmentID
	e.Type = p.Type
	e.Amount = p.Amount
	e.Description = p.Description
	e.Date = p.Date
	e.Vendor = p.Vendor
	e.ReceiptURL = p.ReceiptURL
}
