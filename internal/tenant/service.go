package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tenant
type Repository interface {
	CreateTenant(ctx context.Context, t *Tenant) error
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	ListTenants(ctx context.Context, filter ListFilter) ([]*Tenant, error)
	CountTenants(ctx context.Context, filter ListFilter) (int, error)
	UpdateTenant(ctx context.Context, t *Tenant) error
	DeleteTenant(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	FirstName             string `validate:"required"`
	LastName              string `validate:"required"`
	Email                 string `validate:"required,email"`
	Phone                 string `validate:"required"`
	ApartmentID           *uuid.UUID
	LeaseStart            time.Time `validate:"required"`
	LeaseEnd              time.Time `validate:"required,gtefield=LeaseStart"`
	MonthlyRent           int64     `validate:"gte=0"`
	DepositPaid           int64     `validate:"gte=0"`
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// ListFilter narrows tenant queries. ActiveFrom and ActiveUntil select
// tenants whose lease overlaps [ActiveFrom, ActiveUntil], inclusive.
type ListFilter struct {
	ApartmentID *uuid.UUID
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	Limit       int
}

func (s *Service) Create(ctx context.Context, params Params) (*Tenant, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	t := &Tenant{}
	params.apply(t)

	if err := s.repo.CreateTenant(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	return s.repo.GetTenant(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Tenant, error) {
	return s.repo.ListTenants(ctx, filter)
}

func (s *Service) Count(ctx context.Context, filter ListFilter) (int, error) {
	return s.repo.CountTenants(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Tenant, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	t := &Tenant{ID: id}
	params.apply(t)

	if err := s.repo.UpdateTenant(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTenant(ctx, id)
}

func (p Params) apply(t *Tenant) {
	t.FirstName = p.FirstName
	t.LastName = p.LastName
	t.Email = p.Email
	t.Phone = p.Phone
	t.ApartmentID = p.ApartmentID
	t.LeaseStart = p.LeaseStart
	t.LeaseEnd = p.LeaseEnd
	t.MonthlyRent = p.MonthlyRent
	t.DepositPaid = p.DepositPaid
	t.EmergencyContactName = p.EmergencyContactName
	t.EmergencyContactPhone = p.EmergencyContactPhone
}
