package apartment

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=apartment
type Repository interface {
	CreateApartment(ctx context.Context, a *Apartment) error
	GetApartment(ctx context.Context, id uuid.UUID) (*Apartment, error)
	ListApartments(ctx context.Context, filter ListFilter) ([]*Apartment, error)
	CountApartments(ctx context.Context) (int, error)
	UpdateApartment(ctx context.Context, a *Apartment) error
	DeleteApartment(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Params holds every user-editable field. Updates replace all of them.
type Params struct {
	UnitNumber  string  `validate:"required"`
	Address     string  `validate:"required"`
	Bedrooms    int     `validate:"gte=0"`
	Bathrooms   float64 `validate:"gte=0"`
	SquareFeet  *int    `validate:"omitempty,gt=0"`
	MonthlyRent int64   `validate:"gte=0"`
	Deposit     int64   `validate:"gte=0"`
	Description *string
}

// ListFilter limits the number of returned apartments; zero means no limit.
type ListFilter struct {
	Limit int
}

func (s *Service) Create(ctx context.Context, params Params) (*Apartment, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	a := &Apartment{}
	params.apply(a)

	if err := s.repo.CreateApartment(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	return s.repo.GetApartment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Apartment, error) {
	return s.repo.ListApartments(ctx, filter)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.CountApartments(ctx)
}

// Update replaces every field of the apartment identified by id.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Apartment, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	a := &Apartment{ID: id}
	params.apply(a)

	if err := s.repo.UpdateApartment(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteApartment(ctx, id)
}

func (p Params) apply(a *Apartment) {
	a.UnitNumber = p.UnitNumber
	a.Address = p.Address
	a.Bedrooms = p.Bedrooms
	a.Bathrooms = p.Bathrooms
	a.SquareFeet = p.SquareFeet
	a.MonthlyRent = p.MonthlyRent
	a.Deposit = p.Deposit
	a.Description = p.Description
}
