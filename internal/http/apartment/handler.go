package apartment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rentroll/internal/apartment"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
)

const listLimit = 1000

type Handler struct {
	svc *apartment.Service
}

func NewHandler(svc *apartment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type apartmentRequest struct {
	UnitNumber  string           `json:"unit_number" validate:"required"`
	Address     string           `json:"address" validate:"required"`
	Bedrooms    *int             `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *float64         `json:"bathrooms" validate:"required,gte=0"`
	SquareFeet  *int             `json:"square_feet" validate:"omitempty,gt=0"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent" validate:"required"`
	Deposit     *decimal.Decimal `json:"deposit" validate:"required"`
	Description *string          `json:"description"`
}

func (req apartmentRequest) params() (apartment.Params, error) {
	rent, err := respond.Cents("monthly_rent", *req.MonthlyRent)
	if err != nil {
		return apartment.Params{}, err
	}

	deposit, err := respond.Cents("deposit", *req.Deposit)
	if err != nil {
		return apartment.Params{}, err
	}

	return apartment.Params{
		UnitNumber:  req.UnitNumber,
		Address:     req.Address,
		Bedrooms:    *req.Bedrooms,
		Bathrooms:   *req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		MonthlyRent: rent,
		Deposit:     deposit,
		Description: req.Description,
	}, nil
}

func (h *Handler) decode(r *http.Request) (apartment.Params, error) {
	var req apartmentRequest
	if err := respond.Decode(r, &req); err != nil {
		return apartment.Params{}, err
	}

	return req.params()
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	params, err := h.decode(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.svc.List(r.Context(), apartment.ListFilter{Limit: listLimit})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(apartments))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	params, err := h.decode(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Deleted(w, "Apartment")
}
