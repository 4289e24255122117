package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
)

const listLimit = 1000

type Handler struct {
	svc *tenant.Service
}

func NewHandler(svc *tenant.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type tenantRequest struct {
	FirstName             string           `json:"first_name" validate:"required"`
	LastName              string           `json:"last_name" validate:"required"`
	Email                 string           `json:"email" validate:"required,email"`
	Phone                 string           `json:"phone" validate:"required"`
	ApartmentID           *string          `json:"apartment_id" validate:"omitempty,uuid"`
	LeaseStart            string           `json:"lease_start" validate:"required,datetime=2006-01-02"`
	LeaseEnd              string           `json:"lease_end" validate:"required,datetime=2006-01-02"`
	MonthlyRent           *decimal.Decimal `json:"monthly_rent" validate:"required"`
	DepositPaid           *decimal.Decimal `json:"deposit_paid" validate:"required"`
	EmergencyContactName  *string          `json:"emergency_contact_name"`
	EmergencyContactPhone *string          `json:"emergency_contact_phone"`
}

func (req tenantRequest) params() (tenant.Params, error) {
	apartmentID, err := respond.OptionalID("apartment_id", req.ApartmentID)
	if err != nil {
		return tenant.Params{}, err
	}

	start, err := respond.Date("lease_start", req.LeaseStart)
	if err != nil {
		return tenant.Params{}, err
	}

	end, err := respond.Date("lease_end", req.LeaseEnd)
	if err != nil {
		return tenant.Params{}, err
	}

	rent, err := respond.Cents("monthly_rent", *req.MonthlyRent)
	if err != nil {
		return tenant.Params{}, err
	}

	deposit, err := respond.Cents("deposit_paid", *req.DepositPaid)
	if err != nil {
		return tenant.Params{}, err
	}

	return tenant.Params{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		ApartmentID:           apartmentID,
		LeaseStart:            start,
		LeaseEnd:              end,
		MonthlyRent:           rent,
		DepositPaid:           deposit,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}, nil
}

func (h *Handler) decode(r *http.Request) (tenant.Params, error) {
	var req tenantRequest
	if err := respond.Decode(r, &req); err != nil {
		return tenant.Params{}, err
	}

	return req.params()
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	params, err := h.decode(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(t))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := tenant.ListFilter{Limit: listLimit}

	if s := r.URL.Query().Get("apartment_id"); s != "" {
		id, err := respond.OptionalID("apartment_id", &s)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		filter.ApartmentID = id
	}

	tenants, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(tenants))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(t))
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

	t, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(t))
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

	respond.Deleted(w, "Tenant")
}
