package payment

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
)

const listLimit = 1000

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes has no delete: payments are corrected through update.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
}

type paymentRequest struct {
	TenantID      string           `json:"tenant_id" validate:"required,uuid"`
	ApartmentID   string           `json:"apartment_id" validate:"required,uuid"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	DueDate       string           `json:"due_date" validate:"required,datetime=2006-01-02"`
	PaidDate      *string          `json:"paid_date" validate:"omitempty,datetime=2006-01-02"`
	Status        payment.Status   `json:"status" validate:"omitempty,oneof=paid unpaid overdue partial"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
}

func (req paymentRequest) params() (payment.Params, error) {
	tenantID, err := respond.UUID("tenant_id", req.TenantID)
	if err != nil {
		return payment.Params{}, err
	}

	apartmentID, err := respond.UUID("apartment_id", req.ApartmentID)
	if err != nil {
		return payment.Params{}, err
	}

	due, err := respond.Date("due_date", req.DueDate)
	if err != nil {
		return payment.Params{}, err
	}

	paid, err := respond.OptionalDate("paid_date", req.PaidDate)
	if err != nil {
		return payment.Params{}, err
	}

	amount, err := respond.Cents("amount", *req.Amount)
	if err != nil {
		return payment.Params{}, err
	}

	return payment.Params{
		TenantID:      tenantID,
		ApartmentID:   apartmentID,
		Amount:        amount,
		DueDate:       due,
		PaidDate:      paid,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}, nil
}

func (h *Handler) decode(r *http.Request) (payment.Params, error) {
	var req paymentRequest
	if err := respond.Decode(r, &req); err != nil {
		return payment.Params{}, err
	}

	return req.params()
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	params, err := h.decode(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(p))
}

func listFilter(r *http.Request) (payment.ListFilter, error) {
	q := r.URL.Query()
	filter := payment.ListFilter{Limit: listLimit}

	if s := q.Get("status"); s != "" {
		status := payment.Status(s)
		if !status.Valid() {
			return filter, apperror.Invalid("status", "validation_oneof",
				fmt.Sprintf("field 'status' must be one of [paid unpaid overdue partial], got '%s'", s))
		}

		filter.Statuses = []payment.Status{status}
	}

	tenantID, err := respond.OptionalID("tenant_id", new(q.Get("tenant_id")))
	if err != nil {
		return filter, err
	}

	apartmentID, err := respond.OptionalID("apartment_id", new(q.Get("apartment_id")))
	if err != nil {
		return filter, err
	}

	filter.TenantID = tenantID
	filter.ApartmentID = apartmentID

	return filter, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	payments, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(payments))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(p))
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

	p, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(p))
}
