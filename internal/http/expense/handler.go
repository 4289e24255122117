package expense

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
)

const listLimit = 1000

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type expenseRequest struct {
	ApartmentID *string          `json:"apartment_id" validate:"omitempty,uuid"`
	Type        expense.Type     `json:"expense_type" validate:"required,oneof=maintenance utilities insurance taxes family other"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Vendor      *string          `json:"vendor"`
	ReceiptURL  *string          `json:"receipt_url" validate:"omitempty,url"`
}

func (req expenseRequest) params() (expense.Params, error) {
	apartmentID, err := respond.OptionalID("apartment_id", req.ApartmentID)
	if err != nil {
		return expense.Params{}, err
	}

	date, err := respond.Date("date", req.Date)
	if err != nil {
		return expense.Params{}, err
	}

	amount, err := respond.Cents("amount", *req.Amount)
	if err != nil {
		return expense.Params{}, err
	}

	return expense.Params{
		ApartmentID: apartmentID,
		Type:        req.Type,
		Amount:      amount,
		Description: req.Description,
		Date:        date,
		Vendor:      req.Vendor,
		ReceiptURL:  req.ReceiptURL,
	}, nil
}

func (h *Handler) decode(r *http.Request) (expense.Params, error) {
	var req expenseRequest
	if err := respond.Decode(r, &req); err != nil {
		return expense.Params{}, err
	}

	return req.params()
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	params, err := h.decode(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(e))
}

// listFilter reads the query string. end_date is inclusive.
func listFilter(r *http.Request) (expense.ListFilter, error) {
	q := r.URL.Query()
	filter := expense.ListFilter{Limit: listLimit}

	if s := q.Get("expense_type"); s != "" {
		typ := expense.Type(s)
		if !typ.Valid() {
			return filter, apperror.Invalid("expense_type", "validation_oneof",
				fmt.Sprintf("field 'expense_type' must be one of [maintenance utilities insurance taxes family other], got '%s'", s))
		}

		filter.Type = &typ
	}

	apartmentID, err := respond.OptionalID("apartment_id", new(q.Get("apartment_id")))
	if err != nil {
		return filter, err
	}

	from, err := respond.OptionalDate("start_date", new(q.Get("start_date")))
	if err != nil {
		return filter, err
	}

	until, err := respond.OptionalDate("end_date", new(q.Get("end_date")))
	if err != nil {
		return filter, err
	}

	filter.ApartmentID = apartmentID
	filter.From = from

	if until != nil {
		filter.Before = new(until.AddDate(0, 0, 1))
	}

	return filter, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	expenses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(expenses))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(e))
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

	e, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(e))
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

	respond.Deleted(w, "Expense")
}
