package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/metrics"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
)

type Handler struct {
	svc     *report.Service
	metrics *metrics.Metrics
}

// NewHandler builds the report endpoints. m may be nil.
func NewHandler(svc *report.Service, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, metrics: m}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/reports/monthly/{year}/{month}", h.monthly)
	r.Get("/reports/yearly/{year}", h.yearly)
	r.Get("/dashboard", h.dashboard)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Invalid(name, "validation_int", fmt.Sprintf("'%s' is not a valid %s", raw, name))
	}

	return n, nil
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	month, err := intParam(r, "month")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	start := time.Now()
	m, err := h.svc.Monthly(r.Context(), year, month)
	h.metrics.ObserveReport("monthly", start, err)

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMonthlyResponse(m))
}

func (h *Handler) yearly(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	start := time.Now()
	y, err := h.svc.Yearly(r.Context(), year)
	h.metrics.ObserveReport("yearly", start, err)

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toYearlyResponse(y))
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	d, err := h.svc.Dashboard(r.Context())
	h.metrics.ObserveReport("dashboard", start, err)

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDashboardResponse(d))
}
