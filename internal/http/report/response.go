package report

import (
	"github.com/MrJamesThe3rd/rentroll/internal/http/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/http/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
)

type monthlyResponse struct {
	Month              string  `json:"month"`
	Year               int     `json:"year"`
	TotalRentalIncome  float64 `json:"total_rental_income"`
	TotalExpenses      float64 `json:"total_expenses"`
	NetProfit          float64 `json:"net_profit"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	TotalApartments    int     `json:"total_apartments"`
	OccupiedApartments int     `json:"occupied_apartments"`
}

type yearlyResponse struct {
	Year                 int               `json:"year"`
	TotalRentalIncome    float64           `json:"total_rental_income"`
	TotalExpenses        float64           `json:"total_expenses"`
	NetProfit            float64           `json:"net_profit"`
	AverageOccupancyRate float64           `json:"average_occupancy_rate"`
	MonthlyBreakdown     []monthlyResponse `json:"monthly_breakdown"`
}

type dashboardResponse struct {
	Date                 string             `json:"date"`
	CurrentMonthReport   monthlyResponse    `json:"current_month_report"`
	TotalApartments      int                `json:"total_apartments"`
	TotalTenants         int                `json:"total_tenants"`
	OverduePaymentsCount int                `json:"overdue_payments_count"`
	OverduePayments      []payment.Response `json:"overdue_payments"`
	RecentExpenses       []expense.Response `json:"recent_expenses"`
}

func toMonthlyResponse(m *report.MonthlyReport) monthlyResponse {
	return monthlyResponse{
		Month:              m.Month,
		Year:               m.Year,
		TotalRentalIncome:  money.Float(m.TotalIncome),
		TotalExpenses:      money.Float(m.TotalExpenses),
		NetProfit:          money.Float(m.NetProfit),
		OccupancyRate:      m.OccupancyRate,
		TotalApartments:    m.TotalApartments,
		OccupiedApartments: m.OccupiedApartments,
	}
}

func toYearlyResponse(y *report.YearlyReport) yearlyResponse {
	resp := yearlyResponse{
		Year:                 y.Year,
		TotalRentalIncome:    money.Float(y.TotalIncome),
		TotalExpenses:        money.Float(y.TotalExpenses),
		NetProfit:            money.Float(y.NetProfit),
		AverageOccupancyRate: y.AverageOccupancyRate,
		MonthlyBreakdown:     make([]monthlyResponse, len(y.Months)),
	}

	for i := range y.Months {
		resp.MonthlyBreakdown[i] = toMonthlyResponse(&y.Months[i])
	}

	return resp
}

func toDashboardResponse(d *report.Dashboard) dashboardResponse {
	return dashboardResponse{
		Date:                 respond.FormatDate(d.Date),
		CurrentMonthReport:   toMonthlyResponse(&d.CurrentMonth),
		TotalApartments:      d.TotalApartments,
		TotalTenants:         d.TotalTenants,
		OverduePaymentsCount: d.OverdueCount,
		OverduePayments:      payment.ToResponseList(d.OverduePayments),
		RecentExpenses:       expense.ToResponseList(d.RecentExpenses),
	}
}
