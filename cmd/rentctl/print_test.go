package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
)

func TestPrintMonthly(t *testing.T) {
	var buf bytes.Buffer

	m := &report.MonthlyReport{
		Month:              "March",
		Year:               2024,
		TotalIncome:        25000,
		TotalExpenses:      5050,
		NetProfit:          19950,
		OccupancyRate:      50,
		TotalApartments:    2,
		OccupiedApartments: 1,
	}

	require.NoError(t, printMonthly(&buf, message.NewPrinter(language.English), m))

	out := buf.String()
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "250.00")
	assert.Contains(t, out, "50.50")
	assert.Contains(t, out, "199.50")
	assert.Contains(t, out, "50.00% (1 of 2)")
}

func TestPrintYearly_ListsEveryMonth(t *testing.T) {
	var buf bytes.Buffer

	y := &report.YearlyReport{Year: 2024, AverageOccupancyRate: 91.67}
	for i := range y.Months {
		y.Months[i].Month = time.Month(i + 1).String()
	}

	require.NoError(t, printYearly(&buf, message.NewPrinter(language.English), y))

	out := buf.String()
	for i := range 12 {
		assert.Contains(t, out, time.Month(i+1).String())
	}

	assert.Contains(t, out, "91.67%")
}

func TestPrintDashboard(t *testing.T) {
	var buf bytes.Buffer

	d := &report.Dashboard{
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CurrentMonth:    report.MonthlyReport{Month: "March", Year: 2024},
		TotalApartments: 3,
		TotalTenants:    2,
		OverdueCount:    1,
		OverduePayments: []*payment.Payment{
			{Amount: 12000, DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Status: payment.StatusUnpaid},
		},
		RecentExpenses: []*expense.Expense{
			{Amount: 4000, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Type: expense.TypeMaintenance, Description: "Plumbing"},
		},
	}

	require.NoError(t, printDashboard(&buf, message.NewPrinter(language.English), d))

	out := buf.String()
	assert.Contains(t, out, "due 2024-03-01")
	assert.Contains(t, out, "120.00")
	assert.Contains(t, out, "unpaid")
	assert.Contains(t, out, "maintenance: Plumbing")
}
