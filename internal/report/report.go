// Package report derives monthly and yearly financial summaries and the
// dashboard snapshot from stored payments, expenses, apartments and tenants.
package report

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
)

const (
	overdueListLimit   = 100
	recentExpenseLimit = 5
)

//go:generate mockgen -source=report.go -destination=readers_mock.go -package=report
type ApartmentCounter interface {
	Count(ctx context.Context) (int, error)
}

type TenantCounter interface {
	Count(ctx context.Context, filter tenant.ListFilter) (int, error)
}

type PaymentReader interface {
	List(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error)
	Count(ctx context.Context, filter payment.ListFilter) (int, error)
	Sum(ctx context.Context, filter payment.ListFilter) (int64, error)
}

type ExpenseReader interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
	Sum(ctx context.Context, filter expense.ListFilter) (int64, error)
}

// MonthlyReport summarises one calendar month. Amounts are in cents.
type MonthlyReport struct {
	Month              string
	Year               int
	TotalIncome        int64
	TotalExpenses      int64
	NetProfit          int64
	OccupancyRate      float64
	TotalApartments    int
	OccupiedApartments int
}

// YearlyReport folds the twelve monthly reports of a year, January first.
type YearlyReport struct {
	Year                 int
	TotalIncome          int64
	TotalExpenses        int64
	NetProfit            int64
	AverageOccupancyRate float64
	Months               [12]MonthlyReport
}

// Dashboard is a point-in-time snapshot. OverdueCount is the full number of
// overdue payments; OverduePayments holds at most the first 100 by due date.
type Dashboard struct {
	Date            time.Time
	CurrentMonth    MonthlyReport
	TotalApartments int
	TotalTenants    int
	OverdueCount    int
	OverduePayments []*payment.Payment
	RecentExpenses  []*expense.Expense
}
