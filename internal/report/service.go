package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
)

type Service struct {
	apartments ApartmentCounter
	tenants    TenantCounter
	payments   PaymentReader
	expenses   ExpenseReader
	now        func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of "today" for the dashboard.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	apartments ApartmentCounter,
	tenants TenantCounter,
	payments PaymentReader,
	expenses ExpenseReader,
	opts ...Option,
) *Service {
	s := &Service{
		apartments: apartments,
		tenants:    tenants,
		payments:   payments,
		expenses:   expenses,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// monthBounds returns the first day of the month and the first day of the
// following month, rolling December over into January of the next year.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	if month == time.December {
		return start, time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return start, time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
}

func (s *Service) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, apperror.Invalid("month", "out_of_range",
			fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}

	start, end := monthBounds(year, time.Month(month))

	income, err := s.payments.Sum(ctx, payment.ListFilter{
		Statuses:   []payment.Status{payment.StatusPaid},
		PaidFrom:   &start,
		PaidBefore: &end,
	})
	if err != nil {
		return nil, fmt.Errorf("summing rental income: %w", err)
	}

	spent, err := s.expenses.Sum(ctx, expense.ListFilter{From: &start, Before: &end})
	if err != nil {
		return nil, fmt.Errorf("summing expenses: %w", err)
	}

	total, err := s.apartments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting apartments: %w", err)
	}

	// Lease overlap is inclusive on both ends, so a lease starting on the
	// first of next month still counts.
	occupied, err := s.tenants.Count(ctx, tenant.ListFilter{ActiveFrom: &start, ActiveUntil: &end})
	if err != nil {
		return nil, fmt.Errorf("counting occupied apartments: %w", err)
	}

	occupied = min(occupied, total)

	var rate float64
	if total > 0 {
		rate = float64(occupied) / float64(total) * 100
	}

	return &MonthlyReport{
		Month:              start.Month().String(),
		Year:               year,
		TotalIncome:        income,
		TotalExpenses:      spent,
		NetProfit:          income - spent,
		OccupancyRate:      rate,
		TotalApartments:    total,
		OccupiedApartments: occupied,
	}, nil
}

func (s *Service) Yearly(ctx context.Context, year int) (*YearlyReport, error) {
	r := &YearlyReport{Year: year}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i := range r.Months {
		g.Go(func() error {
			m, err := s.Monthly(gctx, year, i+1)
			if err != nil {
				return fmt.Errorf("month %d: %w", i+1, err)
			}

			r.Months[i] = *m

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rates float64

	for _, m := range r.Months {
		r.TotalIncome += m.TotalIncome
		r.TotalExpenses += m.TotalExpenses
		rates += m.OccupancyRate
	}

	r.NetProfit = r.TotalIncome - r.TotalExpenses
	r.AverageOccupancyRate = rates / float64(len(r.Months))

	return r, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	d := &Dashboard{Date: today}

	overdue := payment.OverdueFilter(today)
	overdue.Limit = overdueListLimit

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := s.Monthly(gctx, today.Year(), int(today.Month()))
		if err != nil {
			return fmt.Errorf("current month: %w", err)
		}

		d.CurrentMonth = *m

		return nil
	})

	g.Go(func() error {
		n, err := s.apartments.Count(gctx)
		if err != nil {
			return fmt.Errorf("counting apartments: %w", err)
		}

		d.TotalApartments = n

		return nil
	})

	g.Go(func() error {
		n, err := s.tenants.Count(gctx, tenant.ListFilter{})
		if err != nil {
			return fmt.Errorf("counting tenants: %w", err)
		}

		d.TotalTenants = n

		return nil
	})

	g.Go(func() error {
		n, err := s.payments.Count(gctx, overdue)
		if err != nil {
			return fmt.Errorf("counting overdue payments: %w", err)
		}

		d.OverdueCount = n

		return nil
	})

	g.Go(func() error {
		list, err := s.payments.List(gctx, overdue)
		if err != nil {
			return fmt.Errorf("listing overdue payments: %w", err)
		}

		d.OverduePayments = list

		return nil
	})

	g.Go(func() error {
		list, err := s.expenses.List(gctx, expense.ListFilter{Order: expense.OrderDateDesc, Limit: recentExpenseLimit})
		if err != nil {
			return fmt.Errorf("listing recent expenses: %w", err)
		}

		d.RecentExpenses = list

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}
