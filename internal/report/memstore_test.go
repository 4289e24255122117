package report_test

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
)

// memStore applies list filters over in-memory records the same way the SQL
// stores do, so report tests can assert on whole scenarios.
type memStore struct {
	apartments int
	tenants    []*tenant.Tenant
	payments   []*payment.Payment
	expenses   []*expense.Expense
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (m *memStore) addTenant(start, end time.Time) {
	m.tenants = append(m.tenants, &tenant.Tenant{ID: uuid.New(), LeaseStart: start, LeaseEnd: end})
}

func (m *memStore) addPayment(amount int64, status payment.Status, due time.Time, paid *time.Time) *payment.Payment {
	p := &payment.Payment{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		ApartmentID: uuid.New(),
		Amount:      amount,
		DueDate:     due,
		PaidDate:    paid,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	m.payments = append(m.payments, p)

	return p
}

func (m *memStore) addExpense(amount int64, day time.Time) *expense.Expense {
	e := &expense.Expense{
		ID:          uuid.New(),
		Type:        expense.TypeMaintenance,
		Amount:      amount,
		Description: "repair",
		Date:        day,
		CreatedAt:   time.Now(),
	}
	m.expenses = append(m.expenses, e)

	return e
}

type memApartments struct{ *memStore }

func (m memApartments) Count(context.Context) (int, error) {
	return m.apartments, nil
}

type memTenants struct{ *memStore }

func (m memTenants) Count(_ context.Context, f tenant.ListFilter) (int, error) {
	n := 0

	for _, t := range m.tenants {
		if f.ActiveFrom != nil && f.ActiveUntil != nil && !t.LeaseOverlaps(*f.ActiveFrom, *f.ActiveUntil) {
			continue
		}

		n++
	}

	return n, nil
}

type memPayments struct{ *memStore }

func (m memPayments) match(f payment.ListFilter) []*payment.Payment {
	var out []*payment.Payment

	for _, p := range m.payments {
		if f.DueBefore != nil && slices.Equal(f.Statuses, payment.OutstandingStatuses) {
			if p.OverdueOn(*f.DueBefore) {
				out = append(out, p)
			}

			continue
		}

		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, p.Status) {
			continue
		}

		if f.PaidFrom != nil && (p.PaidDate == nil || p.PaidDate.Before(*f.PaidFrom)) {
			continue
		}

		if f.PaidBefore != nil && (p.PaidDate == nil || !p.PaidDate.Before(*f.PaidBefore)) {
			continue
		}

		if f.DueBefore != nil && !p.DueDate.Before(*f.DueBefore) {
			continue
		}

		out = append(out, p)
	}

	return out
}

func (m memPayments) List(_ context.Context, f payment.ListFilter) ([]*payment.Payment, error) {
	out := m.match(f)

	if f.Order == payment.OrderDueDate {
		slices.SortFunc(out, func(a, b *payment.Payment) int {
			return cmp.Or(a.DueDate.Compare(b.DueDate), strings.Compare(a.ID.String(), b.ID.String()))
		})
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}

	return out, nil
}

func (m memPayments) Count(_ context.Context, f payment.ListFilter) (int, error) {
	return len(m.match(f)), nil
}

func (m memPayments) Sum(_ context.Context, f payment.ListFilter) (int64, error) {
	var total int64
	for _, p := range m.match(f) {
		total += p.Amount
	}

	return total, nil
}

type memExpenses struct{ *memStore }

func (m memExpenses) match(f expense.ListFilter) []*expense.Expense {
	var out []*expense.Expense

	for _, e := range m.expenses {
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}

		if f.Before != nil && !e.Date.Before(*f.Before) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func (m memExpenses) List(_ context.Context, f expense.ListFilter) ([]*expense.Expense, error) {
	out := m.match(f)

	if f.Order == expense.OrderDateDesc {
		slices.SortFunc(out, func(a, b *expense.Expense) int {
			return cmp.Or(b.Date.Compare(a.Date), strings.Compare(a.ID.String(), b.ID.String()))
		})
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}

	return out, nil
}

func (m memExpenses) Sum(_ context.Context, f expense.ListFilter) (int64, error) {
	var total int64
	for _, e := range m.match(f) {
		total += e.Amount
	}

	return total, nil
}
