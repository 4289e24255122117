package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
)

func newService(m *memStore, opts ...report.Option) *report.Service {
	return report.NewService(memApartments{m}, memTenants{m}, memPayments{m}, memExpenses{m}, opts...)
}

func fixedClock(t time.Time) report.Option {
	return report.WithClock(func() time.Time { return t })
}

// scenario builds one apartment, one tenant leasing all of 2024, a 1500.00
// payment paid on 2024-02-10 and a 250.00 expense on 2024-02-15.
func scenario(status payment.Status) *memStore {
	m := &memStore{apartments: 1}
	m.addTenant(date(2024, 1, 1), date(2024, 12, 31))
	m.addPayment(150000, status, date(2024, 2, 1), new(date(2024, 2, 10)))
	m.addExpense(25000, date(2024, 2, 15))

	return m
}

func TestService_Monthly_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
		year  int
		month int
		want  report.MonthlyReport
	}{
		{
			name:  "EmptyStore",
			store: &memStore{},
			year:  2024,
			month: 3,
			want:  report.MonthlyReport{Month: "March", Year: 2024},
		},
		{
			name:  "PaidPaymentAndExpense",
			store: scenario(payment.StatusPaid),
			year:  2024,
			month: 2,
			want: report.MonthlyReport{
				Month:              "February",
				Year:               2024,
				TotalIncome:        150000,
				TotalExpenses:      25000,
				NetProfit:          125000,
				OccupancyRate:      100,
				TotalApartments:    1,
				OccupiedApartments: 1,
			},
		},
		{
			name:  "UnpaidPaymentIsNotIncome",
			store: scenario(payment.StatusUnpaid),
			year:  2024,
			month: 2,
			want: report.MonthlyReport{
				Month:              "February",
				Year:               2024,
				TotalExpenses:      25000,
				NetProfit:          -25000,
				OccupancyRate:      100,
				TotalApartments:    1,
				OccupiedApartments: 1,
			},
		},
		{
			name:  "NegativeNet",
			store: func() *memStore { m := &memStore{}; m.addExpense(9900, date(2023, 7, 4)); return m }(),
			year:  2023,
			month: 7,
			want:  report.MonthlyReport{Month: "July", Year: 2023, TotalExpenses: 9900, NetProfit: -9900},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newService(tt.store).Monthly(context.Background(), tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestService_Monthly_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		ctrl := gomock.NewController(t)

		svc := report.NewService(
			report.NewMockApartmentCounter(ctrl),
			report.NewMockTenantCounter(ctrl),
			report.NewMockPaymentReader(ctrl),
			report.NewMockExpenseReader(ctrl),
		)

		got, err := svc.Monthly(context.Background(), 2024, month)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument, "month %d", month)

		ctrl.Finish()
	}
}

func TestService_Monthly_DecemberRollsOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apartments := report.NewMockApartmentCounter(ctrl)
	tenants := report.NewMockTenantCounter(ctrl)
	payments := report.NewMockPaymentReader(ctrl)
	expenses := report.NewMockExpenseReader(ctrl)

	start := date(2024, 12, 1)
	end := date(2025, 1, 1)

	payments.EXPECT().
		Sum(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f payment.ListFilter) (int64, error) {
			assert.Equal(t, []payment.Status{payment.StatusPaid}, f.Statuses)
			assert.Equal(t, start, *f.PaidFrom)
			assert.Equal(t, end, *f.PaidBefore)
			return 100, nil
		})
	expenses.EXPECT().
		Sum(gomock.Any(), expense.ListFilter{From: &start, Before: &end}).
		Return(int64(40), nil)
	apartments.EXPECT().Count(gomock.Any()).Return(2, nil)
	tenants.EXPECT().
		Count(gomock.Any(), tenant.ListFilter{ActiveFrom: &start, ActiveUntil: &end}).
		Return(1, nil)

	svc := report.NewService(apartments, tenants, payments, expenses)

	got, err := svc.Monthly(context.Background(), 2024, 12)
	require.NoError(t, err)
	assert.Equal(t, "December", got.Month)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, int64(60), got.NetProfit)
	assert.InDelta(t, 50.0, got.OccupancyRate, 1e-9)
}

func TestService_Monthly_DecemberBoundaries(t *testing.T) {
	m := &memStore{}
	m.addPayment(1000, payment.StatusPaid, date(2024, 12, 1), new(date(2024, 12, 31)))
	m.addPayment(2000, payment.StatusPaid, date(2024, 12, 1), new(date(2025, 1, 1)))
	m.addPayment(4000, payment.StatusPaid, date(2024, 11, 1), new(date(2024, 11, 30)))

	got, err := newService(m).Monthly(context.Background(), 2024, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.TotalIncome)
}

func TestService_Monthly_ExcludesPaymentsWithoutPaidDate(t *testing.T) {
	m := &memStore{}
	m.addPayment(1000, payment.StatusPaid, date(2024, 5, 1), nil)

	got, err := newService(m).Monthly(context.Background(), 2024, 5)
	require.NoError(t, err)
	assert.Zero(t, got.TotalIncome)
}

func TestService_Monthly_Occupancy(t *testing.T) {
	tests := []struct {
		name       string
		apartments int
		leases     [][2]time.Time
		want       float64
	}{
		{
			name:       "NoApartmentsWithTenants",
			apartments: 0,
			leases:     [][2]time.Time{{date(2024, 1, 1), date(2024, 12, 31)}},
			want:       0,
		},
		{
			name:       "MoreTenantsThanApartments",
			apartments: 1,
			leases: [][2]time.Time{
				{date(2024, 1, 1), date(2024, 12, 31)},
				{date(2024, 1, 1), date(2024, 12, 31)},
				{date(2024, 1, 1), date(2024, 12, 31)},
			},
			want: 100,
		},
		{
			name:       "LeaseEndsOnFirstDay",
			apartments: 2,
			leases:     [][2]time.Time{{date(2023, 6, 1), date(2024, 6, 1)}},
			want:       50,
		},
		{
			name:       "LeaseStartsFirstOfNextMonth",
			apartments: 2,
			leases:     [][2]time.Time{{date(2024, 7, 1), date(2025, 6, 30)}},
			want:       50,
		},
		{
			name:       "LeaseEndsBeforeMonth",
			apartments: 2,
			leases:     [][2]time.Time{{date(2023, 6, 1), date(2024, 5, 31)}},
			want:       0,
		},
		{
			name:       "InvertedLeaseNeverOccupies",
			apartments: 1,
			leases:     [][2]time.Time{{date(2024, 6, 20), date(2024, 6, 10)}},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &memStore{apartments: tt.apartments}
			for _, l := range tt.leases {
				m.addTenant(l[0], l[1])
			}

			got, err := newService(m).Monthly(context.Background(), 2024, 6)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.OccupancyRate, 1e-9)
			assert.GreaterOrEqual(t, got.OccupancyRate, 0.0)
			assert.LessOrEqual(t, got.OccupancyRate, 100.0)
		})
	}
}

func TestService_Monthly_Idempotent(t *testing.T) {
	svc := newService(scenario(payment.StatusPaid))

	first, err := svc.Monthly(context.Background(), 2024, 2)
	require.NoError(t, err)

	second, err := svc.Monthly(context.Background(), 2024, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Monthly_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := report.NewMockPaymentReader(ctrl)
	payments.EXPECT().Sum(gomock.Any(), gomock.Any()).Return(int64(0), apperror.ErrStoreUnavailable)

	svc := report.NewService(
		report.NewMockApartmentCounter(ctrl),
		report.NewMockTenantCounter(ctrl),
		payments,
		report.NewMockExpenseReader(ctrl),
	)

	got, err := svc.Monthly(context.Background(), 2024, 2)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestService_Yearly_AverageOccupancy(t *testing.T) {
	m := &memStore{apartments: 1}
	m.addTenant(date(2024, 1, 1), date(2024, 11, 30))

	got, err := newService(m).Yearly(context.Background(), 2024)
	require.NoError(t, err)

	assert.InDelta(t, 91.67, got.AverageOccupancyRate, 0.01)
	assert.InDelta(t, 100.0, got.Months[10].OccupancyRate, 1e-9)
	assert.Zero(t, got.Months[11].OccupancyRate)
}

func TestService_Yearly_CalendarOrderAndTotals(t *testing.T) {
	m := &memStore{apartments: 3}

	var paidInYear int64

	for month := time.January; month <= time.December; month++ {
		amount := int64(month) * 10000
		m.addPayment(amount, payment.StatusPaid, date(2024, month, 1), new(date(2024, month, 5)))
		m.addPayment(777, payment.StatusPartial, date(2024, month, 1), new(date(2024, month, 6)))
		m.addExpense(int64(month)*100, date(2024, month, 20))

		paidInYear += amount
	}

	m.addPayment(123456, payment.StatusPaid, date(2023, 12, 1), new(date(2023, 12, 31)))
	m.addPayment(654321, payment.StatusPaid, date(2025, 1, 1), new(date(2025, 1, 1)))

	got, err := newService(m).Yearly(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, paidInYear, got.TotalIncome)
	assert.Equal(t, int64(7800), got.TotalExpenses)
	assert.Equal(t, got.TotalIncome-got.TotalExpenses, got.NetProfit)

	var monthly int64

	for i, r := range got.Months {
		assert.Equal(t, time.Month(i+1).String(), r.Month)
		assert.Equal(t, int64(i+1)*10000, r.TotalIncome)
		monthly += r.TotalIncome
	}

	assert.Equal(t, got.TotalIncome, monthly)
}

func TestService_Yearly_FailsWhenAnyMonthFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apartments := report.NewMockApartmentCounter(ctrl)
	tenants := report.NewMockTenantCounter(ctrl)
	payments := report.NewMockPaymentReader(ctrl)
	expenses := report.NewMockExpenseReader(ctrl)

	failing := date(2024, 7, 1)

	payments.EXPECT().
		Sum(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f payment.ListFilter) (int64, error) {
			if f.PaidFrom.Equal(failing) {
				return 0, apperror.ErrStoreUnavailable
			}
			return 0, nil
		}).
		AnyTimes()
	expenses.EXPECT().Sum(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	apartments.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	tenants.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	svc := report.NewService(apartments, tenants, payments, expenses)

	got, err := svc.Yearly(context.Background(), 2024)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestService_Dashboard_Overdue(t *testing.T) {
	m := &memStore{apartments: 2}
	m.addTenant(date(2024, 1, 1), date(2024, 12, 31))

	partial := m.addPayment(50000, payment.StatusPartial, date(2024, 2, 1), nil)
	m.addPayment(150000, payment.StatusPaid, date(2024, 2, 1), new(date(2024, 2, 3)))
	m.addPayment(150000, payment.StatusUnpaid, date(2024, 3, 1), nil)
	m.addPayment(150000, payment.StatusOverdue, date(2024, 1, 1), nil)

	svc := newService(m, fixedClock(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)))

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, date(2024, 3, 1), got.Date)
	assert.Equal(t, "March", got.CurrentMonth.Month)
	assert.Equal(t, 2024, got.CurrentMonth.Year)
	assert.Equal(t, 2, got.TotalApartments)
	assert.Equal(t, 1, got.TotalTenants)
	assert.Equal(t, 1, got.OverdueCount)
	require.Len(t, got.OverduePayments, 1)
	assert.Equal(t, partial.ID, got.OverduePayments[0].ID)
}

func TestService_Dashboard_OverdueCountIsNotCapped(t *testing.T) {
	m := &memStore{}
	for i := range 150 {
		m.addPayment(100, payment.StatusUnpaid, date(2024, 1, 1).AddDate(0, 0, i%20), nil)
	}

	svc := newService(m, fixedClock(date(2024, 6, 1)))

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 150, got.OverdueCount)
	assert.Len(t, got.OverduePayments, 100)

	for i := 1; i < len(got.OverduePayments); i++ {
		assert.False(t, got.OverduePayments[i].DueDate.Before(got.OverduePayments[i-1].DueDate))
	}
}

func TestService_Dashboard_RecentExpenses(t *testing.T) {
	m := &memStore{}
	for day := 1; day <= 8; day++ {
		m.addExpense(100, date(2024, 2, day))
	}

	svc := newService(m, fixedClock(date(2024, 3, 1)))

	first, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, first.RecentExpenses, 5)
	assert.Equal(t, date(2024, 2, 8), first.RecentExpenses[0].Date)
	assert.Equal(t, date(2024, 2, 4), first.RecentExpenses[4].Date)

	second, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.RecentExpenses, second.RecentExpenses)
}

func TestService_Dashboard_UsesClockDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	m := &memStore{}
	m.addPayment(100, payment.StatusUnpaid, date(2024, 12, 31), nil)

	svc := newService(m, fixedClock(time.Date(2024, 12, 31, 22, 0, 0, 0, loc)))

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, date(2024, 12, 31), got.Date)
	assert.Equal(t, "December", got.CurrentMonth.Month)
	assert.Zero(t, got.OverdueCount)
}

func TestService_Dashboard_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apartments := report.NewMockApartmentCounter(ctrl)
	tenants := report.NewMockTenantCounter(ctrl)
	payments := report.NewMockPaymentReader(ctrl)
	expenses := report.NewMockExpenseReader(ctrl)

	boom := errors.New("boom")

	apartments.EXPECT().Count(gomock.Any()).Return(1, nil).AnyTimes()
	tenants.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()
	payments.EXPECT().Sum(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	payments.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	payments.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	expenses.EXPECT().Sum(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom).AnyTimes()

	svc := report.NewService(apartments, tenants, payments, expenses, fixedClock(date(2024, 3, 1)))

	got, err := svc.Dashboard(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
}
