package payment_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validParams() payment.Params {
	return payment.Params{
		TenantID:    uuid.New(),
		ApartmentID: uuid.New(),
		Amount:      150000,
		DueDate:     date(2024, 2, 1),
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name        string
		params      func() payment.Params
		setupMock   func(m *payment.MockRepository)
		wantStatus  payment.Status
		wantErr     bool
		wantInvalid bool
	}

	tests := []testCase{
		{
			name:   "DefaultsToUnpaid",
			params: validParams,
			setupMock: func(m *payment.MockRepository) {
				m.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: payment.StatusUnpaid,
		},
		{
			name: "KeepsExplicitStatus",
			params: func() payment.Params {
				p := validParams()
				p.Status = payment.StatusPaid
				p.PaidDate = new(date(2024, 2, 3))
				return p
			},
			setupMock: func(m *payment.MockRepository) {
				m.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: payment.StatusPaid,
		},
		{
			name: "UnknownStatus",
			params: func() payment.Params {
				p := validParams()
				p.Status = "refunded"
				return p
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "ZeroAmount",
			params: func() payment.Params {
				p := validParams()
				p.Amount = 0
				return p
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "MissingTenant",
			params: func() payment.Params {
				p := validParams()
				p.TenantID = uuid.Nil
				return p
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:   "RepoError",
			params: validParams,
			setupMock: func(m *payment.MockRepository) {
				m.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(apperror.ErrStoreUnavailable)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := payment.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantInvalid, errors.Is(err, apperror.ErrInvalidArgument))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).Return(payment.ErrNotFound)

	_, err := svc.Update(context.Background(), uuid.New(), validParams())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_Sum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	svc := payment.NewService(repo)

	filter := payment.ListFilter{Statuses: []payment.Status{payment.StatusPaid}}
	repo.EXPECT().SumPayments(gomock.Any(), filter).Return(int64(4200), nil)

	got, err := svc.Sum(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), got)
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []payment.Status{payment.StatusPaid, payment.StatusUnpaid, payment.StatusOverdue, payment.StatusPartial} {
		assert.True(t, s.Valid(), s)
	}

	assert.False(t, payment.Status("refunded").Valid())
	assert.False(t, payment.Status("").Valid())
}

func TestPayment_OverdueOn(t *testing.T) {
	today := date(2024, 3, 1)

	tests := []struct {
		name   string
		due    time.Time
		status payment.Status
		want   bool
	}{
		{name: "PastPartial", due: date(2024, 2, 1), status: payment.StatusPartial, want: true},
		{name: "PastUnpaid", due: date(2024, 2, 1), status: payment.StatusUnpaid, want: true},
		{name: "PastPaid", due: date(2024, 2, 1), status: payment.StatusPaid},
		{name: "PastOverdueLabel", due: date(2024, 2, 1), status: payment.StatusOverdue},
		{name: "DueToday", due: today, status: payment.StatusUnpaid},
		{name: "Future", due: date(2024, 4, 1), status: payment.StatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &payment.Payment{DueDate: tt.due, Status: tt.status}
			assert.Equal(t, tt.want, p.OverdueOn(today))
		})
	}
}

func TestOverdueFilter_MatchesOverdueOn(t *testing.T) {
	today := date(2024, 3, 1)

	f := payment.OverdueFilter(today)
	require.NotNil(t, f.DueBefore)
	assert.Equal(t, today, *f.DueBefore)
	assert.Equal(t, payment.OrderDueDate, f.Order)
	assert.Zero(t, f.Limit)

	statuses := []payment.Status{payment.StatusPaid, payment.StatusUnpaid, payment.StatusOverdue, payment.StatusPartial}
	for _, s := range statuses {
		p := &payment.Payment{DueDate: date(2024, 2, 1), Status: s}
		assert.Equal(t, slices.Contains(f.Statuses, s), p.OverdueOn(today), s)
	}
}
