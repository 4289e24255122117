package apartment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rentroll/internal/apartment"
	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

func validParams() apartment.Params {
	return apartment.Params{
		UnitNumber:  "2B",
		Address:     "1 Main St",
		Bedrooms:    2,
		Bathrooms:   1.5,
		MonthlyRent: 150000,
		Deposit:     150000,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name        string
		params      apartment.Params
		setupMock   func(m *apartment.MockRepository)
		wantErr     bool
		wantInvalid bool
	}

	negative := validParams()
	negative.MonthlyRent = -1

	zeroSqft := validParams()
	zeroSqft.SquareFeet = new(0)

	tests := []testCase{
		{
			name:   "Success",
			params: validParams(),
			setupMock: func(m *apartment.MockRepository) {
				m.EXPECT().
					CreateApartment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *apartment.Apartment) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:        "MissingUnitNumber",
			params:      apartment.Params{Address: "x"},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "NegativeRent",
			params:      negative,
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "ZeroSquareFeet",
			params:      zeroSqft,
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:   "RepoError",
			params: validParams(),
			setupMock: func(m *apartment.MockRepository) {
				m.EXPECT().
					CreateApartment(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := apartment.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := apartment.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantInvalid, errors.Is(err, apperror.ErrInvalidArgument))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "2B", got.UnitNumber)
		})
	}
}

func TestService_Update_ReplacesAllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := apartment.NewMockRepository(ctrl)
	svc := apartment.NewService(repo)

	id := uuid.New()
	params := validParams()
	params.Description = new("renovated")

	repo.EXPECT().
		UpdateApartment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *apartment.Apartment) error {
			assert.Equal(t, id, a.ID)
			assert.Equal(t, "renovated", *a.Description)
			assert.Nil(t, a.SquareFeet)
			return nil
		})

	got, err := svc.Update(context.Background(), id, params)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := apartment.NewMockRepository(ctrl)
	svc := apartment.NewService(repo)

	repo.EXPECT().UpdateApartment(gomock.Any(), gomock.Any()).Return(apartment.ErrNotFound)

	_, err := svc.Update(context.Background(), uuid.New(), validParams())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := apartment.NewMockRepository(ctrl)
	svc := apartment.NewService(repo)

	id := uuid.New()
	repo.EXPECT().DeleteApartment(gomock.Any(), id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := apartment.NewMockRepository(ctrl)
	svc := apartment.NewService(repo)

	repo.EXPECT().CountApartments(gomock.Any()).Return(4, nil)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
