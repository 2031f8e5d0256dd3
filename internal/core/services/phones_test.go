// internal/core/services/phones_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/test/helpers"
	"github.com/alsaqri/phoneshop/test/mocks"
)

type phoneMocks struct {
	repo  *mocks.MockPhoneRepository
	ids   *mocks.MockIdentifierService
	cache *mocks.MockCache
	queue *mocks.MockTaskQueue
}

func newPhoneService(t *testing.T) (*services.PhoneService, phoneMocks) {
	ctrl := gomock.NewController(t)
	m := phoneMocks{
		repo:  mocks.NewMockPhoneRepository(ctrl),
		ids:   mocks.NewMockIdentifierService(ctrl),
		cache: mocks.NewMockCache(ctrl),
		queue: mocks.NewMockTaskQueue(ctrl),
	}
	pricing := services.NewPricingService(helpers.TestVAT(), helpers.TestLogger())
	return services.NewPhoneService(m.repo, m.ids, pricing, m.cache, m.queue, helpers.TestLogger()), m
}

// allocate runs the allocation callback the way the repository would.
func allocate(current string, found bool) func(context.Context, *domain.Phone, ports.NextPhoneNumberFunc) error {
	return func(ctx context.Context, phone *domain.Phone, next ports.NextPhoneNumberFunc) error {
		number, err := next(ctx, current, found)
		if err != nil {
			return err
		}
		phone.PhoneNumber = number
		return nil
	}
}

func TestPhoneService_Create(t *testing.T) {
	tests := []struct {
		name          string
		phone         *domain.Phone
		setupMocks    func(m phoneMocks)
		expectedError error
		errorContains string
		check         func(t *testing.T, phone *domain.Phone)
	}{
		{
			name: "allocates_number_and_prices_with_vat",
			phone: helpers.CreateTestPhone(func(p *domain.Phone) {
				p.SerialNumber = "SN-100"
				p.SellingPrice = decimal.RequireFromString("1000")
			}),
			setupMocks: func(m phoneMocks) {
				m.ids.EXPECT().CheckSerial(gomock.Any(), "SN-100").Return(nil)
				m.ids.EXPECT().PhoneNumberAfter(gomock.Any(), "000009", true).Return("000010", nil)
				m.repo.EXPECT().CreateWithNumber(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(allocate("000009", true))
				m.cache.EXPECT().Invalidate(gomock.Any(), "report:*").Return(nil)
				m.queue.EXPECT().EnqueueLabelRender(gomock.Any(), domain.LabelSubjectPhone, "000010").Return(nil)
			},
			check: func(t *testing.T, phone *domain.Phone) {
				assert.Equal(t, "000010", phone.PhoneNumber)
				assert.Equal(t, "1150.00", phone.SellingPriceWithVAT.StringFixed(2))
			},
		},
		{
			name: "used_phone_keeps_battery_health",
			phone: helpers.CreateTestPhone(func(p *domain.Phone) {
				p.Condition = domain.ConditionUsed
				p.BatteryHealth = 87
			}),
			setupMocks: func(m phoneMocks) {
				m.ids.EXPECT().CheckSerial(gomock.Any(), gomock.Any()).Return(nil)
				m.ids.EXPECT().PhoneNumberAfter(gomock.Any(), "", false).Return("000001", nil)
				m.repo.EXPECT().CreateWithNumber(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(allocate("", false))
				m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)
				m.queue.EXPECT().EnqueueLabelRender(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, phone *domain.Phone) {
				assert.Equal(t, "000001", phone.PhoneNumber)
				assert.Equal(t, "87", phone.BatteryLabel())
			},
		},
		{
			name: "validation_fails_for_missing_brand",
			phone: helpers.CreateTestPhone(func(p *domain.Phone) {
				p.Brand = " "
			}),
			setupMocks:    func(m phoneMocks) {},
			expectedError: domain.ErrInvalidInput,
			errorContains: "brand is required",
		},
		{
			name:  "duplicate_serial_rejected",
			phone: helpers.CreateTestPhone(),
			setupMocks: func(m phoneMocks) {
				m.ids.EXPECT().CheckSerial(gomock.Any(), gomock.Any()).
					Return(domain.ErrDuplicateIdentifier)
			},
			expectedError: domain.ErrDuplicateIdentifier,
		},
		{
			name:  "capacity_exceeded_surfaces",
			phone: helpers.CreateTestPhone(),
			setupMocks: func(m phoneMocks) {
				m.ids.EXPECT().CheckSerial(gomock.Any(), gomock.Any()).Return(nil)
				m.ids.EXPECT().PhoneNumberAfter(gomock.Any(), "100000", true).Return("", domain.ErrCapacityExceeded)
				m.repo.EXPECT().CreateWithNumber(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(allocate("100000", true))
			},
			expectedError: domain.ErrCapacityExceeded,
		},
		{
			name:  "queue_failure_is_not_fatal",
			phone: helpers.CreateTestPhone(),
			setupMocks: func(m phoneMocks) {
				m.ids.EXPECT().CheckSerial(gomock.Any(), gomock.Any()).Return(nil)
				m.ids.EXPECT().PhoneNumberAfter(gomock.Any(), gomock.Any(), gomock.Any()).Return("000002", nil)
				m.repo.EXPECT().CreateWithNumber(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(allocate("000001", true))
				m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				m.queue.EXPECT().EnqueueLabelRender(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("queue down"))
			},
			check: func(t *testing.T, phone *domain.Phone) {
				assert.Equal(t, "000002", phone.PhoneNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPhoneService(t)
			tt.setupMocks(m)

			err := svc.Create(context.Background(), tt.phone)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, tt.phone)
			}
		})
	}
}

func TestPhoneService_Get(t *testing.T) {
	svc, m := newPhoneService(t)

	_, err := svc.Get(context.Background(), "42")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	phone := helpers.CreateTestPhone(func(p *domain.Phone) { p.PhoneNumber = "000042" })
	m.repo.EXPECT().FindByNumber(gomock.Any(), "000042").Return(phone, nil)

	got, err := svc.Get(context.Background(), "000042")
	require.NoError(t, err)
	assert.Equal(t, phone, got)

	m.repo.EXPECT().FindByNumber(gomock.Any(), "000043").Return(nil, domain.ErrNotFound)
	_, err = svc.Get(context.Background(), "000043")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPhoneService_List(t *testing.T) {
	svc, m := newPhoneService(t)

	phones := []*domain.Phone{helpers.CreateTestPhone(), helpers.CreateTestPhone()}
	m.repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, params ports.ListParams) ([]*domain.Phone, int64, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 20, params.PageSize)
			assert.Equal(t, "Samsung", params.Brand)
			return phones, 45, nil
		})

	result, err := svc.List(context.Background(), ports.ListParams{Brand: "Samsung"})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(45), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
}

func TestPhoneService_Delete(t *testing.T) {
	svc, m := newPhoneService(t)

	m.repo.EXPECT().Delete(gomock.Any(), "000005").Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), "report:*").Return(nil)
	require.NoError(t, svc.Delete(context.Background(), "000005"))

	m.repo.EXPECT().Delete(gomock.Any(), "000006").Return(domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), "000006"), domain.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), "abc"), domain.ErrInvalidInput)
}

func TestPhoneService_WithoutQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPhoneRepository(ctrl)
	ids := mocks.NewMockIdentifierService(ctrl)
	cache := mocks.NewMockCache(ctrl)
	pricing := services.NewPricingService(helpers.TestVAT(), helpers.TestLogger())

	svc := services.NewPhoneService(repo, ids, pricing, cache, nil, helpers.TestLogger())

	ids.EXPECT().CheckSerial(gomock.Any(), gomock.Any()).Return(nil)
	ids.EXPECT().PhoneNumberAfter(gomock.Any(), gomock.Any(), gomock.Any()).Return("000001", nil)
	repo.EXPECT().CreateWithNumber(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(allocate("", false))
	cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Create(context.Background(), helpers.CreateTestPhone()))
}
