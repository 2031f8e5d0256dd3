// internal/core/services/labels_test.go
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
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/test/helpers"
	"github.com/alsaqri/phoneshop/test/mocks"
)

const testHeader = "الصقري للإتصالات"

type labelMocks struct {
	renderer    *mocks.MockLabelRenderer
	phones      *mocks.MockPhoneRepository
	accessories *mocks.MockAccessoryRepository
	storage     *mocks.MockBlobStorage
}

func newLabelService(t *testing.T) (*services.LabelService, labelMocks) {
	ctrl := gomock.NewController(t)
	m := labelMocks{
		renderer:    mocks.NewMockLabelRenderer(ctrl),
		phones:      mocks.NewMockPhoneRepository(ctrl),
		accessories: mocks.NewMockAccessoryRepository(ctrl),
		storage:     mocks.NewMockBlobStorage(ctrl),
	}
	svc := services.NewLabelService(m.renderer, m.phones, m.accessories, m.storage,
		services.LabelConfig{Header: testHeader, Currency: "SAR"}, helpers.TestLogger())
	return svc, m
}

func renderEcho(ctx context.Context, req domain.LabelRequest, format domain.LabelFormat) (*domain.LabelArtifact, error) {
	return &domain.LabelArtifact{
		Subject:    req.Subject,
		Identifier: req.Identifier,
		Format:     format,
		Data:       []byte("label"),
	}, nil
}

func TestLabelService_PhoneLabel(t *testing.T) {
	tests := []struct {
		name           string
		phone          *domain.Phone
		expectedFields []domain.LabelField
	}{
		{
			name: "new_phone_prints_full_battery",
			phone: helpers.CreateTestPhone(func(p *domain.Phone) {
				p.PhoneNumber = "000042"
				p.BatteryHealth = 0
			}),
			expectedFields: []domain.LabelField{
				{Label: "الذاكرة", Value: "256GB"},
				{Label: "نسبة البطارية", Value: "100"},
				{Label: "رقم الجهاز", Value: "000042"},
			},
		},
		{
			name: "used_phone_prints_measured_battery",
			phone: helpers.CreateTestPhone(func(p *domain.Phone) {
				p.PhoneNumber = "000043"
				p.Condition = domain.ConditionUsed
				p.BatteryHealth = 81
				p.Memory = "128GB"
			}),
			expectedFields: []domain.LabelField{
				{Label: "الذاكرة", Value: "128GB"},
				{Label: "نسبة البطارية", Value: "81"},
				{Label: "رقم الجهاز", Value: "000043"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newLabelService(t)

			m.phones.EXPECT().FindByNumber(gomock.Any(), tt.phone.PhoneNumber).Return(tt.phone, nil)
			m.renderer.EXPECT().
				Render(gomock.Any(), gomock.Any(), domain.LabelFormatPNG).
				DoAndReturn(func(ctx context.Context, req domain.LabelRequest, format domain.LabelFormat) (*domain.LabelArtifact, error) {
					assert.Equal(t, domain.LabelSubjectPhone, req.Subject)
					assert.Equal(t, tt.phone.PhoneNumber, req.Identifier)
					assert.Equal(t, testHeader, req.Header)
					assert.Equal(t, tt.expectedFields, req.Fields)
					return renderEcho(ctx, req, format)
				})

			artifact, err := svc.PhoneLabel(context.Background(), tt.phone.PhoneNumber, domain.LabelOptions{Format: domain.LabelFormatPNG})

			require.NoError(t, err)
			assert.Equal(t, "labels/phone/"+tt.phone.PhoneNumber+".png", artifact.StorageKey())
		})
	}
}

func TestLabelService_PhoneLabel_SizeOverride(t *testing.T) {
	svc, m := newLabelService(t)
	phone := helpers.CreateTestPhone(func(p *domain.Phone) { p.PhoneNumber = "000044" })
	size := &domain.LabelSize{WidthMM: 60, HeightMM: 30, DPI: 96}

	m.phones.EXPECT().FindByNumber(gomock.Any(), "000044").Return(phone, nil)
	m.renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), domain.LabelFormatPDF).
		DoAndReturn(func(ctx context.Context, req domain.LabelRequest, format domain.LabelFormat) (*domain.LabelArtifact, error) {
			assert.Equal(t, size, req.Size)
			return renderEcho(ctx, req, format)
		})

	_, err := svc.PhoneLabel(context.Background(), "000044", domain.LabelOptions{Format: domain.LabelFormatPDF, Size: size})
	require.NoError(t, err)
}

func TestLabelService_PhoneLabel_Errors(t *testing.T) {
	svc, m := newLabelService(t)

	_, err := svc.PhoneLabel(context.Background(), "bogus", domain.LabelOptions{Format: domain.LabelFormatPNG})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	m.phones.EXPECT().FindByNumber(gomock.Any(), "000009").Return(nil, domain.ErrNotFound)
	_, err = svc.PhoneLabel(context.Background(), "000009", domain.LabelOptions{Format: domain.LabelFormatPNG})
	require.ErrorIs(t, err, domain.ErrNotFound)

	phone := helpers.CreateTestPhone(func(p *domain.Phone) { p.PhoneNumber = "000010" })
	m.phones.EXPECT().FindByNumber(gomock.Any(), "000010").Return(phone, nil)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrRenderFailure)
	_, err = svc.PhoneLabel(context.Background(), "000010", domain.LabelOptions{Format: domain.LabelFormatPDF})
	require.ErrorIs(t, err, domain.ErrRenderFailure)
}

func TestLabelService_AccessoryLabel(t *testing.T) {
	svc, m := newLabelService(t)

	accessory := helpers.CreateTestAccessory(func(a *domain.Accessory) {
		a.Barcode = "ACC1700000000123"
		a.SellingPrice = decimal.RequireFromString("79")
	})
	m.accessories.EXPECT().FindByBarcode(gomock.Any(), "ACC1700000000123").Return(accessory, nil)
	m.renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), domain.LabelFormatPDF).
		DoAndReturn(func(ctx context.Context, req domain.LabelRequest, format domain.LabelFormat) (*domain.LabelArtifact, error) {
			assert.Equal(t, []domain.LabelField{
				{Label: "الفئة", Value: "chargers"},
				{Label: "السعر", Value: "90.85 SAR"},
				{Label: "الباركود", Value: "ACC1700000000123"},
			}, req.Fields)
			return renderEcho(ctx, req, format)
		})

	artifact, err := svc.AccessoryLabel(context.Background(), "ACC1700000000123", domain.LabelOptions{Format: domain.LabelFormatPDF})

	require.NoError(t, err)
	assert.Equal(t, "accessory_ACC1700000000123.pdf", artifact.Filename())
}

func TestLabelService_Store(t *testing.T) {
	svc, m := newLabelService(t)
	artifact := &domain.LabelArtifact{
		Subject:    domain.LabelSubjectPhone,
		Identifier: "000001",
		Format:     domain.LabelFormatPDF,
		Data:       []byte("%PDF"),
	}

	m.storage.EXPECT().Upload(gomock.Any(), "labels/phone/000001.pdf", []byte("%PDF"), "application/pdf").Return(nil)
	key, err := svc.Store(context.Background(), artifact)
	require.NoError(t, err)
	assert.Equal(t, "labels/phone/000001.pdf", key)

	m.storage.EXPECT().GetPresignedURL(gomock.Any(), key).Return("https://files/labels/phone/000001.pdf", nil)
	url, err := svc.URL(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "https://files/labels/phone/000001.pdf", url)

	m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("access denied"))
	_, err = svc.Store(context.Background(), artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store label")
}

func TestLabelService_StoreWithoutStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewLabelService(mocks.NewMockLabelRenderer(ctrl), nil, nil, nil,
		services.LabelConfig{Header: testHeader}, helpers.TestLogger())

	_, err := svc.Store(context.Background(), &domain.LabelArtifact{Subject: domain.LabelSubjectPhone, Identifier: "000001", Format: domain.LabelFormatPNG})
	require.Error(t, err)
}
