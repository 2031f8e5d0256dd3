package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/test/helpers"
)

func TestAccessoryHandler_CreateAccessory(t *testing.T) {
	tests := []struct {
		name            string
		body            interface{}
		setupMocks      func(m serverMocks)
		expectedStatus  int
		expectedBarcode string
	}{
		{
			name: "synthesises_barcode",
			body: map[string]interface{}{"name": "USB-C Cable", "category": "cables", "selling_price": "25", "quantity": 30},
			setupMocks: func(m serverMocks) {
				m.accessories.EXPECT().
					Create(gomock.Any(), gomock.Any(), "").
					DoAndReturn(func(ctx context.Context, a *domain.Accessory, supplied string) error {
						assert.Equal(t, 30, a.Quantity)
						a.Barcode = "ACC1700000000123"
						return nil
					})
			},
			expectedStatus:  http.StatusCreated,
			expectedBarcode: "ACC1700000000123",
		},
		{
			name: "keeps_scanned_barcode",
			body: map[string]interface{}{"barcode": "6281000000017", "name": "Case", "category": "cases"},
			setupMocks: func(m serverMocks) {
				m.accessories.EXPECT().
					Create(gomock.Any(), gomock.Any(), "6281000000017").
					DoAndReturn(func(ctx context.Context, a *domain.Accessory, supplied string) error {
						a.Barcode = supplied
						return nil
					})
			},
			expectedStatus:  http.StatusCreated,
			expectedBarcode: "6281000000017",
		},
		{
			name: "duplicate_barcode",
			body: map[string]interface{}{"barcode": "6281000000017", "name": "Case", "category": "cases"},
			setupMocks: func(m serverMocks) {
				m.accessories.EXPECT().Create(gomock.Any(), gomock.Any(), "6281000000017").Return(domain.ErrDuplicateIdentifier)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "allocation_exhausted",
			body: map[string]interface{}{"name": "Case", "category": "cases"},
			setupMocks: func(m serverMocks) {
				m.accessories.EXPECT().Create(gomock.Any(), gomock.Any(), "").Return(domain.ErrAllocationExhausted)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing_category",
			body:           map[string]interface{}{"name": "Case"},
			setupMocks:     func(m serverMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown_field",
			body:           map[string]interface{}{"name": "Case", "category": "cases", "colour": "red"},
			setupMocks:     func(m serverMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			tt.setupMocks(m)

			w := doRequest(t, srv, http.MethodPost, "/api/v1/accessories", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBarcode != "" {
				var accessory domain.Accessory
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accessory))
				assert.Equal(t, tt.expectedBarcode, accessory.Barcode)
				assert.Equal(t, "/api/v1/accessories/"+tt.expectedBarcode, w.Header().Get("Location"))
			}
		})
	}
}

func TestAccessoryHandler_GetAccessory(t *testing.T) {
	srv, m := newTestServer(t)
	accessory := helpers.CreateTestAccessory(func(a *domain.Accessory) { a.Barcode = "ACC1700000000123" })

	m.accessories.EXPECT().Get(gomock.Any(), "ACC1700000000123").Return(accessory, nil)
	w := doRequest(t, srv, http.MethodGet, "/api/v1/accessories/ACC1700000000123", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Accessory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "90.85", got.SellingPriceWithVAT.StringFixed(2))

	m.accessories.EXPECT().Get(gomock.Any(), "ACC0").Return(nil, domain.ErrNotFound)
	w = doRequest(t, srv, http.MethodGet, "/api/v1/accessories/ACC0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccessoryHandler_AdjustQuantity(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(m serverMocks)
		expectedStatus int
	}{
		{
			name: "restock",
			body: map[string]interface{}{"delta": 5},
			setupMocks: func(m serverMocks) {
				m.accessories.EXPECT().AdjustQuantity(gomock.Any(), "ACC1", 5).
					Return(helpers.CreateTestAccessory(func(a *domain.Accessory) { a.Quantity = 15 }), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "would_go_negative",
			body: map[string]interface{}{"delta": -50},
			setupMocks: func(m serverMocks) {
				m.accessories.EXPECT().AdjustQuantity(gomock.Any(), "ACC1", -50).Return(nil, domain.ErrInsufficientStock)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "zero_delta",
			body:           map[string]interface{}{"delta": 0},
			setupMocks:     func(m serverMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			tt.setupMocks(m)

			w := doRequest(t, srv, http.MethodPatch, "/api/v1/accessories/ACC1/quantity", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAccessoryHandler_AccessoryLabel(t *testing.T) {
	srv, m := newTestServer(t)

	m.labels.EXPECT().
		AccessoryLabel(gomock.Any(), "ACC1700000000123", domain.LabelOptions{Format: domain.LabelFormatPNG}).
		Return(&domain.LabelArtifact{
			Subject:    domain.LabelSubjectAccessory,
			Identifier: "ACC1700000000123",
			Format:     domain.LabelFormatPNG,
			Data:       []byte{0x89, 'P', 'N', 'G'},
		}, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/accessories/ACC1700000000123/label?format=png", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "4", w.Header().Get("Content-Length"))
}
