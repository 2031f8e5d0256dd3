package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alsaqri/phoneshop/internal/handlers"
	"github.com/alsaqri/phoneshop/test/helpers"
	"github.com/alsaqri/phoneshop/test/mocks"
)

type serverMocks struct {
	pricing     *mocks.MockPricingService
	ids         *mocks.MockIdentifierService
	phones      *mocks.MockPhoneService
	accessories *mocks.MockAccessoryService
	sales       *mocks.MockSaleService
	labels      *mocks.MockLabelService
	reference   *mocks.MockReferenceService
	reports     *mocks.MockReportService
	queue       *mocks.MockTaskQueue
}

// newTestServer mounts every API handler on a mux backed by service mocks.
func newTestServer(t *testing.T) (http.Handler, serverMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serverMocks{
		pricing:     mocks.NewMockPricingService(ctrl),
		ids:         mocks.NewMockIdentifierService(ctrl),
		phones:      mocks.NewMockPhoneService(ctrl),
		accessories: mocks.NewMockAccessoryService(ctrl),
		sales:       mocks.NewMockSaleService(ctrl),
		labels:      mocks.NewMockLabelService(ctrl),
		reference:   mocks.NewMockReferenceService(ctrl),
		reports:     mocks.NewMockReportService(ctrl),
		queue:       mocks.NewMockTaskQueue(ctrl),
	}

	logger := helpers.TestLogger()
	routes := &handlers.Routes{
		Pricing:     handlers.NewPricingHandler(m.pricing, m.ids, logger),
		Phones:      handlers.NewPhoneHandler(m.phones, m.labels, logger),
		Accessories: handlers.NewAccessoryHandler(m.accessories, m.labels, logger),
		Sales:       handlers.NewSaleHandler(m.sales, logger),
		Reference:   handlers.NewReferenceHandler(m.reference, logger),
		Reports:     handlers.NewReportHandler(m.reports, m.queue, logger),
	}

	mux := http.NewServeMux()
	routes.Register(mux)
	return mux, m
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, body []byte) handlers.ErrorResponse {
	t.Helper()

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}
