//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/alsaqri/phoneshop/internal/adapters/db"
	redis_a "github.com/alsaqri/phoneshop/internal/adapters/redis_adapter"
	"github.com/alsaqri/phoneshop/internal/adapters/storage"
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/internal/handlers"
	"github.com/alsaqri/phoneshop/internal/handlers/middleware"
	"github.com/alsaqri/phoneshop/internal/pkg/label"
	"github.com/alsaqri/phoneshop/test/helpers"
)

type ShopE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *ShopE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *ShopE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *ShopE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *ShopE2ESuite) TestPhoneWorkflow() {
	// 1. Preview the first number
	resp := s.makeRequest("GET", "/identifiers/phone-number/next", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var next map[string]string
	s.decodeResponse(resp, &next)
	s.Equal("000001", next["phone_number"])

	// 2. Add a phone
	resp = s.makeRequest("POST", "/phones", map[string]interface{}{
		"brand":          "Apple",
		"model":          "iPhone 15",
		"memory":         "256GB",
		"condition":      "new",
		"serial_number":  "E2E-SN-1",
		"purchase_price": "3000.00",
		"selling_price":  "3500.00",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var phone map[string]interface{}
	s.decodeResponse(resp, &phone)
	s.Equal("000001", phone["phone_number"])
	s.assertMoney("4025.00", phone["selling_price_with_vat"])

	// 3. Same serial is rejected
	resp = s.makeRequest("POST", "/phones", map[string]interface{}{
		"brand":         "Apple",
		"model":         "iPhone 15",
		"serial_number": "E2E-SN-1",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 4. Next number moves on
	resp = s.makeRequest("GET", "/identifiers/phone-number/next", nil)
	s.decodeResponse(resp, &next)
	s.Equal("000002", next["phone_number"])

	// 5. Label as PDF
	resp = s.makeRequest("GET", "/phones/000001/label?format=pdf", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.NoError(err)
	s.True(bytes.HasPrefix(body, []byte("%PDF")))

	// 6. Delete and confirm it is gone
	resp = s.makeRequest("DELETE", "/phones/000001", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/phones/000001", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *ShopE2ESuite) TestAccessoryAndSaleWorkflow() {
	resp := s.makeRequest("POST", "/accessories", map[string]interface{}{
		"name":           "USB-C Charger 25W",
		"category":       "chargers",
		"purchase_price": "40.00",
		"selling_price":  "100.00",
		"quantity":       5,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var accessory map[string]interface{}
	s.decodeResponse(resp, &accessory)
	barcode := accessory["barcode"].(string)
	s.Regexp(regexp.MustCompile(`^ACC\d{13}$`), barcode)

	resp = s.makeRequest("POST", "/sales", map[string]interface{}{
		"customer_name": "E2E Customer",
		"items": []map[string]interface{}{
			{"item_type": "accessory", "identifier": barcode, "quantity": 2, "unit_price": "115.00"},
		},
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var sale map[string]interface{}
	s.decodeResponse(resp, &sale)
	s.Regexp(regexp.MustCompile(`^INV-\d{14}$`), sale["invoice_number"])
	s.assertMoney("200.00", sale["subtotal"])
	s.assertMoney("30.00", sale["vat_amount"])
	s.assertMoney("230.00", sale["total"])

	resp = s.makeRequest("GET", "/accessories/"+barcode, nil)
	s.decodeResponse(resp, &accessory)
	s.EqualValues(3, accessory["quantity"])

	// Selling more than is left fails
	resp = s.makeRequest("POST", "/sales", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_type": "accessory", "identifier": barcode, "quantity": 10, "unit_price": "115.00"},
		},
	})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func (s *ShopE2ESuite) TestVATCalculator() {
	resp := s.makeRequest("GET", "/pricing/vat?amount=115&inclusive=true", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var breakdown map[string]interface{}
	s.decodeResponse(resp, &breakdown)
	s.assertMoney("100.00", breakdown["net"])
	s.assertMoney("15.00", breakdown["vat"])

	resp = s.makeRequest("GET", "/pricing/vat?amount=abc", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *ShopE2ESuite) TestConcurrentPhoneNumbers() {
	const n = 10

	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			resp := s.makeRequest("POST", "/phones", map[string]interface{}{
				"brand":         "Samsung",
				"model":         "Galaxy S24",
				"serial_number": fmt.Sprintf("CONCURRENT-%03d", idx),
			})
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				return
			}

			var phone map[string]interface{}
			if err := json.NewDecoder(resp.Body).Decode(&phone); err == nil {
				numbers <- phone["phone_number"].(string)
			}
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for number := range numbers {
		s.False(seen[number], "duplicate phone number %s", number)
		seen[number] = true
	}
	s.Len(seen, n)
}

func (s *ShopE2ESuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])

	checks := health["checks"].(map[string]interface{})
	s.Contains(checks, "database")
	s.Contains(checks, "redis")
	s.Contains(checks, "phone_numbers")
}

// Helper methods

func (s *ShopE2ESuite) startTestServer() *httptest.Server {
	cfg := helpers.LoadTestConfig()
	logger := helpers.TestLogger()
	database := s.testDB.Database

	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)
	blobs, err := storage.NewLocalStorage(s.T().TempDir(), cfg.Storage.LocalBaseURL, logger)
	s.Require().NoError(err)

	opts := label.DefaultOptions()
	opts.FontCandidates = []string{"/nonexistent/font.ttf"}
	composer, err := label.NewComposer(opts, logger)
	s.Require().NoError(err)

	phoneRepo := db.NewPhoneRepository(database, cfg.Identifiers.MaxAttempts, logger)
	accessoryRepo := db.NewAccessoryRepository(database, logger)
	saleRepo := db.NewSaleRepository(database, logger)

	pricing := services.NewPricingService(helpers.TestVAT(), logger)
	ids := services.NewIdentifierService(phoneRepo, accessoryRepo, saleRepo, cache, services.IdentifierConfig{
		MaxAttempts:    cfg.Identifiers.MaxAttempts,
		ReservationTTL: cfg.Identifiers.ReservationTTL,
	}, logger)
	labels := services.NewLabelService(composer, phoneRepo, accessoryRepo, blobs, services.LabelConfig{
		Header:   cfg.Labels.CompanyName,
		Currency: cfg.Pricing.Currency,
	}, logger)

	routes := &handlers.Routes{
		Health:      handlers.NewHealthHandler(database, cache, ids, nil, cfg, logger),
		Pricing:     handlers.NewPricingHandler(pricing, ids, logger),
		Phones:      handlers.NewPhoneHandler(services.NewPhoneService(phoneRepo, ids, pricing, cache, nil, logger), labels, logger),
		Accessories: handlers.NewAccessoryHandler(services.NewAccessoryService(accessoryRepo, ids, pricing, cache, nil, logger), labels, logger),
		Sales:       handlers.NewSaleHandler(services.NewSaleService(saleRepo, ids, pricing, cache, logger), logger),
		Reference: handlers.NewReferenceHandler(
			services.NewReferenceService(db.NewReferenceRepository(database, logger), cache, time.Minute, logger), logger),
		Reports: handlers.NewReportHandler(
			services.NewReportService(db.NewReportRepository(database, logger), cache, blobs, time.Minute, logger), nil, logger),
	}

	mux := http.NewServeMux()
	routes.Register(mux)

	return httptest.NewServer(middleware.Chain(mux,
		middleware.RequestID(""),
		middleware.AccessLog(logger),
		middleware.Recover(logger),
	))
}

func (s *ShopE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *ShopE2ESuite) assertMoney(want string, got interface{}) {
	d, err := decimal.NewFromString(fmt.Sprint(got))
	s.Require().NoError(err)
	s.True(decimal.RequireFromString(want).Equal(d), "want %s, got %s", want, d)
}

func (s *ShopE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestShopE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(ShopE2ESuite))
}
