// internal/handlers/routes.go
package handlers

import (
	"net/http"
	"strings"
)

const apiV1 = "/api/v1"

// Routes groups the handlers mounted on the API mux. Files, when set,
// serves locally stored labels and exports.
type Routes struct {
	Health      *HealthHandler
	Pricing     *PricingHandler
	Phones      *PhoneHandler
	Accessories *AccessoryHandler
	Sales       *SaleHandler
	Reference   *ReferenceHandler
	Reports     *ReportHandler

	Files     http.Handler
	FilesPath string
}

// Register mounts every route on mux.
func (rt *Routes) Register(mux *http.ServeMux) {
	if rt.Health != nil {
		mux.HandleFunc("GET /health", rt.Health.Health)
	}

	mux.HandleFunc("GET "+apiV1+"/pricing/vat", rt.Pricing.VAT)
	mux.HandleFunc("GET "+apiV1+"/identifiers/phone-number/next", rt.Pricing.NextPhoneNumber)
	mux.HandleFunc("POST "+apiV1+"/identifiers/accessory-barcode", rt.Pricing.AccessoryBarcode)

	mux.HandleFunc("POST "+apiV1+"/phones", rt.Phones.CreatePhone)
	mux.HandleFunc("GET "+apiV1+"/phones", rt.Phones.ListPhones)
	mux.HandleFunc("GET "+apiV1+"/phones/{number}", rt.Phones.GetPhone)
	mux.HandleFunc("DELETE "+apiV1+"/phones/{number}", rt.Phones.DeletePhone)
	mux.HandleFunc("GET "+apiV1+"/phones/{number}/label", rt.Phones.PhoneLabel)

	mux.HandleFunc("POST "+apiV1+"/accessories", rt.Accessories.CreateAccessory)
	mux.HandleFunc("GET "+apiV1+"/accessories", rt.Accessories.ListAccessories)
	mux.HandleFunc("GET "+apiV1+"/accessories/{barcode}", rt.Accessories.GetAccessory)
	mux.HandleFunc("PATCH "+apiV1+"/accessories/{barcode}/quantity", rt.Accessories.AdjustQuantity)
	mux.HandleFunc("GET "+apiV1+"/accessories/{barcode}/label", rt.Accessories.AccessoryLabel)

	mux.HandleFunc("POST "+apiV1+"/sales", rt.Sales.CreateSale)
	mux.HandleFunc("GET "+apiV1+"/sales", rt.Sales.ListSales)

	mux.HandleFunc("GET "+apiV1+"/reference/categories", rt.Reference.Categories)
	mux.HandleFunc("GET "+apiV1+"/reference/phone-types", rt.Reference.PhoneTypes)
	mux.HandleFunc("POST "+apiV1+"/reference/import", rt.Reference.Import)

	mux.HandleFunc("GET "+apiV1+"/reports/dashboard", rt.Reports.Dashboard)
	mux.HandleFunc("GET "+apiV1+"/reports/inventory-summary", rt.Reports.InventorySummary)
	mux.HandleFunc("POST "+apiV1+"/reports/export", rt.Reports.Export)

	if rt.Files != nil && rt.FilesPath != "" {
		prefix := "/" + strings.Trim(rt.FilesPath, "/") + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, rt.Files))
	}
}
