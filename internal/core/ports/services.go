// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

// PricingService exposes VAT arithmetic to the transport layer.
type PricingService interface {
	VAT() domain.VAT
	Breakdown(ctx context.Context, rawAmount string, inclusive bool) (*domain.VATBreakdown, error)
}

// IdentifierService allocates phone numbers, barcodes and invoice numbers.
type IdentifierService interface {
	NextPhoneNumber(ctx context.Context) (string, error)
	PhoneNumberAfter(ctx context.Context, current string, found bool) (string, error)
	AccessoryBarcode(ctx context.Context, supplied string) (string, error)
	InvoiceNumber(ctx context.Context) (string, error)
	CheckSerial(ctx context.Context, serial string) error
}

// PhoneService handles phone stock.
type PhoneService interface {
	Create(ctx context.Context, phone *domain.Phone) error
	Get(ctx context.Context, number string) (*domain.Phone, error)
	List(ctx context.Context, params ListParams) (*ListResult[*domain.Phone], error)
	Delete(ctx context.Context, number string) error
}

// AccessoryService handles accessory stock.
type AccessoryService interface {
	Create(ctx context.Context, accessory *domain.Accessory, suppliedBarcode string) error
	Get(ctx context.Context, barcode string) (*domain.Accessory, error)
	List(ctx context.Context, params ListParams) (*ListResult[*domain.Accessory], error)
	AdjustQuantity(ctx context.Context, barcode string, delta int) (*domain.Accessory, error)
}

// SaleService records point-of-sale transactions.
type SaleService interface {
	Create(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context, params ListParams) (*ListResult[*domain.Sale], error)
}

// LabelService renders and stores stickers.
type LabelService interface {
	PhoneLabel(ctx context.Context, number string, opts domain.LabelOptions) (*domain.LabelArtifact, error)
	AccessoryLabel(ctx context.Context, barcode string, opts domain.LabelOptions) (*domain.LabelArtifact, error)
	Store(ctx context.Context, artifact *domain.LabelArtifact) (key string, err error)
	URL(ctx context.Context, key string) (string, error)
}

// ReferenceService serves cached lookup lists.
type ReferenceService interface {
	Categories(ctx context.Context) ([]domain.AccessoryCategory, error)
	PhoneTypes(ctx context.Context, brand string) ([]domain.PhoneType, error)
	ImportWorkbook(ctx context.Context, data []byte) (*domain.ImportResult, error)
}

// ReportService builds dashboard numbers and exports.
type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	InventorySummary(ctx context.Context) (*domain.InventorySummary, error)
	ExportInventory(ctx context.Context) (key string, err error)
}

// LabelRenderer turns a label request into an image or a one-page document.
type LabelRenderer interface {
	Render(ctx context.Context, req domain.LabelRequest, format domain.LabelFormat) (*domain.LabelArtifact, error)
}

// BlobStorage keeps rendered labels and exports.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	GetPresignedURL(ctx context.Context, key string) (string, error)
	ListOlderThan(ctx context.Context, prefix string, age time.Duration) ([]string, error)
}

// TaskQueue schedules background work.
type TaskQueue interface {
	EnqueueLabelRender(ctx context.Context, subject domain.LabelSubject, identifier string) error
	EnqueueInventoryExport(ctx context.Context) (taskID string, err error)
}
