// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

// NextPhoneNumberFunc derives the number to allocate from the current maximum.
// found is false when no phone number exists yet.
type NextPhoneNumberFunc func(ctx context.Context, current string, found bool) (string, error)

// PhoneRepository is the persistence port for phones.
type PhoneRepository interface {
	// CreateWithNumber serializes allocation: it reads the current maximum,
	// applies next and inserts the phone in one transaction.
	CreateWithNumber(ctx context.Context, phone *domain.Phone, next NextPhoneNumberFunc) error
	MaxPhoneNumber(ctx context.Context) (current string, found bool, err error)
	FindByNumber(ctx context.Context, number string) (*domain.Phone, error)
	SerialExists(ctx context.Context, serial string) (bool, error)
	List(ctx context.Context, params ListParams) ([]*domain.Phone, int64, error)
	Delete(ctx context.Context, number string) error
	SetLabelKey(ctx context.Context, number, key string) error
}

// AccessoryRepository is the persistence port for accessories.
type AccessoryRepository interface {
	Save(ctx context.Context, accessory *domain.Accessory) error
	BarcodeExists(ctx context.Context, barcode string) (bool, error)
	FindByBarcode(ctx context.Context, barcode string) (*domain.Accessory, error)
	List(ctx context.Context, params ListParams) ([]*domain.Accessory, int64, error)
	AdjustQuantity(ctx context.Context, barcode string, delta int) (*domain.Accessory, error)
	SetLabelKey(ctx context.Context, barcode, key string) error
}

// SaleRepository is the persistence port for sales. Create decrements stock
// in the same transaction as the insert.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	InvoiceExists(ctx context.Context, invoiceNumber string) (bool, error)
	List(ctx context.Context, params ListParams) ([]*domain.Sale, int64, error)
}

// ReferenceRepository serves the category and phone type lookup lists.
type ReferenceRepository interface {
	ListCategories(ctx context.Context) ([]domain.AccessoryCategory, error)
	ListPhoneTypes(ctx context.Context, brand string) ([]domain.PhoneType, error)
	UpsertCategories(ctx context.Context, categories []domain.AccessoryCategory) (int, error)
	UpsertPhoneTypes(ctx context.Context, types []domain.PhoneType) (int, error)
}

// ReportRepository runs the aggregate queries behind the dashboard and exports.
type ReportRepository interface {
	StockUnits(ctx context.Context) (phones int64, accessories int64, err error)
	SaleCount(ctx context.Context) (int64, error)
	RecentSales(ctx context.Context, limit int) ([]domain.Sale, error)
	InventorySummary(ctx context.Context) (*domain.InventorySummary, error)
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)
}

// ListParams holds paging and filter parameters shared by list endpoints.
type ListParams struct {
	Search    string
	Brand     string
	Condition string
	Category  string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Normalize applies paging defaults and bounds.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 200 {
		p.PageSize = 200
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
}

// Offset is the row offset of the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ListResult is a page of items.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewListResult assembles a page from the items and the total count.
func NewListResult[T any](items []T, total int64, params ListParams) *ListResult[T] {
	pages := 0
	if params.PageSize > 0 {
		pages = int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	}
	if items == nil {
		items = []T{}
	}
	return &ListResult[T]{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: total,
		TotalPages: pages,
	}
}
