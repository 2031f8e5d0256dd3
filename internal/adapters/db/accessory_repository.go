// internal/adapters/db/accessory_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

const accessoryBarcodeConstraint = "accessories_barcode_key"

var accessoryColumns = []string{
	"id", "barcode", "name", "category", "description",
	"purchase_price", "selling_price", "purchase_price_with_vat", "selling_price_with_vat",
	"quantity", "label_key", "created_at", "updated_at",
}

var accessorySortColumns = map[string]string{
	"name":     "name",
	"category": "category",
	"price":    "selling_price",
	"quantity": "quantity",
	"created":  "created_at",
}

// accessoryRepository implements ports.AccessoryRepository
type accessoryRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewAccessoryRepository creates a new accessory repository
func NewAccessoryRepository(db *Database, logger *slog.Logger) ports.AccessoryRepository {
	return &accessoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "accessories")),
	}
}

// Save inserts a new accessory. The barcode unique index rejects a duplicate
// that slipped past the allocator's existence check.
func (r *accessoryRepository) Save(ctx context.Context, a *domain.Accessory) error {
	query := `
		INSERT INTO accessories (
			id, barcode, name, category, description,
			purchase_price, selling_price, purchase_price_with_vat, selling_price_with_vat,
			quantity, label_key, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		a.ID, a.Barcode, a.Name, a.Category, a.Description,
		a.PurchasePrice, a.SellingPrice, a.PurchasePriceWithVAT, a.SellingPriceWithVAT,
		a.Quantity, a.LabelKey, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, accessoryBarcodeConstraint) {
			return fmt.Errorf("%w: barcode %s", domain.ErrDuplicateIdentifier, a.Barcode)
		}
		return fmt.Errorf("failed to save accessory: %w", err)
	}

	r.logger.DebugContext(ctx, "accessory saved", slog.String("barcode", a.Barcode))
	return nil
}

// BarcodeExists checks whether barcode is already assigned.
func (r *accessoryRepository) BarcodeExists(ctx context.Context, barcode string) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT 1 FROM accessories WHERE barcode = $1`, barcode)
	if err != nil {
		return false, fmt.Errorf("failed to check barcode: %w", err)
	}
	return found, nil
}

// FindByBarcode retrieves an accessory by barcode
func (r *accessoryRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Accessory, error) {
	query, args, err := psql.Select(accessoryColumns...).
		From("accessories").
		Where(squirrel.Eq{"barcode": barcode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	a, err := scanAccessory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: accessory %s", domain.ErrNotFound, barcode)
		}
		return nil, fmt.Errorf("failed to find accessory: %w", err)
	}
	return a, nil
}

// List retrieves accessories with filtering and pagination
func (r *accessoryRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.Accessory, int64, error) {
	params.Normalize()

	filter := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		qb = qb.From("accessories")
		if params.Search != "" {
			like := likePattern(params.Search)
			qb = qb.Where(squirrel.Or{
				squirrel.ILike{"barcode": like},
				squirrel.ILike{"name": like},
				squirrel.ILike{"description": like},
			})
		}
		if params.Category != "" {
			qb = qb.Where(squirrel.Eq{"category": params.Category})
		}
		return qb
	}

	total, err := count(ctx, r.db, filter(psql.Select("COUNT(*)")))
	if err != nil {
		return nil, 0, err
	}

	qb := paginate(filter(psql.Select(accessoryColumns...)), params, orderBy(params, accessorySortColumns, "created_at"))
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query accessories: %w", err)
	}

	items, err := collect(rows, func(rows pgx.Rows) (*domain.Accessory, error) {
		return scanAccessory(rows)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan accessories: %w", err)
	}

	return items, total, nil
}

// AdjustQuantity adds delta to the stock count, refusing to go below zero.
func (r *accessoryRepository) AdjustQuantity(ctx context.Context, barcode string, delta int) (*domain.Accessory, error) {
	query := `
		UPDATE accessories
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE barcode = $1 AND quantity + $2 >= 0
		RETURNING ` + strings.Join(accessoryColumns, ", ")

	a, err := scanAccessory(r.db.QueryRow(ctx, query, barcode, delta))
	if err == nil {
		r.logger.InfoContext(ctx, "accessory quantity adjusted",
			slog.String("barcode", barcode),
			slog.Int("delta", delta),
			slog.Int("quantity", a.Quantity))
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to adjust quantity: %w", err)
	}

	found, err := r.BarcodeExists(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: accessory %s", domain.ErrNotFound, barcode)
	}
	return nil, fmt.Errorf("%w: accessory %s cannot drop by %d", domain.ErrInsufficientStock, barcode, -delta)
}

// SetLabelKey records where the rendered label of an accessory is stored.
func (r *accessoryRepository) SetLabelKey(ctx context.Context, barcode, key string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE accessories SET label_key = $2, updated_at = NOW() WHERE barcode = $1`,
		barcode, key)
	if err != nil {
		return fmt.Errorf("failed to set label key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: accessory %s", domain.ErrNotFound, barcode)
	}
	return nil
}

func scanAccessory(row pgx.Row) (*domain.Accessory, error) {
	a := &domain.Accessory{}
	err := row.Scan(
		&a.ID, &a.Barcode, &a.Name, &a.Category, &a.Description,
		&a.PurchasePrice, &a.SellingPrice, &a.PurchasePriceWithVAT, &a.SellingPriceWithVAT,
		&a.Quantity, &a.LabelKey, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
