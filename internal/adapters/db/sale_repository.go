// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

const saleInvoiceConstraint = "sales_invoice_number_key"

var saleColumns = []string{
	"id", "invoice_number", "customer_name", "customer_phone",
	"subtotal", "vat_amount", "total", "created_at",
}

var saleSortColumns = map[string]string{
	"invoice": "invoice_number",
	"total":   "total",
	"created": "created_at",
}

// stockTables maps a sale line type to the table it draws stock from.
var stockTables = map[domain.ItemType]struct {
	table, key, name string
}{
	domain.ItemTypePhone:     {table: "phones", key: "phone_number", name: "brand || ' ' || model"},
	domain.ItemTypeAccessory: {table: "accessories", key: "barcode", name: "name"},
}

// saleRepository implements ports.SaleRepository
type saleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sales")),
	}
}

// Create records the sale and takes every line out of stock atomically.
func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO sales (
				id, invoice_number, customer_name, customer_phone,
				subtotal, vat_amount, total, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			sale.ID, sale.InvoiceNumber, sale.CustomerName, sale.CustomerPhone,
			sale.Subtotal, sale.VATAmount, sale.Total, sale.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err, saleInvoiceConstraint) {
				return fmt.Errorf("%w: invoice %s", domain.ErrDuplicateIdentifier, sale.InvoiceNumber)
			}
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		for i := range sale.Items {
			item := &sale.Items[i]

			name, err := takeStock(ctx, tx, item)
			if err != nil {
				return err
			}
			if item.Description == "" {
				item.Description = name
			}

			_, err = tx.Exec(ctx, `
				INSERT INTO sale_items (
					id, sale_id, item_type, identifier, description,
					quantity, unit_price, line_total
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				item.ID, sale.ID, item.ItemType, item.Identifier, item.Description,
				item.Quantity, item.UnitPrice, item.LineTotal,
			)
			if err != nil {
				return fmt.Errorf("failed to insert sale item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "sale recorded",
		slog.String("invoice_number", sale.InvoiceNumber),
		slog.Int("items", len(sale.Items)),
		slog.String("total", sale.Total.StringFixed(2)))
	return nil
}

// takeStock decrements the stock of one sale line and returns the item name.
func takeStock(ctx context.Context, tx pgx.Tx, item *domain.SaleItem) (string, error) {
	src, ok := stockTables[item.ItemType]
	if !ok {
		return "", fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, item.ItemType)
	}

	query := fmt.Sprintf(`
		UPDATE %[1]s SET quantity = quantity - $2, updated_at = NOW()
		WHERE %[2]s = $1 AND quantity >= $2
		RETURNING %[3]s`, src.table, src.key, src.name)

	var name string
	err := tx.QueryRow(ctx, query, item.Identifier, item.Quantity).Scan(&name)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to take %s %s from stock: %w", item.ItemType, item.Identifier, err)
	}

	found, err := exists(ctx, tx, fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1`, src.table, src.key), item.Identifier)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", item.ItemType, err)
	}
	if !found {
		return "", fmt.Errorf("%w: %s %s", domain.ErrNotFound, item.ItemType, item.Identifier)
	}
	return "", fmt.Errorf("%w: %s %s", domain.ErrInsufficientStock, item.ItemType, item.Identifier)
}

// InvoiceExists checks whether an invoice number was already issued.
func (r *saleRepository) InvoiceExists(ctx context.Context, invoiceNumber string) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT 1 FROM sales WHERE invoice_number = $1`, invoiceNumber)
	if err != nil {
		return false, fmt.Errorf("failed to check invoice number: %w", err)
	}
	return found, nil
}

// List retrieves sales with their lines, newest first by default.
func (r *saleRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.Sale, int64, error) {
	params.Normalize()

	filter := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		qb = qb.From("sales")
		if params.Search != "" {
			like := likePattern(params.Search)
			qb = qb.Where(squirrel.Or{
				squirrel.ILike{"invoice_number": like},
				squirrel.ILike{"customer_name": like},
				squirrel.ILike{"customer_phone": like},
			})
		}
		return qb
	}

	total, err := count(ctx, r.db, filter(psql.Select("COUNT(*)")))
	if err != nil {
		return nil, 0, err
	}

	qb := paginate(filter(psql.Select(saleColumns...)), params, orderBy(params, saleSortColumns, "created_at"))
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sales: %w", err)
	}

	sales, err := collect(rows, func(rows pgx.Rows) (*domain.Sale, error) {
		return scanSale(rows)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan sales: %w", err)
	}

	if err := r.attachItems(ctx, sales); err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *saleRepository) attachItems(ctx context.Context, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	ids := make([]string, len(sales))
	byID := make(map[uuid.UUID]*domain.Sale, len(sales))
	for i, s := range sales {
		ids[i] = s.ID.String()
		byID[s.ID] = s
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, sale_id, item_type, identifier, description, quantity, unit_price, line_total
		FROM sale_items
		WHERE sale_id = ANY($1::uuid[])
		ORDER BY sale_id`, ids)
	if err != nil {
		return fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item   domain.SaleItem
			saleID uuid.UUID
		)
		if err := rows.Scan(&item.ID, &saleID, &item.ItemType, &item.Identifier,
			&item.Description, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return fmt.Errorf("failed to scan sale item: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Items = append(s.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating sale items: %w", err)
	}
	return nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	s := &domain.Sale{}
	err := row.Scan(
		&s.ID, &s.InvoiceNumber, &s.CustomerName, &s.CustomerPhone,
		&s.Subtotal, &s.VATAmount, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
