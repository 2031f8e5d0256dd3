// internal/adapters/db/phone_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// phoneNumberLock is the advisory lock key that serializes phone number allocation.
const phoneNumberLock int64 = 0x70686f6e65

const (
	phoneNumberConstraint = "phones_phone_number_key"
	phoneSerialConstraint = "phones_serial_number_key"
)

var errPhoneNumberTaken = fmt.Errorf("%w: phone number taken", domain.ErrDuplicateIdentifier)

var phoneColumns = []string{
	"id", "phone_number", "brand", "model", "color", "memory", "condition",
	"serial_number", "battery_health", "purchase_price", "selling_price",
	"purchase_price_with_vat", "selling_price_with_vat", "warranty_months",
	"customer_name", "customer_id", "buyer_name", "description", "quantity",
	"label_key", "created_at", "updated_at",
}

var phoneSortColumns = map[string]string{
	"number":  "phone_number",
	"brand":   "brand",
	"model":   "model",
	"price":   "selling_price",
	"created": "created_at",
}

// phoneRepository implements ports.PhoneRepository
type phoneRepository struct {
	db          *Database
	maxAttempts int
	logger      *slog.Logger
}

// NewPhoneRepository creates a phone repository. maxAttempts bounds the
// retries of an allocation that lost a unique-index race.
func NewPhoneRepository(db *Database, maxAttempts int, logger *slog.Logger) ports.PhoneRepository {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &phoneRepository{
		db:          db,
		maxAttempts: maxAttempts,
		logger:      logger.With(slog.String("repository", "phones")),
	}
}

// CreateWithNumber allocates the next phone number and inserts the phone in
// one transaction holding the allocation lock.
func (r *phoneRepository) CreateWithNumber(ctx context.Context, phone *domain.Phone, next ports.NextPhoneNumberFunc) error {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, phoneNumberLock); err != nil {
				return fmt.Errorf("failed to acquire allocation lock: %w", err)
			}

			current, found, err := lastPhoneNumber(ctx, tx)
			if err != nil {
				return err
			}

			number, err := next(ctx, current, found)
			if err != nil {
				return err
			}
			phone.PhoneNumber = number

			if err := insertPhone(ctx, tx, phone); err != nil {
				return err
			}
			return advanceSequence(ctx, tx, number)
		})
		if !errors.Is(err, errPhoneNumberTaken) {
			if err == nil {
				r.logger.InfoContext(ctx, "phone created",
					slog.String("phone_number", phone.PhoneNumber),
					slog.Int("attempt", attempt))
			}
			return err
		}

		r.logger.WarnContext(ctx, "phone number collision, retrying",
			slog.String("phone_number", phone.PhoneNumber),
			slog.Int("attempt", attempt))
	}

	return fmt.Errorf("%w: phone number after %d attempts", domain.ErrAllocationExhausted, r.maxAttempts)
}

func insertPhone(ctx context.Context, tx pgx.Tx, p *domain.Phone) error {
	query := `
		INSERT INTO phones (
			id, phone_number, brand, model, color, memory, condition,
			serial_number, battery_health, purchase_price, selling_price,
			purchase_price_with_vat, selling_price_with_vat, warranty_months,
			customer_name, customer_id, buyer_name, description, quantity,
			label_key, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)`

	serial := sql.NullString{String: p.SerialNumber, Valid: p.SerialNumber != ""}

	_, err := tx.Exec(ctx, query,
		p.ID, p.PhoneNumber, p.Brand, p.Model, p.Color, p.Memory, p.Condition,
		serial, p.BatteryHealth, p.PurchasePrice, p.SellingPrice,
		p.PurchasePriceWithVAT, p.SellingPriceWithVAT, p.WarrantyMonths,
		p.CustomerName, p.CustomerID, p.BuyerName, p.Description, p.Quantity,
		p.LabelKey, p.CreatedAt, p.UpdatedAt,
	)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, phoneNumberConstraint):
		return errPhoneNumberTaken
	case isUniqueViolation(err, phoneSerialConstraint):
		return fmt.Errorf("%w: serial number %s", domain.ErrDuplicateIdentifier, p.SerialNumber)
	default:
		return fmt.Errorf("failed to insert phone: %w", err)
	}
}

// MaxPhoneNumber returns the last allocated phone number. Deleted phones
// still count.
func (r *phoneRepository) MaxPhoneNumber(ctx context.Context) (string, bool, error) {
	return lastPhoneNumber(ctx, r.db)
}

// lastPhoneNumber reads the sequence row, raised to any well-formed number
// inserted without going through the allocator.
func lastPhoneNumber(ctx context.Context, q querier) (string, bool, error) {
	var current sql.NullString
	err := q.QueryRow(ctx, `
		SELECT GREATEST(
			(SELECT last_allocated FROM phone_number_sequence WHERE id = 1),
			(SELECT MAX(phone_number) FROM phones WHERE phone_number ~ '^[0-9]{6}$')
		)`).Scan(&current)
	if err != nil {
		return "", false, fmt.Errorf("failed to read phone number sequence: %w", err)
	}
	return current.String, current.Valid, nil
}

// advanceSequence records number as the last allocation. The sequence never
// moves backwards.
func advanceSequence(ctx context.Context, tx pgx.Tx, number string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO phone_number_sequence (id, last_allocated, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET last_allocated = EXCLUDED.last_allocated, updated_at = NOW()
		WHERE phone_number_sequence.last_allocated < EXCLUDED.last_allocated`, number)
	if err != nil {
		return fmt.Errorf("failed to advance phone number sequence: %w", err)
	}
	return nil
}

// FindByNumber retrieves a phone by its allocated number
func (r *phoneRepository) FindByNumber(ctx context.Context, number string) (*domain.Phone, error) {
	query, args, err := psql.Select(phoneColumns...).
		From("phones").
		Where(squirrel.Eq{"phone_number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	phone, err := scanPhone(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: phone %s", domain.ErrNotFound, number)
		}
		return nil, fmt.Errorf("failed to find phone: %w", err)
	}
	return phone, nil
}

// SerialExists checks whether a phone with serial is in stock records.
func (r *phoneRepository) SerialExists(ctx context.Context, serial string) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT 1 FROM phones WHERE serial_number = $1`, serial)
	if err != nil {
		return false, fmt.Errorf("failed to check serial number: %w", err)
	}
	return found, nil
}

// List retrieves phones with filtering and pagination
func (r *phoneRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.Phone, int64, error) {
	params.Normalize()

	filter := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		qb = qb.From("phones")
		if params.Search != "" {
			like := likePattern(params.Search)
			qb = qb.Where(squirrel.Or{
				squirrel.ILike{"phone_number": like},
				squirrel.ILike{"brand": like},
				squirrel.ILike{"model": like},
				squirrel.ILike{"serial_number": like},
			})
		}
		if params.Brand != "" {
			qb = qb.Where(squirrel.Eq{"brand": params.Brand})
		}
		if params.Condition != "" {
			qb = qb.Where(squirrel.Eq{"condition": params.Condition})
		}
		return qb
	}

	total, err := count(ctx, r.db, filter(psql.Select("COUNT(*)")))
	if err != nil {
		return nil, 0, err
	}

	qb := paginate(filter(psql.Select(phoneColumns...)), params, orderBy(params, phoneSortColumns, "created_at"))
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query phones: %w", err)
	}

	phones, err := collect(rows, func(rows pgx.Rows) (*domain.Phone, error) {
		return scanPhone(rows)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan phones: %w", err)
	}

	return phones, total, nil
}

// Delete removes a phone. The sequence row keeps its number retired.
func (r *phoneRepository) Delete(ctx context.Context, number string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM phones WHERE phone_number = $1`, number)
	if err != nil {
		return fmt.Errorf("failed to delete phone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: phone %s", domain.ErrNotFound, number)
	}

	r.logger.InfoContext(ctx, "phone deleted", slog.String("phone_number", number))
	return nil
}

// SetLabelKey records where the rendered label of a phone is stored.
func (r *phoneRepository) SetLabelKey(ctx context.Context, number, key string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE phones SET label_key = $2, updated_at = NOW() WHERE phone_number = $1`,
		number, key)
	if err != nil {
		return fmt.Errorf("failed to set label key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: phone %s", domain.ErrNotFound, number)
	}
	return nil
}

func scanPhone(row pgx.Row) (*domain.Phone, error) {
	p := &domain.Phone{}
	var serial sql.NullString

	err := row.Scan(
		&p.ID, &p.PhoneNumber, &p.Brand, &p.Model, &p.Color, &p.Memory, &p.Condition,
		&serial, &p.BatteryHealth, &p.PurchasePrice, &p.SellingPrice,
		&p.PurchasePriceWithVAT, &p.SellingPriceWithVAT, &p.WarrantyMonths,
		&p.CustomerName, &p.CustomerID, &p.BuyerName, &p.Description, &p.Quantity,
		&p.LabelKey, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.SerialNumber = serial.String
	return p, nil
}
