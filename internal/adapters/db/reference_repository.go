// internal/adapters/db/reference_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// referenceRepository implements ports.ReferenceRepository
type referenceRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReferenceRepository creates a repository for categories and phone types.
func NewReferenceRepository(db *Database, logger *slog.Logger) ports.ReferenceRepository {
	return &referenceRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "reference")),
	}
}

func (r *referenceRepository) ListCategories(ctx context.Context) ([]domain.AccessoryCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, arabic_name FROM accessory_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.AccessoryCategory, 0)
	for rows.Next() {
		var c domain.AccessoryCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.ArabicName); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *referenceRepository) ListPhoneTypes(ctx context.Context, brand string) ([]domain.PhoneType, error) {
	qb := psql.Select("id", "brand", "model").From("phone_types").OrderBy("brand", "model")
	if brand != "" {
		qb = qb.Where(squirrel.Eq{"brand": brand})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query phone types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.PhoneType, 0)
	for rows.Next() {
		var t domain.PhoneType
		if err := rows.Scan(&t.ID, &t.Brand, &t.Model); err != nil {
			return nil, fmt.Errorf("failed to scan phone type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phone types: %w", err)
	}
	return types, nil
}

// UpsertCategories inserts categories and refreshes Arabic names of existing ones.
func (r *referenceRepository) UpsertCategories(ctx context.Context, categories []domain.AccessoryCategory) (int, error) {
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(`
			INSERT INTO accessory_categories (name, arabic_name) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET arabic_name = EXCLUDED.arabic_name`,
			c.Name, c.ArabicName)
	}
	return r.sendBatch(ctx, batch, "categories")
}

// UpsertPhoneTypes inserts brand/model pairs that are not known yet.
func (r *referenceRepository) UpsertPhoneTypes(ctx context.Context, types []domain.PhoneType) (int, error) {
	batch := &pgx.Batch{}
	for _, t := range types {
		batch.Queue(`
			INSERT INTO phone_types (brand, model) VALUES ($1, $2)
			ON CONFLICT (brand, model) DO NOTHING`,
			t.Brand, t.Model)
	}
	return r.sendBatch(ctx, batch, "phone_types")
}

func (r *referenceRepository) sendBatch(ctx context.Context, batch *pgx.Batch, what string) (int, error) {
	if batch.Len() == 0 {
		return 0, nil
	}

	affected := 0
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := 0; i < batch.Len(); i++ {
			tag, err := br.Exec()
			if err != nil {
				return fmt.Errorf("failed to upsert %s row %d: %w", what, i, err)
			}
			affected += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.InfoContext(ctx, "reference data upserted",
		slog.String("table", what),
		slog.Int("rows", affected))
	return affected, nil
}
