package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

func TestOrderBy(t *testing.T) {
	columns := map[string]string{"brand": "brand", "price": "selling_price"}

	tests := []struct {
		name   string
		params ports.ListParams
		want   string
	}{
		{"known column ascending", ports.ListParams{SortBy: "price", SortOrder: "asc"}, "selling_price ASC"},
		{"known column default order", ports.ListParams{SortBy: "brand"}, "brand DESC"},
		{"unknown column falls back", ports.ListParams{SortBy: "id; DROP TABLE phones", SortOrder: "asc"}, "created_at ASC"},
		{"empty", ports.ListParams{}, "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.params, columns, "created_at"))
		})
	}
}

func TestPaginate(t *testing.T) {
	params := ports.ListParams{Page: 3, PageSize: 25}
	params.Normalize()

	query, args, err := paginate(psql.Select("id").From("phones").Where("brand = ?", "Apple"), params, "brand ASC").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM phones WHERE brand = $1 ORDER BY brand ASC LIMIT 25 OFFSET 50", query)
	assert.Equal(t, []interface{}{"Apple"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "accessories_barcode_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", dup, "accessories_barcode_key", true},
		{"wrapped", fmt.Errorf("insert: %w", dup), "accessories_barcode_key", true},
		{"any constraint", dup, "", true},
		{"other constraint", dup, "phones_serial_number_key", false},
		{"other code", &pgconn.PgError{Code: "23503"}, "", false},
		{"plain error", errors.New("boom"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err, tt.constraint))
		})
	}
}

type stubRow struct {
	value bool
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.value
	return nil
}

type recordingQuerier struct {
	row   stubRow
	query string
	args  []interface{}
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	q.query = sql
	q.args = args
	return q.row
}

func TestExists(t *testing.T) {
	q := &recordingQuerier{row: stubRow{value: true}}

	found, err := exists(context.Background(), q, "SELECT 1 FROM sales WHERE invoice_number = $1", "INV-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "SELECT EXISTS(SELECT 1 FROM sales WHERE invoice_number = $1)", q.query)
	assert.Equal(t, []interface{}{"INV-1"}, q.args)

	q.row = stubRow{err: errors.New("connection reset")}
	_, err = exists(context.Background(), q, "SELECT 1 FROM sales WHERE invoice_number = $1", "INV-2")
	assert.Error(t, err)
}
