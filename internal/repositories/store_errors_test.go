package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMissingColumn(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantColumn string
		wantOK     bool
	}{
		{
			name:       "postgres undefined column",
			err:        &pgconn.PgError{Code: "42703", Message: `column "category_confidence" of relation "transactions" does not exist`},
			wantColumn: "category_confidence",
			wantOK:     true,
		},
		{
			name:       "postgres undefined column wrapped",
			err:        fmt.Errorf("failed to insert: %w", &pgconn.PgError{Code: "42703", Message: `column "category" of relation "transactions" does not exist`}),
			wantColumn: "category",
			wantOK:     true,
		},
		{
			name:   "postgres unique violation",
			err:    &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "categories_name_key"`},
			wantOK: false,
		},
		{
			name:       "sqlite",
			err:        errors.New("table transactions has no column named category_confidence"),
			wantColumn: "category_confidence",
			wantOK:     true,
		},
		{
			name:       "rest gateway schema cache",
			err:        errors.New("Could not find the 'category' column of 'transactions' in the schema cache"),
			wantColumn: "category",
			wantOK:     true,
		},
		{
			name:       "already classified",
			err:        &MissingColumnError{Column: "notes", Err: errors.New("x")},
			wantColumn: "notes",
			wantOK:     true,
		},
		{
			name:   "unrelated",
			err:    errors.New("connection reset by peer"),
			wantOK: false,
		},
		{
			name:   "nil",
			err:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, ok := MissingColumn(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestClassifyWriteError(t *testing.T) {
	plain := errors.New("disk full")
	assert.Same(t, plain, classifyWriteError(plain))

	classified := classifyWriteError(errors.New("table transactions has no column named category_confidence"))
	var mce *MissingColumnError
	assert.True(t, errors.As(classified, &mce))
	assert.True(t, errors.Is(classified, ErrMissingColumn))
	assert.Contains(t, classified.Error(), `"category_confidence"`)
}
