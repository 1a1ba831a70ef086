package repositories

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE for a reference to a column the relation does not have.
const pgUndefinedColumn = "42703"

var ErrMissingColumn = errors.New("ledger store is missing a column")

// MissingColumnError is returned by writes the store rejected because a
// column of the row does not exist on its side.
type MissingColumnError struct {
	Column string
	Err    error
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q is not present in the ledger store: %v", e.Column, e.Err)
}

func (e *MissingColumnError) Unwrap() error {
	return e.Err
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

var missingColumnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`column "([A-Za-z0-9_]+)" of relation "[^"]+" does not exist`),
	regexp.MustCompile(`has no column named ([A-Za-z0-9_]+)`),
	regexp.MustCompile(`[Cc]ould not find the '([A-Za-z0-9_]+)' column`),
	regexp.MustCompile(`[Uu]nknown column '([A-Za-z0-9_]+)'`),
}

var pgColumnPattern = regexp.MustCompile(`column "([A-Za-z0-9_]+)"`)

// MissingColumn reports whether err is a store rejection of an unknown
// column and, if so, which one.
func MissingColumn(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var mce *MissingColumnError
	if errors.As(err, &mce) {
		return mce.Column, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUndefinedColumn {
			return "", false
		}
		if pgErr.ColumnName != "" {
			return pgErr.ColumnName, true
		}
		if m := pgColumnPattern.FindStringSubmatch(pgErr.Message); m != nil {
			return m[1], true
		}
		return "", false
	}

	msg := err.Error()
	for _, pattern := range missingColumnPatterns {
		if m := pattern.FindStringSubmatch(msg); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// classifyWriteError wraps err as a MissingColumnError when it is one.
func classifyWriteError(err error) error {
	if column, ok := MissingColumn(err); ok {
		return &MissingColumnError{Column: column, Err: err}
	}
	return err
}
