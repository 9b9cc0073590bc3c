package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

const pgForeignKeyViolation = "23503"

// ForeignKeyError reports a write that referenced a row that does not exist,
// e.g. a movie linked to an unknown genre id.
type ForeignKeyError struct {
	Table      string
	Constraint string
	Detail     string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("foreign key violation on %s (%s): %s", e.Table, e.Constraint, e.Detail)
}

// wrap prefixes err with op and maps driver errors onto the package errors.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, &ForeignKeyError{
			Table:      pgErr.TableName,
			Constraint: pgErr.ConstraintName,
			Detail:     pgErr.Detail,
		})
	}
	return fmt.Errorf("%s: %w", op, err)
}
