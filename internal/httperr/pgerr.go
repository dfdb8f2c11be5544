package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE class 23 (integrity constraint violation).
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Foreign keys are pre-validated in the handlers, so these only fire when a
// referenced row disappears between the check and the insert.

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
