package repository

import (
	"errors"
	"fmt"

	"finadmin/internal/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translatePgError maps Postgres constraint violations onto the domain
// error taxonomy so services never inspect driver errors themselves.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrIntegrityConflict, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName)
		}
	}
	return err
}
