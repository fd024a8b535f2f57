package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes the API classifies.
const (
	codeStringTooLong       = "22001"
	codeNumericOutOfRange   = "22003"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// Translate classifies a driver error for the API. entity names the record
// being read or written, e.g. "customer 3".
func Translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("%s not found", entity)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return apperr.Wrap(err, apperr.KindConstraintViolation,
			"%s conflicts with an existing record (%s)", entity, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		if strings.Contains(pgErr.Detail, "still referenced") {
			return apperr.Wrap(err, apperr.KindConstraintViolation,
				"%s is still referenced by other records", entity)
		}
		return apperr.Wrap(err, apperr.KindConstraintViolation,
			"%s references a record that does not exist", entity)
	case codeNotNullViolation:
		return apperr.Wrap(err, apperr.KindConstraintViolation,
			"%s is missing required field %s", entity, pgErr.ColumnName)
	case codeCheckViolation:
		return apperr.Wrap(err, apperr.KindConstraintViolation,
			"%s violates constraint %s", entity, pgErr.ConstraintName)
	case codeStringTooLong:
		return apperr.Wrap(err, apperr.KindValidation, "%s has a value that is too long", entity)
	case codeNumericOutOfRange:
		return apperr.Wrap(err, apperr.KindValidation, "%s has a number out of range", entity)
	}
	return err
}
