// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"
	"strings"

	"chesnokuz/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err comes from a unique-constraint
// violation. TranslateError maps driver errors to gorm.ErrDuplicatedKey; the
// pgconn and string checks cover paths that bypass translation (raw Exec).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// translate maps store errors into application errors for the given resource.
func translate(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource)
	case isUniqueViolation(err):
		return models.NewConflictError(resource, err)
	default:
		return models.NewInternalError(err)
	}
}
