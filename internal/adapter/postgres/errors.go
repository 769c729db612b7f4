package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// PostgreSQL error codes mapped onto domain errors.
const (
	codeNotNullViolation     = "23502"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// MapError wraps err with the table and key it concerns and translates
// driver errors into domain sentinels. Context errors are wrapped unchanged.
func MapError(err error, table, key string) error {
	if err == nil {
		return nil
	}

	mapped := err
	if errors.Is(err, pgx.ErrNoRows) {
		mapped = domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeNotNullViolation, codeCheckViolation:
			mapped = domain.ErrValidation
		case codeSerializationFailure, codeDeadlockDetected:
			mapped = domain.ErrBusy
		}
	}

	return fmt.Errorf("%s %s: %w", table, key, mapped)
}
