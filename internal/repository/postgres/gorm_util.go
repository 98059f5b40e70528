package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

// translateError maps low-level Postgres failures onto the domain error
// taxonomy. Serialization failures and deadlocks become retryable
// transaction conflicts; a unique violation on the report period index is
// the backstop for concurrent duplicate ingestions that raced past the
// in-transaction existence check.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return domain.ErrTransactionConflict
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "idx_report_tenant_platform_period") {
				return domain.ErrDuplicateReportPeriod
			}
		}
	}

	return err
}
