package infra

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this system reacts to.
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
	pgErrCodeUndefinedTable      = "42P01"
)

// ClassifyPgError maps a driver error to a repository error kind. An
// exclusion-constraint violation is how a racing booking insert loses the
// overlap race, so it classifies as CONFLICT; an undefined table means the
// deployment has not been provisioned yet.
func ClassifyPgError(err error) (RepositoryErrorKind, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey, true
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated, true
	case pgErrCodeExclusionViolation:
		return KindConflict, true
	case pgErrCodeUndefinedTable:
		return KindNotProvisioned, true
	default:
		return "", false
	}
}
