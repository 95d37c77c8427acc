package shared

import (
	"context"

	"villabook/internal/infra/db"
	"villabook/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxRunner runs a function inside one database transaction. The pgx
// implementation retries on serialization failures; commands stay unaware of
// the retry policy.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
