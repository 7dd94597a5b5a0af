package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. *pgxpool.Pool and pgxmock pools satisfy it.
type Beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager runs callbacks in a transaction carried by the context; repos
// pick it up through QuerierFromCtx.
type TxManager struct {
	db   Beginner
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager whose transactions run at the given
// isolation level. An empty level means the server default (Read Committed).
func NewTxManager(db Beginner, iso pgx.TxIsoLevel) *TxManager {
	return &TxManager{db: db, opts: pgx.TxOptions{IsoLevel: iso}}
}

// RunInTx executes fn within a database transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// A call made while ctx already carries a transaction joins it; the outer
// call decides commit or rollback.
// Begin and commit failures go through MapError, so a serialization failure
// raised at COMMIT surfaces as domain.ErrQueryFailed. There is no retry.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		return MapError(err, "begin", "transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err, "commit", "transaction")
	}

	return nil
}
