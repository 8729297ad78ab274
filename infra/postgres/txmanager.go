package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txCtxKey struct{}

// ext returns the transaction carried by ctx, or the pool outside one.
func (r *PgRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.db
}

func (r *PgRepository) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.runInTx(ctx, nil, fn)
}

func (r *PgRepository) RunInReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.runInTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// runInTx commits when fn succeeds and rolls back on error or panic. A call
// made inside a running transaction joins it.
func (r *PgRepository) runInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
