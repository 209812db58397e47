package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Snapshot is the transaction mode for multi-statement reads that must
// agree with each other, such as a page of documents and its total count.
var Snapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// WithTx runs fn in a transaction started with opts. The transaction is
// committed when fn returns nil and rolled back otherwise, panics included.
func WithTx(ctx context.Context, pool *pgxpool.Pool, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	if pool == nil {
		return ErrNilPool
	}
	return pgx.BeginTxFunc(ctx, pool, opts, fn)
}

// Healthcheck returns a readiness check that pings the pool.
//
//	honohub.WithReadinessCheck("db", db.Healthcheck(pool))
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if pool == nil {
			return ErrNilPool
		}
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// Shutdown returns a shutdown hook that closes the pool.
//
//	comp.App.Run(honohub.ShutdownHook(db.Shutdown(pool)))
func Shutdown(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(context.Context) error {
		if pool != nil {
			pool.Close()
		}
		return nil
	}
}
