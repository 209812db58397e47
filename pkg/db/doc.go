// Package db connects the hub to PostgreSQL.
//
// [Connect] opens a pgx pool with retries, [Migrate] creates the documents
// table used by store.Postgres through embedded goose migrations, and
// [Healthcheck] and [Shutdown] plug the pool into the app lifecycle:
//
//	var cfg db.Config
//	if err := env.Parse(&cfg); err != nil {
//	    return err
//	}
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := db.Migrate(ctx, pool, cfg.MigrationsTable, log); err != nil {
//	    return err
//	}
//
// [WithTx] runs a function inside a transaction, rolling back on error or
// panic. [Snapshot] gives a read-only view for queries that must agree.
package db
