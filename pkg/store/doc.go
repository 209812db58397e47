// Package store is the database binding behind collections.
//
// The hub treats a [Store] opaquely; only the CRUD plugin reads and writes
// through it. Documents are JSON objects keyed by collection slug and an
// id the store assigns.
//
// Implementations:
//
//   - [Memory] keeps documents in process, for development and tests.
//   - [Postgres] keeps them as JSONB rows (see pkg/db for the schema).
//   - [Cached] decorates any Store with a pkg/cache read-through cache.
package store
