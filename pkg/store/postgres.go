package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/honohub/pkg/db"
)

const (
	listQuery = `SELECT id::text, data FROM documents
		WHERE collection = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`
	countQuery  = `SELECT count(*) FROM documents WHERE collection = $1`
	getQuery    = `SELECT data FROM documents WHERE collection = $1 AND id = $2`
	insertQuery = `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`
	updateQuery = `UPDATE documents SET data = $3, updated_at = now() WHERE collection = $1 AND id = $2`
	deleteQuery = `DELETE FROM documents WHERE collection = $1 AND id = $2`
)

// Postgres stores documents as JSONB rows in the table created by db.Migrate.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Store on a pool from db.Connect.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) List(ctx context.Context, collection string, opts ListOptions) ([]Document, int, error) {
	var limit *int
	if opts.Limit > 0 {
		limit = &opts.Limit
	}
	offset := max(opts.Offset, 0)

	var (
		docs  = []Document{}
		total int
	)
	err := db.WithTx(ctx, p.pool, db.Snapshot, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, countQuery, collection).Scan(&total); err != nil {
			return fmt.Errorf("count documents: %w", err)
		}

		rows, err := tx.Query(ctx, listQuery, collection, limit, offset)
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id  string
				doc Document
			)
			if err := rows.Scan(&id, &doc); err != nil {
				return fmt.Errorf("scan document: %w", err)
			}
			docs = append(docs, withID(doc, id))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	var doc Document
	err := p.pool.QueryRow(ctx, getQuery, collection, uid).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return withID(doc, id), nil
}

func (p *Postgres) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	if collection == "" {
		return nil, ErrMissingCollection
	}

	id := uuid.New()
	data := doc.withoutID()
	if _, err := p.pool.Exec(ctx, insertQuery, collection, id, data); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return withID(data, id.String()), nil
}

func (p *Postgres) Update(ctx context.Context, collection, id string, doc Document) (Document, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	data := doc.withoutID()
	tag, err := p.pool.Exec(ctx, updateQuery, collection, uid, data)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return withID(data, id), nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	uid, ok := parseID(id)
	if !ok {
		return ErrNotFound
	}

	tag, err := p.pool.Exec(ctx, deleteQuery, collection, uid)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// parseID rejects ids that cannot be a row key, so they read as missing
// instead of surfacing a cast error from Postgres.
func parseID(id string) (uuid.UUID, bool) {
	uid, err := uuid.Parse(id)
	return uid, err == nil
}

func withID(doc Document, id string) Document {
	if doc == nil {
		doc = Document{}
	}
	doc[IDField] = id
	return doc
}

var _ Store = (*Postgres)(nil)
