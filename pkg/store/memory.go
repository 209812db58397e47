package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type memoryCollection struct {
	docs  map[string]Document
	order []string
}

// Memory is a Store kept in process memory. It backs development setups
// and tests.
type Memory struct {
	collections map[string]*memoryCollection
	newID       func() string
	mu          sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]*memoryCollection),
		newID:       func() string { return uuid.NewString() },
	}
}

func (m *Memory) List(ctx context.Context, collection string, opts ListOptions) ([]Document, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return []Document{}, 0, nil
	}

	total := len(c.order)
	start := min(max(opts.Offset, 0), total)
	end := total
	if opts.Limit > 0 {
		end = min(start+opts.Limit, total)
	}

	docs := make([]Document, 0, end-start)
	for _, id := range c.order[start:end] {
		docs = append(docs, c.docs[id].Clone())
	}
	return docs, total, nil
}

func (m *Memory) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (m *Memory) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	if collection == "" {
		return nil, ErrMissingCollection
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		c = &memoryCollection{docs: make(map[string]Document)}
		m.collections[collection] = c
	}

	id := m.newID()
	stored := doc.withoutID()
	stored[IDField] = id
	c.docs[id] = stored
	c.order = append(c.order, id)
	return stored.Clone(), nil
}

func (m *Memory) Update(ctx context.Context, collection, id string, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return nil, ErrNotFound
	}

	stored := doc.withoutID()
	stored[IDField] = id
	c.docs[id] = stored
	return stored.Clone(), nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}

	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return nil
}

var _ Store = (*Memory)(nil)
