package admin

import (
	"errors"
	"slices"
	"sync"

	"github.com/dmitrymomot/honohub/pkg/configerr"
)

// DefaultTitle is the admin document title when none is configured.
const DefaultTitle = "Honohub"

// Meta carries admin-wide settings consumed by the artifact generator.
type Meta struct {
	Title string `json:"title"`
}

// Registry maps admin page keys to component targets.
// It is safe for concurrent use; writes are rejected once frozen.
type Registry struct {
	pages  map[string]Target
	meta   Meta
	errs   []error
	mu     sync.RWMutex
	frozen bool
}

// NewRegistry creates an empty registry.
func NewRegistry(meta Meta) *Registry {
	return &Registry{
		pages: make(map[string]Target),
		meta:  meta,
	}
}

// Register adds a page. Duplicate keys are rejected, never overwritten, and
// remembered so composition can report them even if the caller ignores the
// returned error.
func (r *Registry) Register(key string, t Target) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}

	var err error
	switch {
	case key == "":
		err = configerr.New(ConstraintEmptyKey, "")
	case t == nil || !valid(t):
		err = configerr.New(ConstraintInvalidTarget, key)
	default:
		if _, dup := r.pages[key]; dup {
			err = configerr.New(ConstraintDuplicateKey, key)
		}
	}
	if err != nil {
		r.errs = append(r.errs, err)
		return err
	}

	if nt, ok := t.(*NamedTarget); ok {
		t = *nt
	}
	r.pages[key] = t
	return nil
}

// SetMeta replaces the admin metadata. Ignored once frozen.
func (r *Registry) SetMeta(m Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.frozen {
		r.meta = m
	}
}

// Meta returns the admin metadata.
func (r *Registry) Meta() Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.meta
}

// Title returns the configured title or DefaultTitle.
func (r *Registry) Title() string {
	if t := r.Meta().Title; t != "" {
		return t
	}
	return DefaultTitle
}

// Lookup returns the target registered for key.
func (r *Registry) Lookup(key string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.pages[key]
	return t, ok
}

// Keys returns all page keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.pages))
	for k := range r.pages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Err joins every rejected registration, or returns nil.
func (r *Registry) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return errors.Join(r.errs...)
}
