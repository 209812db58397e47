package internal

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/configerr"
	"github.com/dmitrymomot/honohub/pkg/store"
)

// Configuration constraints checked by Sanitize and Compose.
const (
	ConstraintMissingDB     = "db is required"
	ConstraintNilPlugin     = "plugin is nil"
	ConstraintUnnamedPlugin = "plugin name is required"
	ConstraintMissingConfig = "config is required"
)

// RawConfig is the hub configuration as written by its author.
type RawConfig struct {
	// DB is the document store bound to collections. Required.
	DB store.Store
	// Collections are partial collection declarations; defaults are derived.
	Collections []collection.Collection
	// Plugins are applied in order during composition.
	Plugins []Plugin
}

// Config is the sanitized hub configuration. It is shared read-only by
// every request handler once composition has finished.
type Config struct {
	DB          store.Store
	index       map[string]int
	Collections []collection.Collection
	Plugins     []Plugin
}

// Sanitize resolves defaults and validates raw. Every failure is a
// *ConfigurationError naming the violated constraint.
func Sanitize(raw RawConfig) (*Config, error) {
	if raw.DB == nil {
		return nil, configerr.New(ConstraintMissingDB, "")
	}

	for i, p := range raw.Plugins {
		if p == nil {
			return nil, configerr.New(ConstraintNilPlugin, strconv.Itoa(i))
		}
		if p.Name() == "" {
			return nil, configerr.New(ConstraintUnnamedPlugin, strconv.Itoa(i))
		}
	}

	collections, err := collection.Sanitize(raw.Collections)
	if err != nil {
		return nil, fmt.Errorf("sanitize collections: %w", err)
	}

	index := make(map[string]int, len(collections))
	for i, c := range collections {
		index[c.Slug] = i
	}

	plugins := make([]Plugin, len(raw.Plugins))
	copy(plugins, raw.Plugins)

	return &Config{
		DB:          raw.DB,
		Collections: collections,
		Plugins:     plugins,
		index:       index,
	}, nil
}

// Collection returns the collection with the given slug.
func (c *Config) Collection(slug string) (collection.Collection, bool) {
	i, ok := c.index[slug]
	if !ok {
		return collection.Collection{}, false
	}
	return c.Collections[i], true
}
