package admin

import (
	"net/http"

	"github.com/dmitrymomot/honohub/internal"
	hubadmin "github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/collection"
)

// PanelConfig is served at <prefix>/config and drives the panel's sidebar
// and document pages.
type PanelConfig struct {
	Title       string             `json:"title"`
	Pages       []string           `json:"pages"`
	Collections []CollectionConfig `json:"collections"`
}

// CollectionConfig describes one collection to the panel.
type CollectionConfig struct {
	Slug          string              `json:"slug"`
	Label         string              `json:"label"`
	SingularLabel string              `json:"singular_label"`
	Fields        []collection.Field  `json:"fields"`
	Columns       []collection.Column `json:"columns"`
}

type handler struct {
	cfg *internal.Config
	reg *hubadmin.Registry
}

func (h *handler) config(c internal.Context) error {
	out := PanelConfig{
		Title:       h.reg.Title(),
		Pages:       h.reg.Keys(),
		Collections: make([]CollectionConfig, 0, len(h.cfg.Collections)),
	}
	for _, col := range h.cfg.Collections {
		out.Collections = append(out.Collections, CollectionConfig{
			Slug:          col.Slug,
			Label:         col.Label,
			SingularLabel: collection.SingularLabel(col.Label),
			Fields:        col.Fields,
			Columns:       col.Columns,
		})
	}
	return c.JSON(http.StatusOK, out)
}
