package crud

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/honohub/internal"
	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/store"
)

type handler struct {
	cfg      *internal.Config
	limit    int
	maxLimit int
}

// Summary is the list entry for a collection.
type Summary struct {
	Slug          string `json:"slug"`
	Label         string `json:"label"`
	SingularLabel string `json:"singular_label"`
}

// Page is a slice of a collection's documents.
type Page struct {
	Data   []store.Document `json:"data"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type issuesResponse struct {
	Error  string `json:"error"`
	Issues Issues `json:"issues"`
}

func (h *handler) Routes(r internal.Router) {
	r.GET("/", h.collections)
	r.Route("/{slug}", func(r internal.Router) {
		r.GET("/", h.list)
		r.POST("/", h.create)
		r.GET("/{id}", h.get)
		r.PUT("/{id}", h.update)
		r.DELETE("/{id}", h.delete)
	})
}

func (h *handler) collections(c internal.Context) error {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	out := make([]Summary, 0, len(h.cfg.Collections))
	for _, col := range h.cfg.Collections {
		if search != "" &&
			!strings.Contains(strings.ToLower(col.Label), search) &&
			!strings.Contains(col.Slug, search) {
			continue
		}
		out = append(out, Summary{
			Slug:          col.Slug,
			Label:         col.Label,
			SingularLabel: collection.SingularLabel(col.Label),
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *handler) list(c internal.Context) error {
	col, err := h.collection(c)
	if err != nil {
		return err
	}

	limit := internal.QueryDefault(c, "limit", h.limit)
	offset := internal.QueryDefault(c, "offset", 0)
	if limit <= 0 || limit > h.maxLimit {
		return internal.ErrBadRequest("invalid limit", internal.WithErrorCode("invalid_limit"))
	}
	if offset < 0 {
		return internal.ErrBadRequest("invalid offset", internal.WithErrorCode("invalid_offset"))
	}

	docs, total, err := h.cfg.DB.List(c, col.Slug, store.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []store.Document{}
	}
	return c.JSON(http.StatusOK, Page{Data: docs, Total: total, Limit: limit, Offset: offset})
}

func (h *handler) get(c internal.Context) error {
	col, err := h.collection(c)
	if err != nil {
		return err
	}
	doc, err := h.cfg.DB.Get(c, col.Slug, c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *handler) create(c internal.Context) error {
	col, err := h.collection(c)
	if err != nil {
		return err
	}
	doc, err := h.bind(c, col)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	created, err := h.cfg.DB.Create(c, col.Slug, doc)
	if err != nil {
		return err
	}
	c.LogInfo("document created",
		"collection", col.Slug,
		"id", created.ID(),
	)
	return c.JSON(http.StatusCreated, created)
}

func (h *handler) update(c internal.Context) error {
	col, err := h.collection(c)
	if err != nil {
		return err
	}
	doc, err := h.bind(c, col)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	updated, err := h.cfg.DB.Update(c, col.Slug, c.Param("id"), doc)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) delete(c internal.Context) error {
	col, err := h.collection(c)
	if err != nil {
		return err
	}
	if err := h.cfg.DB.Delete(c, col.Slug, c.Param("id")); err != nil {
		return storeError(err)
	}
	c.LogInfo("document deleted",
		"collection", col.Slug,
		"id", c.Param("id"),
	)
	return c.NoContent(http.StatusNoContent)
}

func (h *handler) collection(c internal.Context) (collection.Collection, error) {
	slug := c.Param("slug")
	col, ok := h.cfg.Collection(slug)
	if !ok {
		return collection.Collection{}, internal.ErrNotFound("collection not found",
			internal.WithErrorCode("unknown_collection"),
			internal.WithDetail(slug),
		)
	}
	return col, nil
}

// bind decodes and validates the request body. A nil document with a nil
// error means the 422 response has already been written.
func (h *handler) bind(c internal.Context, col collection.Collection) (store.Document, error) {
	var body map[string]any
	if err := c.BindJSON(&body); err != nil {
		return nil, internal.ErrBadRequest("invalid JSON body", internal.WithError(err))
	}
	if body == nil {
		return nil, internal.ErrBadRequest("body must be a JSON object")
	}

	doc, err := Validate(col, body)
	var issues Issues
	if errors.As(err, &issues) {
		return nil, c.JSON(http.StatusUnprocessableEntity, issuesResponse{
			Error:  "validation failed",
			Issues: issues,
		})
	}
	return doc, err
}

func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return internal.ErrNotFound("document not found", internal.WithError(err))
	}
	return err
}
