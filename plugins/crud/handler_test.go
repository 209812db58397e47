package crud_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honohub/internal"
	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/store"
	"github.com/dmitrymomot/honohub/plugins/crud"
)

func newHub(t *testing.T, opts ...crud.Option) *internal.App {
	t.Helper()

	cfg, err := internal.Sanitize(internal.RawConfig{
		DB: store.NewMemory(),
		Collections: []collection.Collection{
			posts,
			{Slug: "blog-categories", Fields: []collection.Field{{Name: "name"}}},
		},
		Plugins: []internal.Plugin{crud.New(opts...)},
	})
	require.NoError(t, err)

	comp, err := internal.Compose(cfg)
	require.NoError(t, err)
	return comp.App
}

func do(t *testing.T, app http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCollections(t *testing.T) {
	t.Parallel()
	app := newHub(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "all", target: "/collections", want: []string{"posts", "blog-categories"}},
		{name: "search by label", target: "/collections?search=CATEG", want: []string{"blog-categories"}},
		{name: "no match", target: "/collections?search=zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, app, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			got := make([]string, 0)
			for _, s := range decode[[]crud.Summary](t, rec) {
				got = append(got, s.Slug)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("labels", func(t *testing.T) {
		t.Parallel()
		rec := do(t, app, http.MethodGet, "/collections?search=blog", nil)
		summaries := decode[[]crud.Summary](t, rec)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Blog Categories", summaries[0].Label)
		assert.Equal(t, "Blog Category", summaries[0].SingularLabel)
	})
}

func TestDocumentLifecycle(t *testing.T) {
	t.Parallel()
	app := newHub(t)

	rec := do(t, app, http.MethodPost, "/collections/posts", map[string]any{"title": "First post", "status": "draft"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[store.Document](t, rec)
	id := created.ID()
	require.NotEmpty(t, id)
	assert.Equal(t, "First post", created["title"])

	rec = do(t, app, http.MethodGet, "/collections/posts/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "draft", decode[store.Document](t, rec)["status"])

	rec = do(t, app, http.MethodPut, "/collections/posts/"+id, map[string]any{"title": "Renamed", "status": "live"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Renamed", decode[store.Document](t, rec)["title"])

	rec = do(t, app, http.MethodGet, "/collections/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[crud.Page](t, rec)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, crud.DefaultLimit, page.Limit)
	require.Len(t, page.Data, 1)
	assert.Equal(t, id, page.Data[0].ID())

	rec = do(t, app, http.MethodDelete, "/collections/posts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, app, http.MethodGet, "/collections/posts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPaging(t *testing.T) {
	t.Parallel()
	app := newHub(t, crud.WithLimits(2, 3))

	for _, title := range []string{"One!", "Two!", "Three", "Four!"} {
		rec := do(t, app, http.MethodPost, "/collections/posts", map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, app, http.MethodGet, "/collections/posts?offset=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[crud.Page](t, rec)
	assert.Equal(t, 4, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Two!", page.Data[0]["title"])
	assert.Equal(t, "Three", page.Data[1]["title"])

	rec = do(t, app, http.MethodGet, "/collections/posts?limit=4", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodGet, "/collections/posts?offset=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	app := newHub(t)

	tests := []struct {
		name   string
		method string
		target string
		body   any
		code   int
	}{
		{name: "unknown collection list", method: http.MethodGet, target: "/collections/nope", code: http.StatusNotFound},
		{name: "unknown collection create", method: http.MethodPost, target: "/collections/nope", body: map[string]any{}, code: http.StatusNotFound},
		{name: "unknown document", method: http.MethodGet, target: "/collections/posts/missing", code: http.StatusNotFound},
		{name: "update unknown document", method: http.MethodPut, target: "/collections/posts/missing", body: map[string]any{"title": "Hello"}, code: http.StatusNotFound},
		{name: "delete unknown document", method: http.MethodDelete, target: "/collections/posts/missing", code: http.StatusNotFound},
		{name: "array body", method: http.MethodPost, target: "/collections/posts", body: []int{1}, code: http.StatusBadRequest},
		{name: "empty body", method: http.MethodPost, target: "/collections/posts", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestValidationResponse(t *testing.T) {
	t.Parallel()
	app := newHub(t)

	rec := do(t, app, http.MethodPost, "/collections/posts", map[string]any{"status": "gone"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error  string      `json:"error"`
		Issues crud.Issues `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.ElementsMatch(t, crud.Issues{
		{Field: "title", Message: "is required"},
		{Field: "status", Message: "must be one of the allowed options"},
	}, body.Issues)
}
