package honohub_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honohub"
	hubadmin "github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/artifact"
	"github.com/dmitrymomot/honohub/pkg/store"
	"github.com/dmitrymomot/honohub/plugins/admin"
	"github.com/dmitrymomot/honohub/plugins/crud"
)

func TestHub(t *testing.T) {
	t.Parallel()

	cfg, err := honohub.Sanitize(honohub.RawConfig{
		DB: store.NewMemory(),
		Collections: []honohub.Collection{
			{Slug: "posts", Fields: []honohub.Field{{Name: "title", Required: true}}},
		},
		Plugins: []honohub.Plugin{
			crud.New(),
			admin.New(admin.WithCollectionPages(hubadmin.NamedTarget{Module: "@honohub/react", Component: "DocumentPage"})),
			honohub.NewPlugin("broken", func(*honohub.Env) (*honohub.App, error) {
				panic("boom")
			}),
		},
	})
	require.NoError(t, err)

	comp, err := honohub.Compose(cfg)
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]any{"title": "Hello"})
	rec := httptest.NewRecorder()
	comp.App.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/collections/posts", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	comp.App.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cache := t.TempDir()
	build := &artifact.BuildConfig{}
	res, err := artifact.Configure(t.Context(), build, "build", comp.Admin, artifact.WithCache(cache))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, build.Input, "collections/posts")
	assert.Equal(t, cache, build.Root)
	assert.True(t, build.EmptyOutDir)
}

func TestComposeNilConfig(t *testing.T) {
	t.Parallel()

	_, err := honohub.Compose(nil)
	require.ErrorIs(t, err, honohub.ErrConfiguration)
}
