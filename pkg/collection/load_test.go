package collection_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/configerr"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"collections/b.yaml": {Data: []byte(`
- slug: tags
- slug: authors
  label: Writers
`)},
		"collections/a.yaml": {Data: []byte(`
slug: posts
fields:
  - name: title
    required: true
    max: 120
  - name: status
    type: select
    options:
      - value: draft
      - value: published
---
slug: pages
`)},
		"collections/empty.yaml": {Data: []byte("")},
		"other/ignored.yaml":     {Data: []byte("slug: ignored")},
	}

	raw, err := collection.Load(fsys, "collections/*.yaml")
	require.NoError(t, err)
	require.Len(t, raw, 4)

	assert.Equal(t, "posts", raw[0].Slug)
	assert.Equal(t, "pages", raw[1].Slug)
	assert.Equal(t, "tags", raw[2].Slug)
	assert.Equal(t, "authors", raw[3].Slug)
	assert.Equal(t, "Writers", raw[3].Label)

	require.Len(t, raw[0].Fields, 2)
	assert.True(t, raw[0].Fields[0].Required)
	require.NotNil(t, raw[0].Fields[0].Max)
	assert.InDelta(t, 120, *raw[0].Fields[0].Max, 0)
	assert.Equal(t, collection.TypeSelect, raw[0].Fields[1].Type)

	cols, err := collection.Sanitize(raw)
	require.NoError(t, err)
	assert.Equal(t, "Draft", cols[0].Fields[1].Options[0].Label)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("just a string")},
	}

	_, err := collection.Load(fsys, "*.yaml")
	require.ErrorIs(t, err, configerr.ErrConfiguration)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadNoMatches(t *testing.T) {
	t.Parallel()

	raw, err := collection.Load(fstest.MapFS{}, "*.yaml")
	require.NoError(t, err)
	assert.Empty(t, raw)
}
