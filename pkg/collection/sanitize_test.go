package collection_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/configerr"
)

func ptr(f float64) *float64 { return &f }

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("derives label from slug", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{Slug: "blog-posts"}})
		require.NoError(t, err)
		require.Len(t, cols, 1)
		assert.Equal(t, "Blog Posts", cols[0].Label)
	})

	t.Run("keeps explicit label", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{Slug: "posts", Label: "Articles"}})
		require.NoError(t, err)
		assert.Equal(t, "Articles", cols[0].Label)
	})

	t.Run("derives slug from label", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{Label: "Café Menus"}})
		require.NoError(t, err)
		assert.Equal(t, "cafe-menus", cols[0].Slug)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize(nil)
		require.NoError(t, err)
		assert.Empty(t, cols)
		assert.NotNil(t, cols)
	})

	t.Run("preserves declaration order", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{Slug: "c"}, {Slug: "a"}, {Slug: "b"}})
		require.NoError(t, err)
		assert.Equal(t, "c", cols[0].Slug)
		assert.Equal(t, "a", cols[1].Slug)
		assert.Equal(t, "b", cols[2].Slug)
	})

	t.Run("field defaults and derived columns", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{
			Slug: "posts",
			Fields: []collection.Field{
				{Name: "title"},
				{Name: "published_at", Type: collection.TypeDatetime},
			},
		}})
		require.NoError(t, err)

		c := cols[0]
		require.Len(t, c.Fields, 2)
		assert.Equal(t, collection.TypeText, c.Fields[0].Type)
		assert.Equal(t, "Title", c.Fields[0].Label)
		assert.Equal(t, "Published At", c.Fields[1].Label)

		require.Len(t, c.Columns, 2)
		assert.Equal(t, "title", c.Columns[0].Name)
		assert.Equal(t, "Title", c.Columns[0].Label)
		assert.Equal(t, collection.TypeDatetime, c.Columns[1].Type)
		assert.Equal(t, collection.DefaultDatetimeFormat, c.Columns[1].Format)
	})

	t.Run("explicit columns resolved against fields", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{
			Slug:    "posts",
			Fields:  []collection.Field{{Name: "title"}, {Name: "body", Type: collection.TypeRichText}},
			Columns: []collection.Column{{Name: "title", Label: "Headline"}},
		}})
		require.NoError(t, err)
		require.Len(t, cols[0].Columns, 1)
		assert.Equal(t, "Headline", cols[0].Columns[0].Label)
		assert.Equal(t, collection.TypeText, cols[0].Columns[0].Type)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()
		raw := []collection.Collection{{Slug: "posts", Fields: []collection.Field{{Name: "title"}}}}
		_, err := collection.Sanitize(raw)
		require.NoError(t, err)
		assert.Empty(t, raw[0].Label)
		assert.Empty(t, raw[0].Fields[0].Type)
		assert.Nil(t, raw[0].Columns)
	})

	t.Run("select option labels", func(t *testing.T) {
		t.Parallel()
		cols, err := collection.Sanitize([]collection.Collection{{
			Slug: "posts",
			Fields: []collection.Field{{
				Name: "status", Type: collection.TypeSelect,
				Options: []collection.Choice{{Value: "in_review"}},
			}},
		}})
		require.NoError(t, err)
		assert.Equal(t, "In Review", cols[0].Fields[0].Options[0].Label)
	})
}

func TestSanitizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        []collection.Collection
		constraint string
		value      string
	}{
		{
			name:       "duplicate slug",
			raw:        []collection.Collection{{Slug: "posts"}, {Slug: "posts"}},
			constraint: collection.ConstraintDuplicateSlug,
			value:      "posts",
		},
		{
			name:       "missing slug and label",
			raw:        []collection.Collection{{}},
			constraint: collection.ConstraintMissingSlug,
		},
		{
			name:       "invalid slug",
			raw:        []collection.Collection{{Slug: "Blog Posts"}},
			constraint: collection.ConstraintInvalidSlug,
			value:      "Blog Posts",
		},
		{
			name:       "missing field name",
			raw:        []collection.Collection{{Slug: "posts", Fields: []collection.Field{{}}}},
			constraint: collection.ConstraintMissingField,
		},
		{
			name:       "duplicate field",
			raw:        []collection.Collection{{Slug: "posts", Fields: []collection.Field{{Name: "a"}, {Name: "a"}}}},
			constraint: collection.ConstraintDuplicateField,
			value:      "posts.a",
		},
		{
			name:       "unknown type",
			raw:        []collection.Collection{{Slug: "posts", Fields: []collection.Field{{Name: "a", Type: "color"}}}},
			constraint: collection.ConstraintUnknownType,
			value:      "color",
		},
		{
			name:       "select without options",
			raw:        []collection.Collection{{Slug: "posts", Fields: []collection.Field{{Name: "s", Type: collection.TypeSelect}}}},
			constraint: collection.ConstraintSelectOptions,
		},
		{
			name:       "min over max",
			raw:        []collection.Collection{{Slug: "posts", Fields: []collection.Field{{Name: "n", Min: ptr(5), Max: ptr(1)}}}},
			constraint: collection.ConstraintInvalidBounds,
		},
		{
			name: "unknown column",
			raw: []collection.Collection{{
				Slug: "posts", Fields: []collection.Field{{Name: "a"}},
				Columns: []collection.Column{{Name: "b"}},
			}},
			constraint: collection.ConstraintUnknownColumn,
			value:      "posts.b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := collection.Sanitize(tt.raw)
			require.ErrorIs(t, err, configerr.ErrConfiguration)

			ce, ok := configerr.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.constraint, ce.Constraint)
			if tt.value != "" {
				assert.Equal(t, tt.value, ce.Value)
			}
		})
	}
}

func TestSanitizeDuplicateSlugIndependentOfCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 10, 200} {
		raw := make([]collection.Collection, 0, n)
		for i := range n - 1 {
			raw = append(raw, collection.Collection{Slug: fmt.Sprintf("c%d", i)})
		}
		raw = append(raw, collection.Collection{Slug: "c0"})

		_, err := collection.Sanitize(raw)
		require.ErrorIs(t, err, configerr.ErrConfiguration, "n=%d", n)
		assert.Contains(t, err.Error(), `"c0"`)
	}
}

func TestDisplayLabel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"blog-posts":   "Blog Posts",
		"posts":        "Posts",
		"created_at":   "Created At",
		"createdAt":    "Created At",
		"user profile": "User Profile",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, collection.DisplayLabel(in), in)
	}
}

func TestSingularLabel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Posts":      "Post",
		"Blog Posts": "Blog Post",
		"Categories": "Category",
		"Addresses":  "Address",
		"Boxes":      "Box",
		"Glass":      "Glass",
		"Data":       "Data",
	}
	for in, want := range tests {
		assert.Equal(t, want, collection.SingularLabel(in), in)
	}
}
