// Package collection normalizes user-authored collection declarations into a
// complete, validated metadata model.
//
// A collection describes one manageable data entity: a URL-safe slug, a
// display label, an ordered list of field descriptors (name, widget kind,
// constraints) and the columns shown in list views. Declarations may be
// partial; Sanitize fills every optional attribute with a deterministic
// default and enforces the model invariants:
//
//   - slugs are unique across the configuration and URL-safe
//   - field names are unique within a collection
//   - columns reference declared fields
//
// Example:
//
//	cols, err := collection.Sanitize([]collection.Collection{
//	    {Slug: "blog-posts", Fields: []collection.Field{
//	        {Name: "title", Required: true},
//	        {Name: "published_at", Type: collection.TypeDatetime},
//	    }},
//	})
//	// cols[0].Label == "Blog Posts"
//	// cols[0].Fields[1].Label == "Published At"
//	// len(cols[0].Columns) == 2
//
// Declarations can also be loaded from YAML files with Load.
package collection
