// Package slug generates and validates URL-safe identifiers.
//
// Collection slugs become path segments (/collections/{slug}) and admin page
// keys, so they are restricted to lowercase ASCII letters, digits and single
// separators.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/honohub/pkg/slug"
//
//	s := slug.Make("Blog Posts")
//	// Output: "blog-posts"
//
//	s = slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
//	slug.Valid("blog-posts") // true
//	slug.Valid("Blog Posts") // false
//
// # Configuration Options
//
// Separator sets the string placed between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// MaxLength limits the slug length (rune-based). Trailing separators left by
// truncation are removed:
//
//	slug.Make("Very long title", slug.MaxLength(9))
//	// Output: "very-long"
//
// # Unicode Support
//
// Common Latin diacritics are folded to their ASCII base letter:
//
//	slug.Make("München straße") // "munchen-strase"
//	slug.Make("Zażółć gęślą")   // "zazolc-gesla"
//
// Unsupported character sets (Cyrillic, CJK, emoji) are treated as separators.
package slug
