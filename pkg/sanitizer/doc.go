// Package sanitizer cleans user-supplied strings before they are stored in
// a collection. Plain string fields go through [StripHTML]; richtext fields
// go through [SanitizeHTML]. Both are built on microcosm-cc/bluemonday.
package sanitizer
