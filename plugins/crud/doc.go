// Package crud is the plugin that exposes configured collections over HTTP.
//
// Routes, relative to the prefix (default /collections):
//
//	GET    /             collection summaries, ?search= filters by label or slug
//	GET    /{slug}       a page of documents, ?limit= and ?offset=
//	POST   /{slug}       create a document
//	GET    /{slug}/{id}  read a document
//	PUT    /{slug}/{id}  replace a document
//	DELETE /{slug}/{id}  delete a document
//
// Writes are checked against the collection's field descriptors. String
// values have their markup stripped, except richtext fields which keep a
// safe subset. A rejected write answers 422 with one issue per field:
//
//	{"error": "validation failed", "issues": [{"field": "title", "message": "is required"}]}
package crud
