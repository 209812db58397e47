// Package admin is the plugin that enables the admin panel.
//
// At composition time it fills the admin route registry (page key to
// component target) that the build step turns into entry files. At runtime
// it serves:
//
//	GET /admin/config  panel title, page keys and collection descriptors
//	GET /admin/*       the built panel, when WithAssets is set
package admin
