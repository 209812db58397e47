// Package admin holds the admin route registry: the mapping from admin page
// key to the component that renders it.
//
// The registry is populated during application composition (typically by the
// admin plugin), frozen when composition completes, and read once at build
// time by the artifact generator.
//
//	reg := admin.NewRegistry(admin.Meta{Title: "Acme Admin"})
//	_ = reg.Register("dashboard", admin.StringTarget("components/Dashboard"))
//	_ = reg.Register("users", admin.NamedTarget{Module: "pages/Users", Component: "UsersPage"})
//	reg.Freeze()
//
// A Target is a closed two-variant union: StringTarget imports a module's
// default export, NamedTarget imports a named export.
package admin
