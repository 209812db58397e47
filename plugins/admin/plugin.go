package admin

import (
	"errors"
	"io/fs"

	"github.com/dmitrymomot/honohub/internal"
	hubadmin "github.com/dmitrymomot/honohub/pkg/admin"
)

// Name is the plugin name reported in composition logs.
const Name = "admin"

// DefaultPrefix is where the admin panel is served.
const DefaultPrefix = "/admin"

// CollectionPagePrefix prefixes page keys created by WithCollectionPages.
const CollectionPagePrefix = "collections/"

type page struct {
	target hubadmin.Target
	key    string
}

// Plugin enables the admin panel: it fills the admin route registry read
// by the build step and serves the panel's runtime endpoints.
type Plugin struct {
	assets         fs.FS
	collectionPage hubadmin.Target
	title          string
	prefix         string
	pages          []page
}

// Option configures the plugin.
type Option func(*Plugin)

// WithTitle sets the admin document title.
func WithTitle(title string) Option {
	return func(p *Plugin) {
		p.title = title
	}
}

// WithPage registers an admin page rendered by target.
func WithPage(key string, target hubadmin.Target) Option {
	return func(p *Plugin) {
		p.pages = append(p.pages, page{key: key, target: target})
	}
}

// WithCollectionPages registers one page per collection, keyed
// "collections/<slug>", all rendered by target.
func WithCollectionPages(target hubadmin.Target) Option {
	return func(p *Plugin) {
		p.collectionPage = target
	}
}

// WithAssets serves the built admin panel from fsys. Unknown paths under
// the prefix fall back to index.html for client-side routing.
func WithAssets(fsys fs.FS) Option {
	return func(p *Plugin) {
		p.assets = fsys
	}
}

// WithPrefix sets the mount path. Defaults to "/admin".
func WithPrefix(prefix string) Option {
	return func(p *Plugin) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// New creates the admin plugin.
//
// Example:
//
//	admin.New(
//	    admin.WithTitle("Acme"),
//	    admin.WithPage("dashboard", hubadmin.StringTarget("components/Dashboard")),
//	    admin.WithCollectionPages(hubadmin.NamedTarget{Module: "@honohub/react", Component: "DocumentPage"}),
//	)
func New(opts ...Option) *Plugin {
	p := &Plugin{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements the plugin contract.
func (p *Plugin) Name() string { return Name }

// Bootstrap registers pages and mounts the admin routes. Rejected pages
// fail the plugin before any route is mounted.
func (p *Plugin) Bootstrap(env *internal.Env) (*internal.App, error) {
	reg := env.Admin()
	if p.title != "" {
		reg.SetMeta(hubadmin.Meta{Title: p.title})
	}

	var errs []error
	for _, pg := range p.pages {
		if err := reg.Register(pg.key, pg.target); err != nil {
			errs = append(errs, err)
		}
	}
	if p.collectionPage != nil {
		for _, c := range env.Config.Collections {
			if err := reg.Register(CollectionPagePrefix+c.Slug, p.collectionPage); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	h := &handler{cfg: env.Config, reg: reg}
	env.App.Routes(func(r internal.Router) {
		r.GET(p.prefix+"/config", h.config)
	})
	if p.assets != nil {
		env.App.Router().Mount(p.prefix, spaHandler(p.prefix, p.assets))
	}

	env.Logger.Debug("admin panel enabled",
		"prefix", p.prefix,
		"pages", reg.Len(),
	)
	return nil, nil
}
