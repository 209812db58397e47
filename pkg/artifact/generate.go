package artifact

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/configerr"
)

// Result describes a completed generation.
type Result struct {
	// Inputs maps entry name to HTML entry path: pre-existing inputs merged
	// with one entry per admin page.
	Inputs map[string]string `json:"inputs"`
	// Files lists every written file, sorted.
	Files []string `json:"files"`
	// Cache is the directory the files were written to.
	Cache string `json:"cache"`
	// OutDir is the bundle output directory.
	OutDir string `json:"outDir"`
}

type file struct {
	path string
	data []byte
}

// Generate writes the HTML and script entry for every page in reg.
//
// All writes run concurrently and Generate returns once every write has
// settled; the first failure is returned as *WriteError. In-flight writes are
// not aborted. A nil registry is a *configerr.Error.
func Generate(ctx context.Context, reg *admin.Registry, opts ...Option) (*Result, error) {
	if reg == nil {
		return nil, configerr.New(ConstraintMissingRegistry, "")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := newOptions(opts...)
	title := o.title
	if title == "" {
		title = reg.Title()
	}

	keys := reg.Keys()
	inputs := make(map[string]string, len(o.inputs)+len(keys))
	for k, v := range o.inputs {
		inputs[k] = v
	}

	files := make([]file, 0, len(keys)*2)
	for _, page := range keys {
		if !filepath.IsLocal(filepath.FromSlash(page)) {
			return nil, configerr.New(ConstraintInvalidPageKey, page)
		}
		target, _ := reg.Lookup(page)

		htmlPath := filepath.Join(o.cache, filepath.FromSlash(page)+".html")
		if existing, ok := inputs[page]; ok && existing != htmlPath {
			return nil, configerr.New(ConstraintInputCollision, page)
		}
		inputs[page] = htmlPath

		files = append(files,
			file{path: htmlPath, data: htmlEntry(title, path.Join("/", page+".js"))},
			file{path: filepath.Join(o.cache, filepath.FromSlash(page)+".js"), data: scriptEntry(target)},
		)
	}

	if err := os.MkdirAll(o.cache, 0o755); err != nil {
		return nil, &WriteError{Path: o.cache, Err: err}
	}

	var g errgroup.Group
	for _, f := range files {
		g.Go(func() error {
			return writeFile(f)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	slices.Sort(paths)

	return &Result{
		Inputs: inputs,
		Files:  paths,
		Cache:  o.cache,
		OutDir: o.outDir,
	}, nil
}

func writeFile(f file) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	return nil
}
