package artifact

import (
	"context"

	"github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/configerr"
)

// CommandBuild is the bundler command that triggers generation.
const CommandBuild = "build"

// BuildConfig is the subset of bundler configuration the generator rewrites.
type BuildConfig struct {
	Input       map[string]string `json:"input,omitempty"`
	Root        string            `json:"root,omitempty"`
	OutDir      string            `json:"outDir,omitempty"`
	EmptyOutDir bool              `json:"emptyOutDir"`
}

// Configure is the bundler configuration hook. Root always points at the cache
// directory; for the build command it additionally generates the entry files,
// sets the output directory, enables emptying it and merges the page inputs
// into cfg.Input. Other commands (e.g. a dev server) leave the rest untouched
// and return a nil Result. A nil cfg is a configuration error.
func Configure(ctx context.Context, cfg *BuildConfig, command string, reg *admin.Registry, opts ...Option) (*Result, error) {
	if cfg == nil {
		return nil, configerr.New(ConstraintMissingBuildConfig, command)
	}

	o := newOptions(opts...)
	cfg.Root = o.cache

	if command != CommandBuild {
		return nil, nil
	}
	if reg == nil {
		return nil, configerr.New(ConstraintMissingRegistry, "")
	}

	res, err := Generate(ctx, reg, append(opts, WithInputs(cfg.Input))...)
	if err != nil {
		return nil, err
	}

	cfg.OutDir = res.OutDir
	cfg.EmptyOutDir = true
	cfg.Input = res.Inputs
	return res, nil
}
