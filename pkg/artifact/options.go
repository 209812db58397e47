package artifact

// Defaults for the recognized options.
const (
	DefaultCache  = "./.honohub/generated"
	DefaultOutDir = "../../dist"
)

// Option configures generation.
type Option func(*options)

type options struct {
	inputs map[string]string
	cache  string
	outDir string
	title  string
}

func newOptions(opts ...Option) *options {
	o := &options{
		cache:  DefaultCache,
		outDir: DefaultOutDir,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithCache sets the directory for generated entry files.
// Defaults to "./.honohub/generated".
func WithCache(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.cache = dir
		}
	}
}

// WithOutDir sets the final bundle output directory.
// Defaults to "../../dist" (relative to the cache directory, which is the bundler root).
func WithOutDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.outDir = dir
		}
	}
}

// WithTitle sets the document title. Defaults to the registry title.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithInputs supplies pre-existing build inputs that generated entries are
// merged into.
func WithInputs(inputs map[string]string) Option {
	return func(o *options) {
		if len(inputs) == 0 {
			return
		}
		if o.inputs == nil {
			o.inputs = make(map[string]string, len(inputs))
		}
		for k, v := range inputs {
			o.inputs[k] = v
		}
	}
}
