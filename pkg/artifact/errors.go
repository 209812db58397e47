package artifact

import "fmt"

// Violated constraints reported through *configerr.Error.
const (
	ConstraintMissingRegistry    = "admin registry is not initialized; enable the admin plugin"
	ConstraintMissingBuildConfig = "bundler build config is required"
	ConstraintInvalidPageKey     = "invalid admin page key"
	ConstraintInputCollision     = "admin page collides with existing build input"
)

// WriteError reports a failed artifact write. It fails the whole build.
type WriteError struct {
	Err  error
	Path string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("artifact: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
