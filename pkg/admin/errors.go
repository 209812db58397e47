package admin

import "errors"

// ErrFrozen is returned when a page is registered after composition completed.
var ErrFrozen = errors.New("admin: registry is frozen")

// Violated constraints reported through *configerr.Error.
const (
	ConstraintEmptyKey      = "admin page key is required"
	ConstraintInvalidTarget = "invalid admin page target"
	ConstraintDuplicateKey  = "duplicate admin page key"
)
