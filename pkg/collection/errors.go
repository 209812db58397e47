package collection

// Violated constraints reported through *configerr.Error.
const (
	ConstraintMissingSlug     = "collection slug or label is required"
	ConstraintInvalidSlug     = "invalid collection slug"
	ConstraintDuplicateSlug   = "duplicate collection slug"
	ConstraintMissingField    = "field name is required"
	ConstraintDuplicateField  = "duplicate field name"
	ConstraintUnknownType     = "unknown field type"
	ConstraintSelectOptions   = "select field requires options"
	ConstraintInvalidBounds   = "field min exceeds max"
	ConstraintUnknownColumn   = "column references unknown field"
	ConstraintDuplicateColumn = "duplicate column"
	ConstraintInvalidFile     = "invalid collection file"
)
