package collection

import (
	"slices"
	"strconv"

	"github.com/dmitrymomot/honohub/pkg/configerr"
	"github.com/dmitrymomot/honohub/pkg/slug"
)

// Sanitize normalizes raw declarations into complete collections.
// The input is not modified; declaration order is preserved.
//
// Defaults:
//   - Slug: derived from Label when omitted
//   - Label: display-cased Slug
//   - Field.Type: text
//   - Field.Label: display-cased field name
//   - Columns: one per field, in field order
//   - Column.Label/Type: taken from the referenced field
//
// Returns *configerr.Error naming the first violated constraint.
func Sanitize(raw []Collection) ([]Collection, error) {
	out := make([]Collection, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, c := range raw {
		sc, err := sanitizeCollection(c, i)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[sc.Slug]; dup {
			return nil, configerr.New(ConstraintDuplicateSlug, sc.Slug)
		}
		seen[sc.Slug] = struct{}{}
		out = append(out, sc)
	}

	return out, nil
}

func sanitizeCollection(c Collection, index int) (Collection, error) {
	s := c.Slug
	if s == "" {
		if c.Label == "" {
			return Collection{}, configerr.New(ConstraintMissingSlug, "#"+strconv.Itoa(index))
		}
		s = slug.Make(c.Label)
	}
	if !slug.Valid(s) {
		return Collection{}, configerr.New(ConstraintInvalidSlug, s)
	}

	label := c.Label
	if label == "" {
		label = DisplayLabel(s)
	}

	fields, err := sanitizeFields(s, c.Fields)
	if err != nil {
		return Collection{}, err
	}

	columns, err := sanitizeColumns(s, c.Columns, fields)
	if err != nil {
		return Collection{}, err
	}

	return Collection{
		Slug:    s,
		Label:   label,
		Fields:  fields,
		Columns: columns,
	}, nil
}

func sanitizeFields(collectionSlug string, raw []Field) ([]Field, error) {
	fields := make([]Field, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, f := range raw {
		if f.Name == "" {
			return nil, configerr.New(ConstraintMissingField, collectionSlug)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, configerr.New(ConstraintDuplicateField, collectionSlug+"."+f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Type == "" {
			f.Type = TypeText
		}
		if !f.Type.Known() {
			return nil, configerr.New(ConstraintUnknownType, string(f.Type))
		}
		if f.Type == TypeSelect && len(f.Options) == 0 {
			return nil, configerr.New(ConstraintSelectOptions, collectionSlug+"."+f.Name)
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return nil, configerr.New(ConstraintInvalidBounds, collectionSlug+"."+f.Name)
		}
		if f.Label == "" {
			f.Label = DisplayLabel(f.Name)
		}
		f.Options = slices.Clone(f.Options)
		for i, o := range f.Options {
			if o.Label == "" {
				f.Options[i].Label = DisplayLabel(o.Value)
			}
		}

		fields = append(fields, f)
	}

	return fields, nil
}

func sanitizeColumns(collectionSlug string, raw []Column, fields []Field) ([]Column, error) {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	if len(raw) == 0 {
		columns := make([]Column, 0, len(fields))
		for _, f := range fields {
			columns = append(columns, columnFor(Column{Name: f.Name}, f))
		}
		return columns, nil
	}

	columns := make([]Column, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, c := range raw {
		f, ok := byName[c.Name]
		if !ok {
			return nil, configerr.New(ConstraintUnknownColumn, collectionSlug+"."+c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, configerr.New(ConstraintDuplicateColumn, collectionSlug+"."+c.Name)
		}
		seen[c.Name] = struct{}{}
		columns = append(columns, columnFor(c, f))
	}
	return columns, nil
}

func columnFor(c Column, f Field) Column {
	if c.Label == "" {
		c.Label = f.Label
	}
	if c.Type == "" {
		c.Type = f.Type
	}
	if c.Format == "" {
		switch c.Type {
		case TypeDatetime:
			c.Format = DefaultDatetimeFormat
		case TypeDate:
			c.Format = DefaultDateFormat
		}
	}
	return c
}
