package crud

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/honohub/pkg/collection"
	"github.com/dmitrymomot/honohub/pkg/sanitizer"
	"github.com/dmitrymomot/honohub/pkg/store"
)

// Accepted temporal layouts.
const (
	DateLayout     = time.DateOnly
	DatetimeLayout = time.RFC3339
)

// Issue is one rejected field value.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Issues is returned when a document does not match its collection.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, len(is))
	for i, it := range is {
		parts[i] = it.Field + ": " + it.Message
	}
	return "crud: invalid document: " + strings.Join(parts, "; ")
}

// Validate checks doc against the collection's fields and returns the
// sanitized document. Unknown keys are rejected; the id key is ignored.
// Optional fields that are absent or null are omitted from the result.
func Validate(c collection.Collection, doc map[string]any) (store.Document, error) {
	var issues Issues
	for key := range doc {
		if key == store.IDField {
			continue
		}
		if _, ok := c.Field(key); !ok {
			issues = append(issues, Issue{Field: key, Message: "unknown field"})
		}
	}
	slices.SortFunc(issues, func(a, b Issue) int { return strings.Compare(a.Field, b.Field) })

	out := make(store.Document, len(c.Fields))
	for _, f := range c.Fields {
		raw, present := doc[f.Name]
		if !present || raw == nil {
			if f.Required {
				issues = append(issues, Issue{Field: f.Name, Message: "is required"})
			}
			continue
		}

		v, msg := coerce(f, raw)
		if msg != "" {
			issues = append(issues, Issue{Field: f.Name, Message: msg})
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			if f.Required {
				issues = append(issues, Issue{Field: f.Name, Message: "is required"})
				continue
			}
		}
		out[f.Name] = v
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// coerce sanitizes and checks a single non-nil value. A non-empty message
// means the value is rejected.
func coerce(f collection.Field, raw any) (any, string) {
	switch f.Type {
	case collection.TypeNumber:
		n, ok := raw.(float64)
		if !ok {
			return nil, "must be a number"
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Sprintf("must be at least %v", *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Sprintf("must be at most %v", *f.Max)
		}
		return n, ""

	case collection.TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return b, ""
	}

	s, ok := raw.(string)
	if !ok {
		return nil, "must be a string"
	}
	if f.Type == collection.TypeRichText {
		s = sanitizer.SanitizeHTML(s)
	} else {
		s = strings.TrimSpace(sanitizer.StripHTML(s))
	}
	if s == "" {
		return s, ""
	}

	n := utf8.RuneCountInString(s)
	if f.Min != nil && float64(n) < *f.Min {
		return nil, fmt.Sprintf("must be at least %v characters", *f.Min)
	}
	if f.Max != nil && float64(n) > *f.Max {
		return nil, fmt.Sprintf("must be at most %v characters", *f.Max)
	}

	switch f.Type {
	case collection.TypeEmail:
		if addr, err := mail.ParseAddress(s); err != nil || addr.Address != s {
			return nil, "must be a valid email address"
		}
	case collection.TypeURL:
		if u, err := url.Parse(s); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, "must be an http or https URL"
		}
	case collection.TypeDate:
		if _, err := time.Parse(DateLayout, s); err != nil {
			return nil, "must be a date (YYYY-MM-DD)"
		}
	case collection.TypeDatetime:
		if _, err := time.Parse(DatetimeLayout, s); err != nil {
			return nil, "must be an RFC 3339 timestamp"
		}
	case collection.TypeSelect:
		if !slices.ContainsFunc(f.Options, func(o collection.Choice) bool { return o.Value == s }) {
			return nil, "must be one of the allowed options"
		}
	}
	return s, ""
}
