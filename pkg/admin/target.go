package admin

import (
	"encoding/json"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Target identifies the component rendering an admin page.
// Implemented only by StringTarget and NamedTarget.
type Target interface {
	// Import returns the ES module import statement for the component.
	Import() string
	// Identifier returns the local name bound by Import.
	Identifier() string
	isTarget()
}

// DefaultIdentifier is the local binding used for default-exported components
// whose module path does not yield a usable name.
const DefaultIdentifier = "DefaultComponent"

// componentName matches identifiers JSX renders as components rather than
// DOM tags.
var componentName = regexp.MustCompile(`^[A-Z][A-Za-z0-9_$]*$`)

// reservedIdentifier reports whether name is already bound by the page entry.
func reservedIdentifier(name string) bool {
	return name == "React" || name == "ReactDOM"
}

// StringTarget is a module path whose default export is the page component.
type StringTarget string

func (t StringTarget) Import() string {
	return "import " + t.Identifier() + " from " + strconv.Quote(string(t))
}

// Identifier derives a PascalCase name from the last module path segment:
// "components/Dashboard" -> "Dashboard", "./pages/user-list.tsx" -> "UserList".
// Names the entry already binds, and names that do not start with a letter,
// become DefaultIdentifier.
func (t StringTarget) Identifier() string {
	base := path.Base(string(t))
	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	var b strings.Builder
	upper := true
	for _, r := range base {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r)) || r > unicode.MaxASCII {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}

	id := b.String()
	if id == "" || unicode.IsDigit(rune(id[0])) || reservedIdentifier(id) {
		return DefaultIdentifier
	}
	return id
}

func (StringTarget) isTarget() {}

// MarshalJSON encodes the target as a plain string.
func (t StringTarget) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// NamedTarget names a non-default export of a module.
type NamedTarget struct {
	Module    string `json:"module"`
	Component string `json:"component"`
}

func (t NamedTarget) Import() string {
	return "import { " + t.Component + " } from " + strconv.Quote(t.Module)
}

func (t NamedTarget) Identifier() string { return t.Component }

func (NamedTarget) isTarget() {}

// valid reports whether t renders as exactly one component in a page entry.
func valid(t Target) bool {
	switch v := t.(type) {
	case StringTarget:
		return v != ""
	case NamedTarget:
		return v.valid()
	case *NamedTarget:
		return v != nil && v.valid()
	}
	return false
}

func (t NamedTarget) valid() bool {
	return t.Module != "" && componentName.MatchString(t.Component) && !reservedIdentifier(t.Component)
}
