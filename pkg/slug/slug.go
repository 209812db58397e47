package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*options)

type options struct {
	separator string
	maxLength int
}

// Separator sets the string placed between words. Defaults to "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// MaxLength limits the slug to n runes. Zero or negative disables the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// Letters that do not decompose under NFD but have an obvious ASCII base.
var foldings = map[rune]string{
	'ß': "s", 'ø': "o", 'Ø': "o", 'ł': "l", 'Ł': "l",
	'æ': "a", 'Æ': "a", 'œ': "o", 'Œ': "o", 'đ': "d", 'Đ': "d",
}

var validPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// Make converts s into a lowercase URL-safe slug.
func Make(s string, opts ...Option) string {
	o := &options{separator: "-"}
	for _, opt := range opts {
		opt(o)
	}

	var b strings.Builder
	pending := false
	for _, r := range fold(s) {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteString(o.separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	out := b.String()
	if o.maxLength > 0 {
		if rs := []rune(out); len(rs) > o.maxLength {
			out = string(rs[:o.maxLength])
			if o.separator != "" {
				for strings.HasSuffix(out, o.separator) {
					out = strings.TrimSuffix(out, o.separator)
				}
			}
		}
	}
	return out
}

// Valid reports whether s is already a well-formed slug: lowercase ASCII
// letters and digits separated by single '-' or '_' characters.
func Valid(s string) bool {
	return validPattern.MatchString(s)
}

// fold strips combining marks and maps non-decomposable Latin letters.
func fold(s string) string {
	var b strings.Builder
	for _, r := range s {
		if f, ok := foldings[r]; ok {
			b.WriteString(f)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}
