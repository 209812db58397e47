package collection

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayLabel derives a human-readable label from a slug or field name.
// Words are split on '-', '_', whitespace and lower-to-upper case changes,
// then title-cased: "blog-posts" -> "Blog Posts", "createdAt" -> "Created At".
func DisplayLabel(s string) string {
	// Casers are stateful; one per call keeps DisplayLabel goroutine-safe.
	caser := cases.Title(language.English)
	words := splitWords(s)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// SingularLabel returns a naive English singular of the last word of label,
// used for titles like "Create Post" on a "Posts" collection.
func SingularLabel(label string) string {
	idx := strings.LastIndex(label, " ")
	head, last := label[:idx+1], label[idx+1:]

	lower := strings.ToLower(last)
	switch {
	case strings.HasSuffix(lower, "ies") && len(last) > 3:
		last = last[:len(last)-3] + "y"
	case strings.HasSuffix(lower, "sses"), strings.HasSuffix(lower, "xes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "shes"):
		last = last[:len(last)-2]
	case strings.HasSuffix(lower, "ss"):
	case strings.HasSuffix(lower, "s") && len(last) > 1:
		last = last[:len(last)-1]
	}
	return head + last
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}
