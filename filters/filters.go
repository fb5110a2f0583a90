// Package filters provides ready-made text matchers and adapters for the
// filter function a select state is constructed with.
package filters

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"dropselect/options"
)

// Matcher reports whether the display text of an option matches a query.
type Matcher func(text, query string) bool

// FoldContains matches when query is a case-insensitive substring of text.
func FoldContains(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// FoldPrefix matches when text starts with query, case-insensitively.
func FoldPrefix(text, query string) bool {
	return strings.HasPrefix(strings.ToLower(text), strings.ToLower(query))
}

// Fuzzy matches query against text with subsequence fuzzy matching, so
// "svc" matches "my-service".
func Fuzzy(text, query string) bool {
	return len(fuzzy.Find(query, []string{text})) > 0
}

// ByDisplay adapts a Matcher to any item type through its display text.
func ByDisplay[T any](display options.DisplayFunc[T], match Matcher) options.FilterFunc[T] {
	return func(item T, query string) bool {
		return match(display(item), query)
	}
}

// Strings adapts a Matcher to plain string options.
func Strings(match Matcher) options.FilterFunc[string] {
	return ByDisplay(func(s string) string { return s }, match)
}
