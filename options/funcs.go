package options

// FilterFunc reports whether an item matches a search query. It must be pure:
// the filter memo is only recomputed when the query or option list changes.
type FilterFunc[T any] func(item T, query string) bool

// DisplayFunc renders an item to the text a UI shows for it. The state engine
// never calls it; it is part of the construction contract for widgets.
type DisplayFunc[T any] func(item T) string

// EqualFunc reports whether two items are the same option, used to carry a
// selection across an option-set replacement.
type EqualFunc[T any] func(a, b T) bool
