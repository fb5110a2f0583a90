// Package options holds the selection + filtering state behind a searchable
// select widget: an immutable option list, a mutable selection, and a
// memoized text-filter result, with derived views for rendering.
package options

import (
	"sync"

	"dropselect/selection"
)

// Entry is an option resolved to its absolute index in the backing list.
type Entry[T any] struct {
	Index int
	Item  T
}

// FilteredEntry is a visible option paired with its selection membership.
type FilteredEntry[T any] struct {
	Index    int
	Selected bool
	Item     T
}

// State is the shared selection + filter state of one select widget. A
// *State is the handle: every holder observes the same underlying state.
// All methods are safe for concurrent use.
type State[T any] struct {
	mu       sync.RWMutex
	items    []T
	sel      selection.Selection
	filtered Filtered
	filterFn FilterFunc[T]
	query    string // last non-empty query, "" when no filter is active
}

// New creates a State over items with the given initial selection. A nil
// filter treats every item as matching any query. The item slice is copied.
func New[T any](items []T, sel selection.Selection, filter FilterFunc[T]) *State[T] {
	s := &State[T]{
		items:    make([]T, len(items)),
		sel:      sel,
		filtered: FilterAll(),
		filterFn: filter,
	}
	copy(s.items, items)
	return s
}

// Len returns the length of the option list.
func (s *State[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item at an absolute index.
func (s *State[T]) Get(index int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[index], true
}

// Items returns a copy of the option list.
func (s *State[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// IsMultiple reports whether the selection can hold more than one index.
func (s *State[T]) IsMultiple() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.IsMultiple()
}

// IsNullable reports whether an empty selection is a legal state.
func (s *State[T]) IsNullable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.IsNullable()
}

// Select selects the option at an absolute index. Out-of-range indices are
// rejected. Returns true if the selection changed.
func (s *State[T]) Select(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return false
	}
	return s.sel.Select(index)
}

// Deselect deselects the option at an absolute index. Out-of-range indices
// are rejected. Returns true if the selection changed.
func (s *State[T]) Deselect(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return false
	}
	return s.sel.Deselect(index)
}

// Clear empties the selection where the cardinality policy allows it.
// Returns true if the selection changed.
func (s *State[T]) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Clear()
}

// SelectedItems resolves the selected indices to their items in ascending
// index order. Indices that fall outside the list are skipped.
func (s *State[T]) SelectedItems() []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	indices := s.sel.Indices()
	out := make([]Entry[T], 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.items) {
			continue
		}
		out = append(out, Entry[T]{Index: i, Item: s.items[i]})
	}
	return out
}

// FirstSelected returns the selected entry with the smallest index.
func (s *State[T]) FirstSelected() (Entry[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.sel.Indices() {
		if i < 0 || i >= len(s.items) {
			continue
		}
		return Entry[T]{Index: i, Item: s.items[i]}, true
	}
	return Entry[T]{}, false
}

// Filter recomputes the filter memo for query. A non-empty query narrows the
// list to the items the filter function accepts and is remembered so that an
// option-set replacement can reapply it; an empty query clears the filter.
func (s *State[T]) Filter(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.refilterLocked()
}

// Unfilter clears the filter so every option is visible again.
func (s *State[T]) Unfilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.filtered = FilterAll()
}

// Query returns the last non-empty query applied, if a filter is active.
func (s *State[T]) Query() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, s.query != ""
}

// FilterState returns the current filter memo.
func (s *State[T]) FilterState() Filtered {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// FilteredItems resolves the filter memo to the visible options in ascending
// index order, each paired with its selection membership.
func (s *State[T]) FilteredItems() []FilteredEntry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.filtered.IsAll():
		out := make([]FilteredEntry[T], len(s.items))
		for i, item := range s.items {
			out[i] = FilteredEntry[T]{Index: i, Selected: s.sel.Includes(i), Item: item}
		}
		return out
	case s.filtered.IsNone():
		return nil
	default:
		indices := s.filtered.indices
		out := make([]FilteredEntry[T], 0, len(indices))
		for _, i := range indices {
			if i < 0 || i >= len(s.items) {
				continue
			}
			out = append(out, FilteredEntry[T]{Index: i, Selected: s.sel.Includes(i), Item: s.items[i]})
		}
		return out
	}
}

// GetFiltered maps a position in the filtered view (the Nth visible row) back
// to its absolute index and item.
func (s *State[T]) GetFiltered(position int) (Entry[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if position < 0 {
		return Entry[T]{}, false
	}
	switch {
	case s.filtered.IsAll():
		// Unfiltered, position and index coincide.
		if position >= len(s.items) {
			return Entry[T]{}, false
		}
		return Entry[T]{Index: position, Item: s.items[position]}, true
	case s.filtered.IsNone():
		return Entry[T]{}, false
	default:
		if position >= len(s.filtered.indices) {
			return Entry[T]{}, false
		}
		i := s.filtered.indices[position]
		if i < 0 || i >= len(s.items) {
			return Entry[T]{}, false
		}
		return Entry[T]{Index: i, Item: s.items[i]}, true
	}
}

// FirstFiltered returns the visible entry with the smallest index.
func (s *State[T]) FirstFiltered() (Entry[T], bool) {
	return s.GetFiltered(0)
}

// ReplaceOptions swaps the backing list wholesale. The selection resets to
// the policy's default (index 0 for exactly-one, empty otherwise) and the
// stored query, if any, is reapplied against the new list.
func (s *State[T]) ReplaceOptions(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.sel.Mode() {
	case selection.ModeOne:
		s.sel = selection.One(0)
	case selection.ModeMaybeOne:
		s.sel = selection.None()
	case selection.ModeMultiple:
		s.sel = selection.Empty()
	}
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.refilterLocked()
}

// ReplaceOptionsReselecting swaps the backing list and carries the selection
// across: each previously selected item is looked up in the new list with eq
// and reselected at its new index. An exactly-one selection falls back to
// index 0 when its item is gone; the nullable policies drop unmatched items.
// A nil eq behaves like ReplaceOptions.
func (s *State[T]) ReplaceOptionsReselecting(items []T, eq EqualFunc[T]) {
	if eq == nil {
		s.ReplaceOptions(items)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]T, len(items))
	copy(next, items)

	switch s.sel.Mode() {
	case selection.ModeOne:
		idx := 0
		if old, ok := s.itemAtLocked(s.sel.Indices()); ok {
			if pos := indexOf(next, old, eq); pos >= 0 {
				idx = pos
			}
		}
		s.sel = selection.One(idx)
	case selection.ModeMaybeOne:
		reselected := selection.None()
		if old, ok := s.itemAtLocked(s.sel.Indices()); ok {
			if pos := indexOf(next, old, eq); pos >= 0 {
				reselected = selection.Some(pos)
			}
		}
		s.sel = reselected
	case selection.ModeMultiple:
		var positions []int
		for _, i := range s.sel.Indices() {
			if i < 0 || i >= len(s.items) {
				continue
			}
			if pos := indexOf(next, s.items[i], eq); pos >= 0 {
				positions = append(positions, pos)
			}
		}
		s.sel = selection.Multiple(positions...)
	}

	s.items = next
	s.refilterLocked()
}

// refilterLocked recomputes the filter memo from the stored query. Caller
// holds the write lock.
func (s *State[T]) refilterLocked() {
	if s.query == "" {
		s.filtered = FilterAll()
		return
	}
	var indices []int
	for i, item := range s.items {
		if s.filterFn == nil || s.filterFn(item, s.query) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		s.filtered = FilterNone()
		return
	}
	s.filtered = Filtered{kind: filteredSome, indices: indices}
}

// itemAtLocked resolves the first in-range index of an Indices() result.
func (s *State[T]) itemAtLocked(indices []int) (T, bool) {
	for _, i := range indices {
		if i >= 0 && i < len(s.items) {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

func indexOf[T any](items []T, target T, eq EqualFunc[T]) int {
	for i, item := range items {
		if eq(target, item) {
			return i
		}
	}
	return -1
}
