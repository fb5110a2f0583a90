// Package selection models the chosen indices of an option list under a
// cardinality policy: always exactly one, at most one, or any number.
package selection

import "sort"

// Mode is the cardinality policy of a Selection.
type Mode int

const (
	// ModeOne always holds exactly one index; it can be replaced but never cleared.
	ModeOne Mode = iota
	// ModeMaybeOne holds at most one index.
	ModeMaybeOne
	// ModeMultiple holds any number of unique indices, iterated in ascending order.
	ModeMultiple
)

// Selection is a tagged variant over the three cardinality modes. The zero
// value is ModeOne at index 0. Selection does not know the option list's
// length; bounds checking belongs to the layer that owns the list.
type Selection struct {
	mode    Mode
	index   int   // ModeOne current index, ModeMaybeOne value when present
	present bool  // ModeMaybeOne only
	indices []int // ModeMultiple: ascending, unique
}

// One returns a ModeOne selection holding index.
func One(index int) Selection {
	return Selection{mode: ModeOne, index: index}
}

// Some returns a ModeMaybeOne selection holding index.
func Some(index int) Selection {
	return Selection{mode: ModeMaybeOne, index: index, present: true}
}

// None returns a ModeMaybeOne selection holding nothing.
func None() Selection {
	return Selection{mode: ModeMaybeOne}
}

// Empty returns a ModeMultiple selection with nothing selected.
func Empty() Selection {
	return Selection{mode: ModeMultiple}
}

// Multiple returns a ModeMultiple selection holding the given indices.
// Duplicates are dropped and order does not matter.
func Multiple(indices ...int) Selection {
	s := Selection{mode: ModeMultiple}
	for _, i := range indices {
		s.insert(i)
	}
	return s
}

// Mode returns the cardinality policy.
func (s *Selection) Mode() Mode { return s.mode }

// Len returns the number of selected indices.
func (s *Selection) Len() int {
	switch s.mode {
	case ModeOne:
		return 1
	case ModeMaybeOne:
		if s.present {
			return 1
		}
		return 0
	case ModeMultiple:
		return len(s.indices)
	}
	return 0
}

// IsEmpty reports whether nothing is selected. Always false for ModeOne.
func (s *Selection) IsEmpty() bool {
	return s.Len() == 0
}

// Indices returns the selected indices in ascending order. The returned
// slice is a copy.
func (s *Selection) Indices() []int {
	switch s.mode {
	case ModeOne:
		return []int{s.index}
	case ModeMaybeOne:
		if s.present {
			return []int{s.index}
		}
		return nil
	case ModeMultiple:
		if len(s.indices) == 0 {
			return nil
		}
		out := make([]int, len(s.indices))
		copy(out, s.indices)
		return out
	}
	return nil
}

// Includes reports whether index is selected.
func (s *Selection) Includes(index int) bool {
	switch s.mode {
	case ModeOne:
		return s.index == index
	case ModeMaybeOne:
		return s.present && s.index == index
	case ModeMultiple:
		i := sort.SearchInts(s.indices, index)
		return i < len(s.indices) && s.indices[i] == index
	}
	return false
}

// IsMultiple reports whether the selection can hold more than one index.
func (s *Selection) IsMultiple() bool {
	return s.mode == ModeMultiple
}

// IsNullable reports whether an empty selection is a legal state.
func (s *Selection) IsNullable() bool {
	return s.mode == ModeMaybeOne || s.mode == ModeMultiple
}

// Select adds index to the selection. For the single-valued modes it
// replaces the current value. Returns true if the selection changed.
func (s *Selection) Select(index int) bool {
	switch s.mode {
	case ModeOne:
		if s.index == index {
			return false
		}
		s.index = index
		return true
	case ModeMaybeOne:
		if s.present && s.index == index {
			return false
		}
		s.index = index
		s.present = true
		return true
	case ModeMultiple:
		return s.insert(index)
	}
	return false
}

// Deselect removes index from the selection. ModeOne never deselects.
// Returns true if the selection changed.
func (s *Selection) Deselect(index int) bool {
	switch s.mode {
	case ModeOne:
		return false
	case ModeMaybeOne:
		if !s.present || s.index != index {
			return false
		}
		s.present = false
		return true
	case ModeMultiple:
		i := sort.SearchInts(s.indices, index)
		if i >= len(s.indices) || s.indices[i] != index {
			return false
		}
		s.indices = append(s.indices[:i], s.indices[i+1:]...)
		return true
	}
	return false
}

// Clear empties the selection. ModeOne never clears.
// Returns true if the selection changed.
func (s *Selection) Clear() bool {
	switch s.mode {
	case ModeOne:
		return false
	case ModeMaybeOne:
		if !s.present {
			return false
		}
		s.present = false
		return true
	case ModeMultiple:
		if len(s.indices) == 0 {
			return false
		}
		s.indices = s.indices[:0]
		return true
	}
	return false
}

// insert keeps indices ascending and unique.
func (s *Selection) insert(index int) bool {
	i := sort.SearchInts(s.indices, index)
	if i < len(s.indices) && s.indices[i] == index {
		return false
	}
	s.indices = append(s.indices, 0)
	copy(s.indices[i+1:], s.indices[i:])
	s.indices[i] = index
	return true
}
