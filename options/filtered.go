package options

import "sort"

type filteredKind int

const (
	filteredAll filteredKind = iota
	filteredSome
	filteredNone
)

// Filtered is the memoized outcome of the last filter pass over the option
// list: every index passes, a nonempty ascending subset passes, or nothing
// passes. A subset is never empty; an empty match is always FilterNone.
type Filtered struct {
	kind    filteredKind
	indices []int // ascending, nonempty when kind == filteredSome
}

// FilterAll marks every index as passing.
func FilterAll() Filtered {
	return Filtered{kind: filteredAll}
}

// FilterNone marks no index as passing.
func FilterNone() Filtered {
	return Filtered{kind: filteredNone}
}

// FilterSome marks the given indices as passing. The input is copied, sorted
// and deduplicated; an empty input collapses to FilterNone.
func FilterSome(indices []int) Filtered {
	if len(indices) == 0 {
		return FilterNone()
	}
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Ints(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return Filtered{kind: filteredSome, indices: out[:n]}
}

// IsAll reports whether every index passes (no filter active).
func (f Filtered) IsAll() bool { return f.kind == filteredAll }

// IsNone reports whether a filter is active and nothing passes.
func (f Filtered) IsNone() bool { return f.kind == filteredNone }

// Indices returns the passing subset in ascending order, or nil when the
// result is all-pass or none-pass.
func (f Filtered) Indices() []int {
	if f.kind != filteredSome {
		return nil
	}
	out := make([]int, len(f.indices))
	copy(out, f.indices)
	return out
}
