package ll

import (
	"strings"

	"golang.org/x/tools/container/intsets"
)

// TerminalSet is a set of terminal values, as used for FIRST and FOLLOW sets.
// It may contain ε (value 0) and $ (value -1). Iteration order is ascending by
// value, i.e. $ and ε come first, followed by terminals in character order.
//
// The zero value is an empty set. TerminalSets must not be copied by value.
type TerminalSet struct {
	bits intsets.Sparse
}

// NewTerminalSet creates a set containing the given terminal values.
func NewTerminalSet(values ...int) *TerminalSet {
	ts := &TerminalSet{}
	for _, v := range values {
		ts.bits.Insert(v)
	}
	return ts
}

// Add inserts a terminal value. Returns true if the set changed.
func (ts *TerminalSet) Add(v int) bool {
	return ts.bits.Insert(v)
}

// Contains is true if v is a member of the set.
func (ts *TerminalSet) Contains(v int) bool {
	if ts == nil {
		return false
	}
	return ts.bits.Has(v)
}

// HasEpsilon is true if ε is a member of the set.
func (ts *TerminalSet) HasEpsilon() bool {
	return ts.Contains(EpsilonValue)
}

// HasEOF is true if $ is a member of the set.
func (ts *TerminalSet) HasEOF() bool {
	return ts.Contains(EOFValue)
}

// Len returns the number of members.
func (ts *TerminalSet) Len() int {
	if ts == nil {
		return 0
	}
	return ts.bits.Len()
}

// IsEmpty is true for the empty set.
func (ts *TerminalSet) IsEmpty() bool {
	return ts.Len() == 0
}

// Union adds all members of other. Returns true if the set changed.
//
// intsets.Sparse.UnionWith reports a change whenever a block of bits differs,
// even if the receiver is a superset of other, so growth is detected by size.
func (ts *TerminalSet) Union(other *TerminalSet) bool {
	if other == nil {
		return false
	}
	n := ts.bits.Len()
	ts.bits.UnionWith(&other.bits)
	return ts.bits.Len() != n
}

// UnionWithoutEpsilon adds all members of other except ε.
// Returns true if the set changed.
func (ts *TerminalSet) UnionWithoutEpsilon(other *TerminalSet) bool {
	if other == nil {
		return false
	}
	if !other.HasEpsilon() {
		return ts.Union(other)
	}
	changed := false
	for _, v := range other.Values() {
		if v != EpsilonValue && ts.bits.Insert(v) {
			changed = true
		}
	}
	return changed
}

// Copy returns a new set with the same members.
func (ts *TerminalSet) Copy() *TerminalSet {
	c := &TerminalSet{}
	if ts != nil {
		c.bits.Copy(&ts.bits)
	}
	return c
}

// Equals is true if both sets have the same members.
func (ts *TerminalSet) Equals(other *TerminalSet) bool {
	if ts == nil || other == nil {
		return ts.Len() == other.Len()
	}
	return ts.bits.Equals(&other.bits)
}

// Values returns the members in ascending order.
func (ts *TerminalSet) Values() []int {
	if ts == nil {
		return nil
	}
	return ts.bits.AppendTo(nil)
}

// Names returns the spellings of the members, in ascending order of values.
func (ts *TerminalSet) Names() []string {
	values := ts.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = TerminalName(v)
	}
	return names
}

func (ts *TerminalSet) String() string {
	return "{" + strings.Join(ts.Names(), ", ") + "}"
}
