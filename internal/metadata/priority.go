package metadata

// PriorityFlag distinguishes the three states a Priority can be in.
type PriorityFlag int

const (
	// PriorityUnset means no priority was ever recorded for this entry.
	PriorityUnset PriorityFlag = iota
	// PriorityDefault means a masterlist entry set this priority.
	PriorityDefault
	// PriorityUser means a userlist entry set this priority.
	PriorityUser
)

// Priority is a signed tri-state value: unset, default-set, or user-set.
// An unset priority behaves as zero for ordering purposes but is always
// overwritten by any set priority on merge (spec.md §3, §4.2).
type Priority struct {
	Value int8
	Flag  PriorityFlag
}

// UnsetPriority is the zero value, spelled out for clarity at call sites.
var UnsetPriority = Priority{Flag: PriorityUnset}

// IsSet reports whether this priority carries an explicit value.
func (p Priority) IsSet() bool {
	return p.Flag != PriorityUnset
}

// Effective returns the value to use for ordering comparisons: zero if
// unset, the recorded value otherwise.
func (p Priority) Effective() int8 {
	if !p.IsSet() {
		return 0
	}
	return p.Value
}

// Merge implements the scalar merge rule from spec.md §4.2: other wins if
// it is set, self is kept otherwise.
func (p Priority) Merge(other Priority) Priority {
	if other.IsSet() {
		return other
	}
	return p
}

// Compare orders two priorities by effective value, higher first, matching
// rule 6(a)/(b) of the sorter's tie-break policy (spec.md §4.4). When two
// priorities carry the same effective value but different Flag, the one
// with the more specific flag (user over default over unset) sorts
// first — otherwise two equal-magnitude priorities with different
// provenance would compare as a true tie and the sort would have to fall
// through to a later tie-break rule for no good reason.
// It returns a positive number if p should sort before other, negative if
// after, and zero if they are equal for ordering purposes.
func (p Priority) Compare(other Priority) int {
	if d := int(p.Effective()) - int(other.Effective()); d != 0 {
		return d
	}
	return int(p.Flag) - int(other.Flag)
}
