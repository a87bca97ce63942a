package pseudosem

import (
	"strconv"
	"strings"
)

// Version is a parsed pseudosem version: a sequence of components, each
// either numeric or alphabetic, split on runs of non-alphanumeric
// separators.
type Version struct {
	components []component
	raw        string
}

type component struct {
	isNumeric bool
	number    uint64
	text      string // lower-cased, used when isNumeric is false
}

// Parse splits s into pseudosem components. It never fails: any input,
// however malformed, parses to some (possibly empty) Version, since
// version fields are parsed best-effort from a plugin's description text
// (spec.md §3).
func Parse(s string) Version {
	var components []component
	var current strings.Builder
	var currentIsDigit bool
	hasCurrent := false

	flush := func() {
		if !hasCurrent {
			return
		}
		if currentIsDigit {
			n, _ := strconv.ParseUint(current.String(), 10, 64)
			components = append(components, component{isNumeric: true, number: n})
		} else {
			components = append(components, component{text: strings.ToLower(current.String())})
		}
		current.Reset()
		hasCurrent = false
	}

	for _, r := range s {
		isDigit := r >= '0' && r <= '9'
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')

		if !isDigit && !isAlpha {
			flush()
			continue
		}

		if hasCurrent && isDigit != currentIsDigit {
			flush()
		}
		current.WriteRune(r)
		currentIsDigit = isDigit
		hasCurrent = true
	}
	flush()

	return Version{components: components, raw: s}
}

// String returns the original, unparsed version text.
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other, using the padding rule from the glossary: a missing component on
// either side compares as zero (numeric) or empty string (alphabetic),
// using the type of whichever side does have a component at that index.
func (v Version) Compare(other Version) int {
	n := len(v.components)
	if len(other.components) > n {
		n = len(other.components)
	}

	for i := 0; i < n; i++ {
		a, aOK := componentAt(v.components, i)
		b, bOK := componentAt(other.components, i)

		switch {
		case !aOK && !bOK:
			continue
		case !aOK:
			a = zeroLike(b)
		case !bOK:
			b = zeroLike(a)
		}

		if c := compareComponent(a, b); c != 0 {
			return c
		}
	}
	return 0
}

func componentAt(cs []component, i int) (component, bool) {
	if i < 0 || i >= len(cs) {
		return component{}, false
	}
	return cs[i], true
}

func zeroLike(like component) component {
	if like.isNumeric {
		return component{isNumeric: true, number: 0}
	}
	return component{text: ""}
}

func compareComponent(a, b component) int {
	if a.isNumeric && b.isNumeric {
		switch {
		case a.number < b.number:
			return -1
		case a.number > b.number:
			return 1
		default:
			return 0
		}
	}
	// Mixed numeric/alphabetic or both alphabetic: compare as strings.
	as, bs := a.text, b.text
	if a.isNumeric {
		as = strconv.FormatUint(a.number, 10)
	}
	if b.isNumeric {
		bs = strconv.FormatUint(b.number, 10)
	}
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// Equal reports whether v and other compare equal.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// LessThan reports whether v sorts before other.
func (v Version) LessThan(other Version) bool { return v.Compare(other) < 0 }

// CompareOp evaluates "v <op> other" for the six comparators the condition
// language supports (spec.md §4.1).
func CompareOp(v, other Version, op string) bool {
	c := v.Compare(other)
	switch op {
	case "==":
		return c == 0
	case "!=":
		return c != 0
	case "<":
		return c < 0
	case ">":
		return c > 0
	case "<=":
		return c <= 0
	case ">=":
		return c >= 0
	default:
		return false
	}
}
