package metadata

import "strings"

// File is a reference to a plugin by name, with an optional display name
// (used when rendering messages) and an optional condition (spec.md §3).
type File struct {
	Conditional
	Name    string
	Display string
}

// Key returns the case-insensitive identity used for set-union merges
// (spec.md §4.2: "key equality is case-insensitive for filenames and
// display names").
func (f File) Key() string {
	return strings.ToLower(f.Name)
}

// DisplayOrName returns the display name if one is set, the filename
// otherwise — what a message renderer should show the user.
func (f File) DisplayOrName() string {
	if f.Display != "" {
		return f.Display
	}
	return f.Name
}

// EqualFold reports whether two file references name the same plugin,
// case-insensitively.
func (f File) EqualFold(other File) bool {
	return strings.EqualFold(f.Name, other.Name)
}

// mergeFileSet unions two sets of File references by Key(), with b's
// members winning ties (b is "other" in MergeMetadata's sense, though for
// sets a tie only affects which Display/Condition value survives).
func mergeFileSet(a, b []File) []File {
	seen := make(map[string]int, len(a)+len(b))
	result := make([]File, 0, len(a)+len(b))
	for _, f := range a {
		seen[f.Key()] = len(result)
		result = append(result, f)
	}
	for _, f := range b {
		if i, ok := seen[f.Key()]; ok {
			result[i] = f
			continue
		}
		seen[f.Key()] = len(result)
		result = append(result, f)
	}
	return result
}
