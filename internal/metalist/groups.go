package metalist

import (
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// GroupSet holds the group DAG declared by a metadata document's `groups`
// key (spec.md §6, §4.4 rule 5): each group names the groups it loads
// after.
type GroupSet struct {
	after map[string][]string
}

// NewGroupSet returns an empty GroupSet. The implicit "default" group
// always exists, matching the convention that ungrouped plugins belong
// to it.
func NewGroupSet() *GroupSet {
	return &GroupSet{after: map[string][]string{"default": nil}}
}

// Declare registers a group and the groups it loads after.
func (g *GroupSet) Declare(name string, after []string) {
	g.after[name] = append([]string(nil), after...)
}

// Has reports whether name was declared.
func (g *GroupSet) Has(name string) bool {
	_, ok := g.after[name]
	return ok
}

// Validate ensures every `after` reference names a declared group.
func (g *GroupSet) Validate() error {
	for name, afters := range g.after {
		for _, a := range afters {
			if !g.Has(a) {
				return ordinatorerrors.NewUndefinedGroup(a, ordinatorerrors.WithContext("referenced_by", name))
			}
		}
	}
	return nil
}

// Precedes reports whether a precedes b transitively in the group DAG
// (a == b is never a precedence). Used by the sorter to decide rule 5
// group edges.
func (g *GroupSet) Precedes(a, b string) bool {
	if a == b {
		return false
	}
	visited := map[string]bool{}
	var walk func(name string) bool
	walk = func(name string) bool {
		if visited[name] {
			return false
		}
		visited[name] = true
		for _, parent := range g.after[name] {
			if parent == a {
				return true
			}
			if walk(parent) {
				return true
			}
		}
		return false
	}
	return walk(b)
}
