package sorter

import (
	"sort"
	"strings"
)

// EdgeRule tags the sorter rule (spec.md §4.4) that contributed an edge,
// so a cycle report can name the responsible rule for each link.
type EdgeRule string

const (
	RuleMasterPartition EdgeRule = "master_partition"
	RuleHeaderMaster     EdgeRule = "header_master"
	RuleLoadAfter        EdgeRule = "load_after"
	RuleRequirement      EdgeRule = "requirement"
	RuleGroup            EdgeRule = "group"
)

// Plugin is the sorter's view of one installed plugin: just enough
// information, gathered by the caller from the game cache and merged
// metadata, to build the graph. It intentionally has no dependency on
// pluginview or metalist so the sorter can be tested in isolation.
type Plugin struct {
	Name     string
	IsMaster bool
	Masters  []string // header-declared masters, in file order

	LoadAfter    []string // merged load_after references, names only
	Requirements []string // merged requirements references, names only

	Group    string
	HasGroup bool

	PriorityValue       int8
	PrioritySet         bool
	GlobalPriorityValue int8
	GlobalPrioritySet   bool

	// LoadOrderIndex is the plugin's position in the current load
	// order; HasLoadOrderIndex is false for a plugin not yet present in
	// it (newly installed, never activated).
	LoadOrderIndex    int
	HasLoadOrderIndex bool
}

type edge struct {
	to   int
	rule EdgeRule
}

// graph is the adjacency-list representation described in spec.md §9.
type graph struct {
	plugins []Plugin
	index   map[string]int // lowercase name -> vertex index
	adj     [][]edge
}

func newGraph(plugins []Plugin) *graph {
	g := &graph{
		plugins: plugins,
		index:   make(map[string]int, len(plugins)),
		adj:     make([][]edge, len(plugins)),
	}
	for i, p := range plugins {
		g.index[strings.ToLower(p.Name)] = i
	}
	return g
}

func (g *graph) vertex(name string) (int, bool) {
	i, ok := g.index[strings.ToLower(name)]
	return i, ok
}

func (g *graph) addEdge(from, to int, rule EdgeRule) {
	if from == to {
		return
	}
	g.adj[from] = append(g.adj[from], edge{to: to, rule: rule})
}

// buildHardEdges applies rules 1-4 of spec.md §4.4, which are never
// rejected: the master/non-master partition, header-declared masters,
// metadata load_after, and metadata requirements.
func (g *graph) buildHardEdges() {
	for i, p := range g.plugins {
		if !p.IsMaster {
			continue
		}
		for j, q := range g.plugins {
			if !q.IsMaster {
				g.addEdge(i, j, RuleMasterPartition)
			}
		}
	}

	for i, p := range g.plugins {
		for _, m := range p.Masters {
			if mi, ok := g.vertex(m); ok {
				g.addEdge(mi, i, RuleHeaderMaster)
			}
		}
		for _, la := range p.LoadAfter {
			if li, ok := g.vertex(la); ok {
				g.addEdge(li, i, RuleLoadAfter)
			}
		}
		for _, req := range p.Requirements {
			if ri, ok := g.vertex(req); ok {
				g.addEdge(ri, i, RuleRequirement)
			}
		}
	}
}

// reaches reports whether to is reachable from from via the edges
// currently in the graph, used by group-edge insertion to detect
// whether a candidate edge would close a cycle before adding it.
func (g *graph) reaches(from, to int) bool {
	if from == to {
		return true
	}
	visited := make([]bool, len(g.plugins))
	stack := []int{from}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		for _, e := range g.adj[v] {
			if e.to == to {
				return true
			}
			if !visited[e.to] {
				stack = append(stack, e.to)
			}
		}
	}
	return false
}

// visitOrder returns vertex indices ordered by the rule 6 comparator
// (spec.md §4.4): higher global_priority first, then higher priority
// first, then current load-order index, then case-insensitive name. This
// is the order rule 6 prefers in the final output; dfsOrder derives the
// DFS traversal order from it.
func (g *graph) visitOrder(indices []int) []int {
	out := append([]int(nil), indices...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		pa, pb := g.plugins[a], g.plugins[b]
		if pa.effectiveGlobalPriority() != pb.effectiveGlobalPriority() {
			return pa.effectiveGlobalPriority() > pb.effectiveGlobalPriority()
		}
		if pa.effectivePriority() != pb.effectivePriority() {
			return pa.effectivePriority() > pb.effectivePriority()
		}
		ia, ib := pa.orderIndex(), pb.orderIndex()
		if ia != ib {
			return ia < ib
		}
		return strings.ToLower(pa.Name) < strings.ToLower(pb.Name)
	})
	return out
}

func (p Plugin) effectivePriority() int8 {
	if !p.PrioritySet {
		return 0
	}
	return p.PriorityValue
}

func (p Plugin) effectiveGlobalPriority() int8 {
	if !p.GlobalPrioritySet {
		return 0
	}
	return p.GlobalPriorityValue
}

// dfsOrder returns indices in the reverse of visitOrder's rule 6
// preference order. topoSort's reverse-postorder construction flips
// whatever order vertices are visited in, so visiting the least-preferred
// vertex first is what makes the most-preferred vertex come out first
// after that final reversal (see DESIGN.md).
func (g *graph) dfsOrder(indices []int) []int {
	out := g.visitOrder(indices)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (p Plugin) orderIndex() int {
	if !p.HasLoadOrderIndex {
		return int(^uint(0) >> 1) // sort plugins with no prior position last
	}
	return p.LoadOrderIndex
}
