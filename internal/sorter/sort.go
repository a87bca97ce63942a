package sorter

import (
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// CycleEdge is one link of a reported cycle: the plugin the edge comes
// from, the plugin it points to, and the rule (spec.md §4.4) that
// contributed the edge.
type CycleEdge struct {
	From string
	To   string
	Rule EdgeRule
}

// Cycle is the full loop reported by CyclicInteractionError's payload
// (spec.md §7): walking From->To of each entry in order returns to the
// first entry's From.
type Cycle []CycleEdge

type cycleError struct {
	cycle Cycle
}

type color uint8

const (
	white color = iota
	gray
	black
)

// Sort builds the graph described in spec.md §4.4 over plugins and
// returns a stable topological order (spec.md §4.5). groups resolves
// rule 5's group-precedence relation; pass nil if no groups are
// declared (every plugin is treated as belonging to the same group).
func Sort(plugins []Plugin, groups GroupOrder) ([]string, error) {
	g := newGraph(plugins)
	g.buildHardEdges()
	if groups == nil {
		groups = noGroups{}
	}
	g.addGroupEdges(groups)

	order, err := g.topoSort()
	if err != nil {
		return nil, err
	}

	out := make([]string, len(order))
	for i, v := range order {
		out[i] = g.plugins[v].Name
	}
	return out, nil
}

type noGroups struct{}

func (noGroups) Precedes(a, b string) bool { return false }

// topoSort performs the depth-first reverse-postorder traversal of
// spec.md §4.5: vertices are visited in the reverse of rule-6 comparator
// order (graph.dfsOrder) both at the outer level and among each vertex's
// unvisited neighbours, so that the final postorder reversal below
// restores rule 6's preferred-first order for any pair the hard and group
// edges leave unconstrained. A gray vertex reached again signals a cycle,
// reported by walking the DFS stack back to the repeat.
func (g *graph) topoSort() ([]int, error) {
	n := len(g.plugins)
	colors := make([]color, n)
	stack := make([]int, 0, n)
	stackRule := make([]EdgeRule, n) // stackRule[k] is the rule of the edge stack[k-1] -> stack[k]
	var postorder []int

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	outer := g.dfsOrder(all)

	var visit func(v int) *cycleError
	visit = func(v int) *cycleError {
		colors[v] = gray
		stack = append(stack, v)

		for _, to := range g.orderedTargets(v) {
			rule := g.ruleTo(v, to)
			switch colors[to] {
			case white:
				stackRule[len(stack)] = rule
				if ce := visit(to); ce != nil {
					return ce
				}
			case gray:
				return buildCycle(stack, stackRule, to, rule, g)
			case black:
				// already finished via another path; fine.
			}
		}

		colors[v] = black
		stack = stack[:len(stack)-1]
		postorder = append(postorder, v)
		return nil
	}

	for _, v := range outer {
		if colors[v] == white {
			if ce := visit(v); ce != nil {
				return nil, ordinatorerrors.NewCyclicInteraction(
					cycleMessage(ce.cycle),
					ce.cycle,
				)
			}
		}
	}

	reversed := make([]int, len(postorder))
	for i, v := range postorder {
		reversed[len(postorder)-1-i] = v
	}
	return reversed, nil
}

func (g *graph) orderedTargets(v int) []int {
	seen := map[int]bool{}
	var targets []int
	for _, e := range g.adj[v] {
		if seen[e.to] {
			continue
		}
		seen[e.to] = true
		targets = append(targets, e.to)
	}
	return g.dfsOrder(targets)
}

func (g *graph) ruleTo(from, to int) EdgeRule {
	for _, e := range g.adj[from] {
		if e.to == to {
			return e.rule
		}
	}
	return ""
}

func buildCycle(stack []int, stackRule []EdgeRule, repeat int, closingRule EdgeRule, g *graph) *cycleError {
	idx := -1
	for i, v := range stack {
		if v == repeat {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = 0
	}

	var cycle Cycle
	for i := idx + 1; i < len(stack); i++ {
		cycle = append(cycle, CycleEdge{
			From: g.plugins[stack[i-1]].Name,
			To:   g.plugins[stack[i]].Name,
			Rule: stackRule[i],
		})
	}
	cycle = append(cycle, CycleEdge{
		From: g.plugins[stack[len(stack)-1]].Name,
		To:   g.plugins[repeat].Name,
		Rule: closingRule,
	})
	return &cycleError{cycle: cycle}
}

func cycleMessage(cycle Cycle) string {
	if len(cycle) == 0 {
		return "cyclic plugin interaction detected"
	}
	msg := "cyclic plugin interaction: "
	for i, e := range cycle {
		if i > 0 {
			msg += " -> "
		}
		msg += e.From
	}
	msg += " -> " + cycle[0].From
	return msg
}
