package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

type fakeGroups map[string]string // child group -> parent group it loads after

func (f fakeGroups) Precedes(a, b string) bool {
	seen := map[string]bool{}
	cur := b
	for {
		parent, ok := f[cur]
		if !ok || seen[cur] {
			return false
		}
		seen[cur] = true
		if parent == a {
			return true
		}
		cur = parent
	}
}

// Scenario A: Base.esm (master), ModA.esp, ModB.esp; ModB declares
// master Base.esm; no metadata. Expected: Base.esm, ModA.esp, ModB.esp.
func TestSort_ScenarioA_MasterPartitionAndNameTieBreak(t *testing.T) {
	plugins := []Plugin{
		{Name: "Base.esm", IsMaster: true, LoadOrderIndex: 0, HasLoadOrderIndex: true},
		{Name: "ModA.esp", LoadOrderIndex: 1, HasLoadOrderIndex: true},
		{Name: "ModB.esp", Masters: []string{"Base.esm"}, LoadOrderIndex: 2, HasLoadOrderIndex: true},
	}
	order, err := Sort(plugins, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Base.esm", "ModA.esp", "ModB.esp"}, order)
}

// Scenario B: as A, plus userlist sets priority 10 on ModB. Expected:
// Base.esm, ModB.esp, ModA.esp.
func TestSort_ScenarioB_UserPriorityReorders(t *testing.T) {
	plugins := []Plugin{
		{Name: "Base.esm", IsMaster: true, LoadOrderIndex: 0, HasLoadOrderIndex: true},
		{Name: "ModA.esp", LoadOrderIndex: 1, HasLoadOrderIndex: true},
		{Name: "ModB.esp", Masters: []string{"Base.esm"}, LoadOrderIndex: 2, HasLoadOrderIndex: true, PriorityValue: 10, PrioritySet: true},
	}
	order, err := Sort(plugins, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Base.esm", "ModB.esp", "ModA.esp"}, order)
}

// Scenario C: as A, plus masterlist edge ModA load_after ModB and
// userlist edge ModB load_after ModA. Expected: CyclicInteractionError
// naming both plugins.
func TestSort_ScenarioC_CyclicLoadAfterDetected(t *testing.T) {
	plugins := []Plugin{
		{Name: "Base.esm", IsMaster: true, LoadOrderIndex: 0, HasLoadOrderIndex: true},
		{Name: "ModA.esp", LoadOrderIndex: 1, HasLoadOrderIndex: true, LoadAfter: []string{"ModB.esp"}},
		{Name: "ModB.esp", Masters: []string{"Base.esm"}, LoadOrderIndex: 2, HasLoadOrderIndex: true, LoadAfter: []string{"ModA.esp"}},
	}
	_, err := Sort(plugins, nil)
	require.Error(t, err)

	kind, ok := ordinatorerrors.Of(err)
	require.True(t, ok)
	assert.Equal(t, ordinatorerrors.KindCyclicInteraction, kind)
}

// Scenario F: groups A and B with B after A; plugin P in group B, Q in
// group A, both non-master, no other edges. Expected: Q, P.
func TestSort_ScenarioF_GroupPrecedence(t *testing.T) {
	plugins := []Plugin{
		{Name: "P.esp", HasGroup: true, Group: "B", LoadOrderIndex: 0, HasLoadOrderIndex: true},
		{Name: "Q.esp", HasGroup: true, Group: "A", LoadOrderIndex: 1, HasLoadOrderIndex: true},
	}
	groups := fakeGroups{"B": "A"}
	order, err := Sort(plugins, groups)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q.esp", "P.esp"}, order)
}

func TestSort_Determinism(t *testing.T) {
	plugins := []Plugin{
		{Name: "Base.esm", IsMaster: true, LoadOrderIndex: 0, HasLoadOrderIndex: true},
		{Name: "Zeta.esp", LoadOrderIndex: 1, HasLoadOrderIndex: true},
		{Name: "Alpha.esp", LoadOrderIndex: 2, HasLoadOrderIndex: true},
	}
	first, err := Sort(plugins, nil)
	require.NoError(t, err)
	second, err := Sort(plugins, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSort_GroupEdgeRejectedIfCycleForming(t *testing.T) {
	// P is in group B (after A), but a hard load_after edge already
	// forces P before Q despite Q being in group A. The group edge
	// Q -> P would close a cycle and must be silently dropped.
	plugins := []Plugin{
		{Name: "P.esp", HasGroup: true, Group: "B", LoadOrderIndex: 0, HasLoadOrderIndex: true},
		{Name: "Q.esp", HasGroup: true, Group: "A", LoadOrderIndex: 1, HasLoadOrderIndex: true, LoadAfter: []string{"P.esp"}},
	}
	groups := fakeGroups{"B": "A"}
	order, err := Sort(plugins, groups)
	require.NoError(t, err)
	assert.Equal(t, []string{"P.esp", "Q.esp"}, order)
}
