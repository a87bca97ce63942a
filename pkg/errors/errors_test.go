package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFileAccess(t *testing.T) {
	err := NewFileAccess("/tmp/masterlist.yaml", "masterlist not found")

	assert.Equal(t, KindFileAccess, err.Kind)
	assert.Equal(t, 10, err.Code)
	assert.Equal(t, "/tmp/masterlist.yaml", err.Context["path"])
}

func TestKindsHaveDistinctCodes(t *testing.T) {
	kinds := []Kind{
		KindFileAccess, KindConditionSyntax, KindCyclicInteraction,
		KindGitState, KindInvalidArgument, KindUndefinedGroup,
	}
	seen := map[int]Kind{}
	for _, k := range kinds {
		c := code[k]
		if existing, ok := seen[c]; ok {
			t.Fatalf("kind %s and %s share code %d", k, existing, c)
		}
		seen[c] = k
	}
}

func TestOf_UnwrapsWrappedError(t *testing.T) {
	base := NewGitState("clone failed")
	wrapped := fmt.Errorf("updating masterlist: %w", base)

	kind, ok := Of(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindGitState, kind)
}

func TestIs_ComparesByKind(t *testing.T) {
	a := NewUndefinedGroup("Late")
	b := NewUndefinedGroup("Other")

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(NewGitState("x")))
}
