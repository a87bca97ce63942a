package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadataCommand_Subcommands(t *testing.T) {
	cmd := NewMetadataCommand()
	assert.Equal(t, "metadata", cmd.Use)

	get, _, err := cmd.Find([]string{"get", "Example.esp"})
	require.NoError(t, err)
	assert.NotNil(t, get.Flags().Lookup("include-user"))

	set, _, err := cmd.Find([]string{"set", "Example.esp"})
	require.NoError(t, err)
	assert.NotNil(t, set.Flags().Lookup("group"))
	assert.NotNil(t, set.Flags().Lookup("priority"))

	discard, _, err := cmd.Find([]string{"discard"})
	require.NoError(t, err)
	assert.NotNil(t, discard.Flags().Lookup("all"))
}

func TestParsePriority_RejectsNonInteger(t *testing.T) {
	_, err := parsePriority("not-a-number")
	assert.Error(t, err)
}

func TestParsePriority_ParsesValue(t *testing.T) {
	p, err := parsePriority("5")
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.Value)
	assert.True(t, p.IsSet())
}
