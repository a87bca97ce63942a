package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelfUpdateCommand(t *testing.T) {
	cmd := NewSelfUpdateCommand()
	assert.Equal(t, "self-update", cmd.Use)
	assert.Contains(t, cmd.Aliases, "update")

	flag := cmd.Flags().Lookup("force")
	assert.NotNil(t, flag)
}
