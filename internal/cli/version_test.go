package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	assert.Equal(t, "version", cmd.Use)

	flag := cmd.Flags().Lookup("check-update")
	assert.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
