package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand_RegistersAllSubcommands(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "sort")
	assert.Contains(t, names, "masterlist")
	assert.Contains(t, names, "tags")
	assert.Contains(t, names, "messages")
	assert.Contains(t, names, "metadata")
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "self-update")
}
