package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTagsCommand(t *testing.T) {
	cmd := NewTagsCommand()
	assert.Equal(t, "tags", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("data-dir"))
}
