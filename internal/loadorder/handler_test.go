package loadorder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePluginsList(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "plugins.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFileHandler_ActivePluginsPreservesOrder(t *testing.T) {
	path := writePluginsList(t, "Skyrim.esm\n*Update.esm\n# comment\n*Dawnguard.esm\nUnused.esp\n")

	h, err := NewFileHandler(path, t.TempDir())
	require.NoError(t, err)

	active, err := h.ActivePlugins()
	require.NoError(t, err)
	assert.Equal(t, []string{"Update.esm", "Dawnguard.esm"}, active)
}

func TestFileHandler_IsActiveAndIndex(t *testing.T) {
	path := writePluginsList(t, "Skyrim.esm\n*Update.esm\n")
	h, err := NewFileHandler(path, t.TempDir())
	require.NoError(t, err)

	active, err := h.IsActive("update.esm")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = h.IsActive("skyrim.esm")
	require.NoError(t, err)
	assert.False(t, active)

	idx, ok := h.Index("Update.esm")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = h.Index("NeverSeen.esp")
	assert.False(t, ok)
}

func TestFileHandler_PersistPreservesActiveStateAndUpdatesIndex(t *testing.T) {
	path := writePluginsList(t, "Skyrim.esm\n*Update.esm\n*Dawnguard.esm\n")
	h, err := NewFileHandler(path, t.TempDir())
	require.NoError(t, err)

	err = h.Persist([]string{"Dawnguard.esm", "Skyrim.esm", "Update.esm"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*Dawnguard.esm\nSkyrim.esm\n*Update.esm\n", string(data))

	idx, ok := h.Index("Skyrim.esm")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	active, err := h.IsActive("Dawnguard.esm")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestFileHandler_MissingListIsNotAnError(t *testing.T) {
	h, err := NewFileHandler(filepath.Join(t.TempDir(), "plugins.txt"), t.TempDir())
	require.NoError(t, err)

	active, err := h.ActivePlugins()
	require.NoError(t, err)
	assert.Empty(t, active)
}
