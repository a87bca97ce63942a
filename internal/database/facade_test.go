package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ordinator-tools/ordinator/internal/gamecache"
	"github.com/ordinator-tools/ordinator/internal/loadorder"
	"github.com/ordinator-tools/ordinator/internal/metadata"
	"github.com/ordinator-tools/ordinator/pkg/pluginview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInspector struct {
	views map[string]pluginview.View
}

func (s *stubInspector) Inspect(path string) (pluginview.View, error) {
	name := filepath.Base(path)
	if v, ok := s.views[name]; ok {
		return v, nil
	}
	return pluginview.View{Name: name}, nil
}

func newTestDatabase(t *testing.T, pluginsList string) (*Database, *gamecache.Cache) {
	t.Helper()
	dataDir := t.TempDir()
	listPath := filepath.Join(dataDir, "plugins.txt")
	require.NoError(t, os.WriteFile(listPath, []byte(pluginsList), 0o644))

	handler, err := loadorder.NewFileHandler(listPath, dataDir)
	require.NoError(t, err)

	inspector := &stubInspector{views: map[string]pluginview.View{
		"Skyrim.esm": {Name: "Skyrim.esm", IsMaster: true},
		"Update.esm": {Name: "Update.esm", IsMaster: true},
		"Example.esp": {Name: "Example.esp", IsMaster: false, Masters: []string{"Skyrim.esm"}},
	}}

	cache := gamecache.New(inspector, handler, dataDir)
	resolver := gamecache.NewResolver(cache, handler, dataDir)
	return New(cache, resolver), cache
}

func TestDatabase_ActivePluginsDelegatesToHandler(t *testing.T) {
	db, _ := newTestDatabase(t, "*Skyrim.esm\n*Update.esm\nInactive.esp\n*Example.esp\n")

	active, err := db.ActivePlugins()
	require.NoError(t, err)
	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Example.esp"}, active)
}

func TestDatabase_PluginsForSortBuildsSorterInput(t *testing.T) {
	db, _ := newTestDatabase(t, "*Skyrim.esm\n*Update.esm\n*Example.esp\n")

	userPath := filepath.Join(t.TempDir(), "userlist.yml")
	require.NoError(t, os.WriteFile(userPath, []byte(`
plugins:
  - name: Example.esp
    priority: 5
    after:
      - name: Update.esm
`), 0o644))
	require.NoError(t, db.LoadLists("", userPath))

	plugins, err := db.PluginsForSort()
	require.NoError(t, err)
	require.Len(t, plugins, 3)

	byName := map[string]int{}
	for i, p := range plugins {
		byName[p.Name] = i
	}

	example := plugins[byName["Example.esp"]]
	assert.False(t, example.IsMaster)
	assert.Equal(t, []string{"Skyrim.esm"}, example.Masters)
	assert.Equal(t, []string{"Update.esm"}, example.LoadAfter)
	assert.True(t, example.PrioritySet)
	assert.EqualValues(t, 5, example.PriorityValue)
	assert.True(t, example.HasLoadOrderIndex)
	assert.Equal(t, 2, example.LoadOrderIndex)

	skyrim := plugins[byName["Skyrim.esm"]]
	assert.True(t, skyrim.IsMaster)
}

func TestDatabase_ApplyOrderPersistsThroughHandler(t *testing.T) {
	db, cache := newTestDatabase(t, "*Skyrim.esm\n*Update.esm\n")

	err := db.ApplyOrder([]string{"Update.esm", "Skyrim.esm"})
	require.NoError(t, err)

	idx, ok := cache.Handler().Index("Update.esm")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestDatabase_GroupsReturnsMergedGroupSet(t *testing.T) {
	db, _ := newTestDatabase(t, "")

	masterPath := filepath.Join(t.TempDir(), "masterlist.yml")
	require.NoError(t, os.WriteFile(masterPath, []byte(`
groups:
  - name: early
  - name: default
    after: [early]
`), 0o644))
	require.NoError(t, db.LoadLists(masterPath, ""))

	groups := db.Groups()
	require.NotNil(t, groups)
	assert.True(t, groups.Precedes("early", "default"))
}

func TestDatabase_SetGetDiscardUserMetadata(t *testing.T) {
	db, _ := newTestDatabase(t, "")

	pm := metadata.NewPluginMetadata("Example.esp")
	pm.Group = "default"
	pm.HasGroup = true
	db.SetPluginUserMetadata(pm)

	got, err := db.GetPluginUserMetadata("example.esp", false)
	require.NoError(t, err)
	assert.Equal(t, "default", got.Group)

	db.DiscardPluginUserMetadata("example.esp")
	got, err = db.GetPluginUserMetadata("example.esp", false)
	require.NoError(t, err)
	assert.False(t, got.HasGroup)
}
