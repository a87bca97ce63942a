package metalist

import (
	"testing"

	"github.com/ordinator-tools/ordinator/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PluginWithGroupAndAfter(t *testing.T) {
	doc := []byte(`
groups:
  - name: early
  - name: default
    after: [early]
plugins:
  - name: Example.esp
    group: default
    after:
      - name: Master.esm
    tag: [Relevant.Dialogue.Changes]
`)
	list, err := Parse(doc, metadata.PriorityDefault)
	require.NoError(t, err)

	pm, ok := list.Get("example.esp")
	require.True(t, ok)
	assert.Equal(t, "default", pm.Group)
	assert.True(t, pm.HasGroup)
	require.Len(t, pm.LoadAfter, 1)
	assert.Equal(t, "Master.esm", pm.LoadAfter[0].Name)
	assert.True(t, list.Groups.Precedes("early", "default"))
}

func TestParse_UndefinedGroupRejected(t *testing.T) {
	doc := []byte(`
plugins:
  - name: Example.esp
    group: ghost
`)
	_, err := Parse(doc, metadata.PriorityUser)
	assert.Error(t, err)
}

func TestParse_MalformedConditionRejected(t *testing.T) {
	doc := []byte(`
plugins:
  - name: Example.esp
    after:
      - name: Master.esm
        condition: "file("
`)
	_, err := Parse(doc, metadata.PriorityUser)
	assert.Error(t, err)
}

func TestMerge_UserWinsOnScalarsKeepsMasterEntriesOnlyOnOneSide(t *testing.T) {
	master := New()
	master.KnownTags = []string{"Relev"}
	master.Plugins["shared.esp"] = metadata.PluginMetadata{
		Name: "shared.esp", Group: "default", HasGroup: true,
	}
	master.Plugins["masteronly.esp"] = metadata.PluginMetadata{Name: "masteronly.esp"}

	user := New()
	user.KnownTags = []string{"C.Climate"}
	user.Plugins["shared.esp"] = metadata.PluginMetadata{
		Name: "shared.esp", Group: "override", HasGroup: true,
	}
	user.Plugins["useronly.esp"] = metadata.PluginMetadata{Name: "useronly.esp"}

	merged := master.Merge(user)

	assert.ElementsMatch(t, []string{"Relev", "C.Climate"}, merged.KnownTags)

	shared, ok := merged.Get("shared.esp")
	require.True(t, ok)
	assert.Equal(t, "override", shared.Group)

	_, ok = merged.Get("masteronly.esp")
	assert.True(t, ok)
	_, ok = merged.Get("useronly.esp")
	assert.True(t, ok)
}

func TestSetDiscardDiscardAll(t *testing.T) {
	l := New()
	l.Set(metadata.PluginMetadata{Name: "Plugin.esp"})

	_, ok := l.Get("PLUGIN.ESP")
	assert.True(t, ok)

	l.Discard("plugin.esp")
	_, ok = l.Get("Plugin.esp")
	assert.False(t, ok)

	l.Set(metadata.PluginMetadata{Name: "A.esp"})
	l.Set(metadata.PluginMetadata{Name: "B.esp"})
	l.DiscardAll()
	assert.Empty(t, l.Plugins)
}
