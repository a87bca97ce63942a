package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_MergeOtherWinsWhenSet(t *testing.T) {
	self := Priority{Value: 5, Flag: PriorityDefault}
	other := Priority{Value: 10, Flag: PriorityUser}

	assert.Equal(t, other, self.Merge(other))
	assert.Equal(t, self, self.Merge(UnsetPriority))
}

func TestPluginMetadata_MergeIdentity(t *testing.T) {
	p := PluginMetadata{
		Name:     "Test.esp",
		HasGroup: true,
		Group:    "g",
		LoadAfter: []File{
			{Name: "Base.esm"},
		},
		Priority: Priority{Value: 3, Flag: PriorityDefault},
	}

	assert.Equal(t, p, p.MergeMetadata(PluginMetadata{}))

	empty := NewPluginMetadata("")
	merged := empty.MergeMetadata(p)
	merged.Name = p.Name // Name isn't part of the merge contract, it's the map key
	assert.Equal(t, p, merged)
}

func TestPluginMetadata_MergeScalarsOtherWins(t *testing.T) {
	master := PluginMetadata{
		Name:     "Test.esp",
		HasGroup: true,
		Group:    "masterGroup",
		Priority: Priority{Value: 1, Flag: PriorityDefault},
	}
	user := PluginMetadata{
		Name:     "Test.esp",
		HasGroup: true,
		Group:    "userGroup",
	}

	merged := master.MergeMetadata(user)
	assert.Equal(t, "userGroup", merged.Group)
	// user never set priority, so master's priority survives.
	assert.Equal(t, master.Priority, merged.Priority)
}

func TestPluginMetadata_MergeSetUnionByKey(t *testing.T) {
	master := PluginMetadata{
		Name: "Test.esp",
		LoadAfter: []File{
			{Name: "Base.esm"},
			{Name: "Shared.esp", Display: "old display"},
		},
	}
	user := PluginMetadata{
		Name: "Test.esp",
		LoadAfter: []File{
			{Name: "SHARED.ESP", Display: "new display"}, // same key, case-insensitive
			{Name: "Extra.esp"},
		},
	}

	merged := master.MergeMetadata(user)
	assert.Len(t, merged.LoadAfter, 3)

	var sharedDisplay string
	for _, f := range merged.LoadAfter {
		if f.Key() == "shared.esp" {
			sharedDisplay = f.Display
		}
	}
	assert.Equal(t, "new display", sharedDisplay)
}

func TestPluginMetadata_MergeMessagesConcatenateSelfFirst(t *testing.T) {
	master := PluginMetadata{
		Name:     "Test.esp",
		Messages: []Message{{Type: MessageWarn}},
	}
	user := PluginMetadata{
		Name:     "Test.esp",
		Messages: []Message{{Type: MessageError}},
	}

	merged := master.MergeMetadata(user)
	assert.Len(t, merged.Messages, 2)
	assert.Equal(t, MessageWarn, merged.Messages[0].Type)
	assert.Equal(t, MessageError, merged.Messages[1].Type)
}

func TestPluginMetadata_EnabledDefaultsTrue(t *testing.T) {
	p := NewPluginMetadata("Test.esp")
	assert.True(t, p.IsEnabled())

	p.Enabled = false
	p.EnabledSet = true
	assert.False(t, p.IsEnabled())
}

func TestPluginMetadata_Minimal(t *testing.T) {
	p := PluginMetadata{
		Name:     "Test.esp",
		HasGroup: true,
		Group:    "g",
		Tags:     []Tag{{Name: "Relev", Addition: true}},
		CleaningData: []CleaningData{
			{CRC: 0xDEADBEEF, Utility: "TES5Edit"},
		},
	}

	min := p.Minimal()
	assert.Equal(t, "Test.esp", min.Name)
	assert.False(t, min.HasGroup)
	assert.Empty(t, min.Group)
	assert.Equal(t, p.Tags, min.Tags)
	assert.Equal(t, p.CleaningData, min.CleaningData)
	assert.True(t, min.HasTagsOrCleaning())
}
