package pluginview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_NameKeyLowercases(t *testing.T) {
	v := View{Name: "Example.ESP"}
	assert.Equal(t, "example.esp", v.NameKey())
}

func TestView_IsNonMaster(t *testing.T) {
	assert.True(t, View{IsMaster: false}.IsNonMaster())
	assert.False(t, View{IsMaster: true}.IsNonMaster())
}

func TestView_HasMasterIsCaseInsensitive(t *testing.T) {
	v := View{Masters: []string{"Skyrim.esm", "Update.esm"}}
	assert.True(t, v.HasMaster("SKYRIM.ESM"))
	assert.True(t, v.HasMaster("update.esm"))
	assert.False(t, v.HasMaster("Dawnguard.esm"))
}
