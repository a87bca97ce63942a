package pluginview

import "strings"

// View is the immutable snapshot described in spec.md §3. It is created
// when the game cache loads a file, never mutated, and destroyed when the
// cache is cleared.
type View struct {
	Name     string
	IsMaster bool
	IsEmpty  bool
	IsLight  bool
	Masters  []string
	FormIDs  map[uint32]struct{}
	CRC      uint32
	Version  string
}

// NameKey is the case-insensitive map key used by the game cache.
func (v View) NameKey() string {
	return strings.ToLower(v.Name)
}

// IsNonMaster reports whether v participates in the master/non-master
// partition as a non-master. Light plugins count as non-masters for the
// partition rule even though they occupy a shared index slot in-game
// (glossary: "Light plugin").
func (v View) IsNonMaster() bool {
	return !v.IsMaster
}

// HasMaster reports whether name appears in v's declared master list,
// case-insensitively.
func (v View) HasMaster(name string) bool {
	for _, m := range v.Masters {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}
