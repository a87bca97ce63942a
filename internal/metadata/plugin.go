package metadata

import "strings"

// PluginMetadata is the mutable, filename-keyed metadata record described
// in spec.md §3. Name is the key; it is compared case-insensitively
// everywhere else in the system via NameKey.
type PluginMetadata struct {
	Name string

	Group    string
	HasGroup bool

	LoadAfter         []File
	Requirements      []File
	Incompatibilities []File

	Messages []Message

	Tags []Tag

	CleaningData []CleaningData

	Locations []Location

	Priority       Priority
	GlobalPriority Priority

	Enabled    bool
	EnabledSet bool
}

// NewPluginMetadata returns an entry for the given plugin name with no
// fields set; IsEnabled() on a zero-value entry reports true.
func NewPluginMetadata(name string) PluginMetadata {
	return PluginMetadata{Name: name}
}

// NameKey is the case-insensitive map key used by MetadataList and the
// game cache.
func (p PluginMetadata) NameKey() string {
	return strings.ToLower(p.Name)
}

// IsEnabled reports the effective enabled state: true unless this entry
// explicitly disabled itself.
func (p PluginMetadata) IsEnabled() bool {
	if !p.EnabledSet {
		return true
	}
	return p.Enabled
}

// IsEmpty reports whether this entry carries no metadata at all, which
// MergeMetadata uses to return the other operand unchanged.
func (p PluginMetadata) IsEmpty() bool {
	return !p.HasGroup &&
		len(p.LoadAfter) == 0 &&
		len(p.Requirements) == 0 &&
		len(p.Incompatibilities) == 0 &&
		len(p.Messages) == 0 &&
		len(p.Tags) == 0 &&
		len(p.CleaningData) == 0 &&
		len(p.Locations) == 0 &&
		!p.Priority.IsSet() &&
		!p.GlobalPriority.IsSet() &&
		!p.EnabledSet
}

// HasTagsOrCleaning reports whether this entry carries the two fields
// WriteMinimalList retains (spec.md §4.3).
func (p PluginMetadata) HasTagsOrCleaning() bool {
	return len(p.Tags) > 0 || len(p.CleaningData) > 0
}

// Minimal returns a copy carrying only the name, tags, and cleaning data
// (plus their conditions), per spec.md §4.3 WriteMinimalList.
func (p PluginMetadata) Minimal() PluginMetadata {
	return PluginMetadata{
		Name:         p.Name,
		Tags:         append([]Tag(nil), p.Tags...),
		CleaningData: append([]CleaningData(nil), p.CleaningData...),
	}
}
