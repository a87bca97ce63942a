package metalist

import (
	"bytes"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ordinator-tools/ordinator/internal/condition"
	"github.com/ordinator-tools/ordinator/internal/metadata"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// MetadataList is the unordered collection of plugin entries plus global
// messages and known tags described in spec.md §3. Masterlist and
// userlist are both backed by this type; a masterlist additionally
// carries provenance (internal/masterlist).
type MetadataList struct {
	Plugins      map[string]metadata.PluginMetadata // keyed by NameKey()
	Globals      []metadata.Message
	KnownTags    []string
	Groups       *GroupSet
}

// New returns an empty MetadataList.
func New() *MetadataList {
	return &MetadataList{
		Plugins: map[string]metadata.PluginMetadata{},
		Groups:  NewGroupSet(),
	}
}

// Load reads and validates a metadata document from path. Every
// condition string in the document is parsed eagerly; a malformed
// condition fails the load rather than silently dropping the entry
// (spec.md §3 invariant). priorityFlag tags any priority/global_priority
// value the document sets, distinguishing a masterlist load
// (metadata.PriorityDefault) from a userlist load (metadata.PriorityUser)
// so MergeMetadata's "other wins if set" scalar rule (spec.md §4.2) has
// the right provenance to compare against.
func Load(path string, priorityFlag metadata.PriorityFlag) (*MetadataList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ordinatorerrors.NewFileAccess(path, "reading metadata list", ordinatorerrors.WithCause(err))
	}
	return Parse(data, priorityFlag)
}

// Parse builds a MetadataList from raw YAML bytes.
func Parse(data []byte, priorityFlag metadata.PriorityFlag) (*MetadataList, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, ordinatorerrors.NewConditionSyntax("<document>", "parsing metadata document: "+err.Error(), ordinatorerrors.WithCause(err))
	}

	list := New()
	list.KnownTags = append([]string(nil), doc.BashTags...)

	groups := NewGroupSet()
	for _, g := range doc.Groups {
		groups.Declare(g.Name, g.After)
	}
	if err := groups.Validate(); err != nil {
		return nil, err
	}
	list.Groups = groups

	for _, rm := range doc.Globals {
		msg, err := rm.parse()
		if err != nil {
			return nil, ordinatorerrors.NewConditionSyntax("<global message>", err.Error(), ordinatorerrors.WithCause(err))
		}
		if err := validateCondition(msg.Condition); err != nil {
			return nil, err
		}
		list.Globals = append(list.Globals, msg)
	}

	for _, rp := range doc.Plugins {
		pm, err := rp.parse(groups, priorityFlag)
		if err != nil {
			return nil, err
		}
		list.Plugins[pm.NameKey()] = pm
	}

	return list, nil
}

func (rp rawPlugin) parse(groups *GroupSet, priorityFlag metadata.PriorityFlag) (metadata.PluginMetadata, error) {
	if rp.Name == "" {
		return metadata.PluginMetadata{}, ordinatorerrors.NewInvalidArgument("plugin entry missing required 'name' field")
	}
	pm := metadata.NewPluginMetadata(rp.Name)

	if rp.Group != "" {
		if !groups.Has(rp.Group) {
			return metadata.PluginMetadata{}, ordinatorerrors.NewUndefinedGroup(rp.Group)
		}
		pm.Group = rp.Group
		pm.HasGroup = true
	}
	if rp.Enabled != nil {
		pm.Enabled = *rp.Enabled
		pm.EnabledSet = true
	}
	if rp.Priority != nil {
		pm.Priority = metadata.Priority{Value: *rp.Priority, Flag: priorityFlag}
	}
	if rp.GlobalPriority != nil {
		pm.GlobalPriority = metadata.Priority{Value: *rp.GlobalPriority, Flag: priorityFlag}
	}

	for _, rf := range rp.After {
		f := fileFromRaw(rf)
		if err := validateCondition(f.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.LoadAfter = append(pm.LoadAfter, f)
	}
	for _, rf := range rp.Req {
		f := fileFromRaw(rf)
		if err := validateCondition(f.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.Requirements = append(pm.Requirements, f)
	}
	for _, rf := range rp.Inc {
		f := fileFromRaw(rf)
		if err := validateCondition(f.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.Incompatibilities = append(pm.Incompatibilities, f)
	}
	for _, rf := range rp.URL {
		if err := validateCondition(rf.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.Locations = append(pm.Locations, metadata.Location{
			URL:         rf.Name,
			Name:        rf.Display,
			Conditional: metadata.Conditional{Condition: rf.Condition},
		})
	}
	for _, rm := range rp.Msg {
		msg, err := rm.parse()
		if err != nil {
			return metadata.PluginMetadata{}, ordinatorerrors.NewConditionSyntax(rp.Name, err.Error(), ordinatorerrors.WithCause(err))
		}
		if err := validateCondition(msg.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.Messages = append(pm.Messages, msg)
	}
	for _, rt := range rp.Tag {
		tag := rt.parse()
		if err := validateCondition(tag.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.Tags = append(pm.Tags, tag)
	}
	for _, rd := range rp.Dirty {
		cd := rd.parse()
		if err := validateCondition(cd.Condition); err != nil {
			return metadata.PluginMetadata{}, err
		}
		pm.CleaningData = append(pm.CleaningData, cd)
	}

	return pm, nil
}

func fileFromRaw(rf rawFile) metadata.File {
	return metadata.File{
		Name:        rf.Name,
		Display:     rf.Display,
		Conditional: metadata.Conditional{Condition: rf.Condition},
	}
}

func validateCondition(cond string) error {
	if cond == "" {
		return nil
	}
	if _, err := condition.Parse(cond); err != nil {
		return err
	}
	return nil
}

// Merge composes self (masterlist-precedence side) with other
// (userlist-precedence side) per spec.md §4.2, returning a new list. Keys
// present in only one side pass through unchanged.
func (l *MetadataList) Merge(other *MetadataList) *MetadataList {
	out := New()
	out.KnownTags = unionStrings(l.KnownTags, other.KnownTags)
	out.Globals = append(append([]metadata.Message(nil), l.Globals...), other.Globals...)
	out.Groups = l.Groups

	for key, pm := range l.Plugins {
		out.Plugins[key] = pm
	}
	for key, pm := range other.Plugins {
		if existing, ok := out.Plugins[key]; ok {
			out.Plugins[key] = existing.MergeMetadata(pm)
		} else {
			out.Plugins[key] = pm
		}
	}
	return out
}

func unionStrings(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// Get returns the plugin metadata for name, if present.
func (l *MetadataList) Get(name string) (metadata.PluginMetadata, bool) {
	pm, ok := l.Plugins[strings.ToLower(name)]
	return pm, ok
}

// Set replaces (not merges) the entry for pm.Name — the ErasePlugin-then-
// AddPlugin contract named in spec.md §4.2.
func (l *MetadataList) Set(pm metadata.PluginMetadata) {
	l.Plugins[pm.NameKey()] = pm
}

// Discard removes the entry for name, if present.
func (l *MetadataList) Discard(name string) {
	delete(l.Plugins, strings.ToLower(name))
}

// DiscardAll clears every plugin entry.
func (l *MetadataList) DiscardAll() {
	l.Plugins = map[string]metadata.PluginMetadata{}
}
