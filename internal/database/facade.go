package database

import (
	"context"

	"github.com/ordinator-tools/ordinator/internal/condition"
	"github.com/ordinator-tools/ordinator/internal/gamecache"
	"github.com/ordinator-tools/ordinator/internal/masterlist"
	"github.com/ordinator-tools/ordinator/internal/metadata"
	"github.com/ordinator-tools/ordinator/internal/metalist"
	"github.com/ordinator-tools/ordinator/internal/sorter"
	"github.com/ordinator-tools/ordinator/internal/vcs"
)

// Database is the facade named in spec.md §4.3. It owns no state of its
// own beyond what the game cache already owns; every method is a
// parameterised view over cache.Masterlist and cache.Userlist.
type Database struct {
	cache     *gamecache.Cache
	resolver  *gamecache.Resolver
	evaluator *condition.Evaluator
}

// New returns a Database backed by cache. resolver is normally
// gamecache.NewResolver(cache, handler, dataDir).
func New(cache *gamecache.Cache, resolver *gamecache.Resolver) *Database {
	return &Database{
		cache:     cache,
		resolver:  resolver,
		evaluator: condition.NewEvaluator(resolver),
	}
}

// LoadLists loads the masterlist and userlist from disk. Either path may
// be empty; a non-empty path that cannot be read is a FileAccessError.
func (d *Database) LoadLists(masterPath, userPath string) error {
	if masterPath != "" {
		ml, err := masterlist.Load(masterPath)
		if err != nil {
			return err
		}
		d.cache.Masterlist = ml
	}
	if userPath != "" {
		ul, err := metalist.Load(userPath, metadata.PriorityUser)
		if err != nil {
			return err
		}
		d.cache.Userlist = ul
	}
	d.cache.ClearResults()
	return nil
}

// WriteUserMetadata writes the current userlist to path (spec.md §4.3).
func (d *Database) WriteUserMetadata(path string, overwrite bool) error {
	return d.cache.Userlist.Save(path, overwrite)
}

// WriteMinimalList writes a list containing only plugins that carry tag
// suggestions or cleaning data, from the merged masterlist+userlist view
// (spec.md §4.3).
func (d *Database) WriteMinimalList(path string, overwrite bool) error {
	merged := d.merged()
	return merged.SaveMinimal(path, overwrite)
}

// UpdateMasterlist delegates to client to bring the masterlist checkout
// at dir up to date, reloads path as the new masterlist on change, and
// clears the condition-result cache on a successful swap (spec.md §4.3,
// §4.6).
func (d *Database) UpdateMasterlist(ctx context.Context, client vcs.Client, dir, path, url, branch string) (bool, error) {
	ml, changed, err := masterlist.Update(ctx, client, dir, path, url, branch)
	if err != nil {
		return false, err
	}
	if changed {
		d.cache.Masterlist = ml
		d.cache.ClearResults()
	}
	return changed, nil
}

func (d *Database) merged() *metalist.MetadataList {
	if d.cache.Masterlist == nil {
		return d.cache.Userlist
	}
	return d.cache.Masterlist.List.Merge(d.cache.Userlist)
}

// GetKnownBashTags returns the union of masterlist and userlist known-tag
// sets.
func (d *Database) GetKnownBashTags() []string {
	return d.merged().KnownTags
}

// GetGeneralMessages returns masterlist messages followed by userlist
// messages. When evaluate is true, the condition cache is cleared first
// and only messages whose condition holds (or is absent) are returned
// (spec.md §4.3).
func (d *Database) GetGeneralMessages(evaluate bool) ([]metadata.Message, error) {
	var all []metadata.Message
	if d.cache.Masterlist != nil {
		all = append(all, d.cache.Masterlist.List.Globals...)
	}
	all = append(all, d.cache.Userlist.Globals...)

	if !evaluate {
		return all, nil
	}
	d.cache.ClearResults()

	var visible []metadata.Message
	for _, msg := range all {
		ok, err := d.evalCondition(msg.Condition)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, msg)
		}
	}
	return visible, nil
}

// GetPluginMetadata returns the masterlist entry for plugin, merged with
// the userlist entry if includeUser is true. When evaluate is true,
// every conditional-bearing sub-value is resolved and the condition
// strings are cleared from the returned copy (spec.md §4.3).
func (d *Database) GetPluginMetadata(plugin string, includeUser, evaluate bool) (metadata.PluginMetadata, error) {
	var pm metadata.PluginMetadata
	found := false
	if d.cache.Masterlist != nil {
		if entry, ok := d.cache.Masterlist.List.Get(plugin); ok {
			pm = entry
			found = true
		}
	}
	if includeUser {
		if entry, ok := d.cache.Userlist.Get(plugin); ok {
			if found {
				pm = pm.MergeMetadata(entry)
			} else {
				pm = entry
				found = true
			}
		}
	}
	if !found {
		pm = metadata.NewPluginMetadata(plugin)
	}

	if !evaluate {
		return pm, nil
	}
	return d.evaluatePlugin(pm)
}

// GetPluginUserMetadata returns the userlist entry for plugin alone
// (spec.md §4.3).
func (d *Database) GetPluginUserMetadata(plugin string, evaluate bool) (metadata.PluginMetadata, error) {
	pm, ok := d.cache.Userlist.Get(plugin)
	if !ok {
		pm = metadata.NewPluginMetadata(plugin)
	}
	if !evaluate {
		return pm, nil
	}
	return d.evaluatePlugin(pm)
}

// SetPluginUserMetadata replaces (not merges) the userlist entry for
// pm.Name — the ErasePlugin-then-AddPlugin contract of spec.md §4.2.
func (d *Database) SetPluginUserMetadata(pm metadata.PluginMetadata) {
	d.cache.Userlist.Set(pm)
}

// DiscardPluginUserMetadata removes plugin's userlist entry.
func (d *Database) DiscardPluginUserMetadata(plugin string) {
	d.cache.Userlist.Discard(plugin)
}

// DiscardAllUserMetadata clears every userlist entry.
func (d *Database) DiscardAllUserMetadata() {
	d.cache.Userlist.DiscardAll()
}

// ApplyOrder persists order as the new load order via the load-order
// handler backing this game's cache.
func (d *Database) ApplyOrder(order []string) error {
	return d.cache.Handler().Persist(order)
}

// ActivePlugins returns the active plugins in their current load-order
// position, as reported by the load-order handler backing this game's
// cache.
func (d *Database) ActivePlugins() ([]string, error) {
	return d.cache.Handler().ActivePlugins()
}

// Groups returns the group declarations of the merged list (spec.md §4.4
// rule 5). metalist.Merge keeps the masterlist's groups only, so groups
// declared in the userlist are not included.
func (d *Database) Groups() *metalist.GroupSet {
	return d.merged().Groups
}

// PluginsForSort assembles the full sorter.Plugin input set for every
// active plugin: header data from the cached plugin view, merged and
// evaluated metadata, and the plugin's current load-order position.
func (d *Database) PluginsForSort() ([]sorter.Plugin, error) {
	return d.PluginsForSortWithProgress(nil)
}

// PluginsForSortWithProgress is PluginsForSort with an optional callback
// invoked after each active plugin is inspected, so a caller can drive a
// determinate progress indicator over a known-size loop. onEach may be nil.
func (d *Database) PluginsForSortWithProgress(onEach func(done, total int)) ([]sorter.Plugin, error) {
	names, err := d.ActivePlugins()
	if err != nil {
		return nil, err
	}

	d.cache.ClearResults()

	plugins := make([]sorter.Plugin, 0, len(names))
	for i, name := range names {
		view, err := d.cache.View(name)
		if err != nil {
			return nil, err
		}

		pm, err := d.GetPluginMetadata(name, true, true)
		if err != nil {
			return nil, err
		}

		p := sorter.Plugin{
			Name:                name,
			IsMaster:            view.IsMaster,
			Masters:             append([]string(nil), view.Masters...),
			Group:               pm.Group,
			HasGroup:            pm.HasGroup,
			PriorityValue:       pm.Priority.Value,
			PrioritySet:         pm.Priority.IsSet(),
			GlobalPriorityValue: pm.GlobalPriority.Value,
			GlobalPrioritySet:   pm.GlobalPriority.IsSet(),
		}
		for _, f := range pm.LoadAfter {
			p.LoadAfter = append(p.LoadAfter, f.Name)
		}
		for _, f := range pm.Requirements {
			p.Requirements = append(p.Requirements, f.Name)
		}
		if idx, ok := d.cache.Handler().Index(name); ok {
			p.LoadOrderIndex = idx
			p.HasLoadOrderIndex = true
		}

		plugins = append(plugins, p)
		if onEach != nil {
			onEach(i+1, len(names))
		}
	}
	return plugins, nil
}

func (d *Database) evalCondition(cond string) (bool, error) {
	if cond == "" {
		return true, nil
	}
	return d.evaluator.Eval(cond, d.cache)
}

// evaluatePlugin resolves every conditional sub-value on pm and returns a
// copy with condition strings cleared (spec.md §4.3).
func (d *Database) evaluatePlugin(pm metadata.PluginMetadata) (metadata.PluginMetadata, error) {
	out := pm
	out.LoadAfter = nil
	out.Requirements = nil
	out.Incompatibilities = nil
	out.Messages = nil
	out.Tags = nil
	out.CleaningData = nil
	out.Locations = nil

	for _, f := range pm.LoadAfter {
		ok, err := d.evalCondition(f.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			f.Conditional = metadata.Conditional{}
			out.LoadAfter = append(out.LoadAfter, f)
		}
	}
	for _, f := range pm.Requirements {
		ok, err := d.evalCondition(f.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			f.Conditional = metadata.Conditional{}
			out.Requirements = append(out.Requirements, f)
		}
	}
	for _, f := range pm.Incompatibilities {
		ok, err := d.evalCondition(f.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			f.Conditional = metadata.Conditional{}
			out.Incompatibilities = append(out.Incompatibilities, f)
		}
	}
	for _, m := range pm.Messages {
		ok, err := d.evalCondition(m.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			m.Conditional = metadata.Conditional{}
			out.Messages = append(out.Messages, m)
		}
	}
	for _, t := range pm.Tags {
		ok, err := d.evalCondition(t.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			t.Conditional = metadata.Conditional{}
			out.Tags = append(out.Tags, t)
		}
	}
	for _, c := range pm.CleaningData {
		ok, err := d.evalCondition(c.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			c.Condition = ""
			out.CleaningData = append(out.CleaningData, c)
		}
	}
	for _, l := range pm.Locations {
		ok, err := d.evalCondition(l.Condition)
		if err != nil {
			return metadata.PluginMetadata{}, err
		}
		if ok {
			l.Conditional = metadata.Conditional{}
			out.Locations = append(out.Locations, l)
		}
	}

	return out, nil
}
