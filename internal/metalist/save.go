package metalist

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ordinator-tools/ordinator/internal/metadata"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// Save writes l to path as a metadata document. It refuses to clobber an
// existing file unless overwrite is true, and fails if the parent
// directory does not exist (spec.md §4.3 WriteUserMetadata).
func (l *MetadataList) Save(path string, overwrite bool) error {
	return l.save(path, overwrite, false)
}

// SaveMinimal writes l to path keeping only, per plugin, the name and
// any tag suggestions or cleaning data (spec.md §4.3 WriteMinimalList).
func (l *MetadataList) SaveMinimal(path string, overwrite bool) error {
	minimal := New()
	minimal.KnownTags = l.KnownTags
	for key, pm := range l.Plugins {
		if !pm.HasTagsOrCleaning() {
			continue
		}
		minimal.Plugins[key] = pm.Minimal()
	}
	return minimal.save(path, overwrite, true)
}

func (l *MetadataList) save(path string, overwrite, minimalOnly bool) error {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return ordinatorerrors.NewInvalidArgument("output parent directory does not exist: "+filepath.Dir(path), ordinatorerrors.WithCause(err))
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return ordinatorerrors.NewInvalidArgument("refusing to overwrite existing file without overwrite=true: " + path)
		}
	}

	doc := l.toDocument(minimalOnly)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return ordinatorerrors.NewFileAccess(path, "encoding metadata document", ordinatorerrors.WithCause(err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ordinatorerrors.NewFileAccess(path, "writing metadata document", ordinatorerrors.WithCause(err))
	}
	return nil
}

func (l *MetadataList) toDocument(minimalOnly bool) document {
	doc := document{BashTags: l.KnownTags}

	names := make([]string, 0, len(l.Plugins))
	for key := range l.Plugins {
		names = append(names, key)
	}
	sort.Strings(names)

	for _, key := range names {
		pm := l.Plugins[key]
		rp := rawPlugin{Name: pm.Name}
		if !minimalOnly {
			if pm.HasGroup {
				rp.Group = pm.Group
			}
			if pm.EnabledSet {
				v := pm.Enabled
				rp.Enabled = &v
			}
			if pm.Priority.IsSet() {
				v := pm.Priority.Value
				rp.Priority = &v
			}
			if pm.GlobalPriority.IsSet() {
				v := pm.GlobalPriority.Value
				rp.GlobalPriority = &v
			}
			rp.After = toRawFiles(pm.LoadAfter)
			rp.Req = toRawFiles(pm.Requirements)
			rp.Inc = toRawFiles(pm.Incompatibilities)
			rp.Msg = toRawMessages(pm.Messages)
		}
		rp.Tag = toRawTags(pm.Tags)
		rp.Dirty = toRawDirty(pm.CleaningData)
		doc.Plugins = append(doc.Plugins, rp)
	}

	for _, m := range l.Globals {
		doc.Globals = append(doc.Globals, toRawMessage(m))
	}

	return doc
}

func toRawFiles(files []metadata.File) []rawFile {
	var out []rawFile
	for _, f := range files {
		out = append(out, rawFile{Name: f.Name, Display: f.Display, Condition: f.Condition})
	}
	return out
}

func toRawMessages(msgs []metadata.Message) []rawMessage {
	var out []rawMessage
	for _, m := range msgs {
		out = append(out, toRawMessage(m))
	}
	return out
}

func toRawMessage(m metadata.Message) rawMessage {
	rm := rawMessage{Type: m.Type.String(), Condition: m.Condition}
	rm.Content = append(rawContentField(nil), m.Content...)
	return rm
}

func toRawTags(tags []metadata.Tag) []rawTag {
	var out []rawTag
	for _, t := range tags {
		name := t.Name
		if !t.Addition {
			name = "-" + name
		}
		out = append(out, rawTag{Name: name, Condition: t.Condition})
	}
	return out
}

func toRawDirty(cleaning []metadata.CleaningData) []rawDirty {
	var out []rawDirty
	for _, c := range cleaning {
		var info string
		if len(c.Info) > 0 {
			info = c.Info[0].Text
		}
		out = append(out, rawDirty{
			CRC:       rawCRC(c.CRC),
			Util:      c.Utility,
			ITM:       c.ITMCount,
			UDR:       c.DeletedReferenceCount,
			UNM:       c.DeletedNavmeshCount,
			Info:      info,
			Condition: c.Condition,
		})
	}
	return out
}
