package metalist

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ordinator-tools/ordinator/internal/metadata"
)

// document is the raw shape of the metadata document format (spec.md §6).
type document struct {
	BashTags []string       `yaml:"bash_tags"`
	Globals  []rawMessage   `yaml:"globals"`
	Plugins  []rawPlugin    `yaml:"plugins"`
	Groups   []rawGroup     `yaml:"groups"`
}

type rawGroup struct {
	Name  string   `yaml:"name"`
	After []string `yaml:"after"`
}

type rawPlugin struct {
	Name           string       `yaml:"name"`
	Group          string       `yaml:"group"`
	Enabled        *bool        `yaml:"enabled"`
	Priority       *int8        `yaml:"priority"`
	GlobalPriority *int8        `yaml:"global_priority"`
	After          []rawFile    `yaml:"after"`
	Req            []rawFile    `yaml:"req"`
	Inc            []rawFile    `yaml:"inc"`
	Msg            []rawMessage `yaml:"msg"`
	Tag            []rawTag     `yaml:"tag"`
	Dirty          []rawDirty   `yaml:"dirty"`
	URL            []rawFile    `yaml:"url"`
}

// rawFile decodes a File reference: either a bare string (the name) or a
// {name, display, condition} mapping.
type rawFile struct {
	Name      string `yaml:"name"`
	Display   string `yaml:"display"`
	Condition string `yaml:"condition"`
}

func (f *rawFile) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&f.Name)
	}
	type plain rawFile
	return value.Decode((*plain)(f))
}

// rawTag decodes a Tag: a bare string ("Relev" to add, "-Relev" to
// remove) or a {name, condition} mapping carrying the same sign
// convention on name.
type rawTag struct {
	Name      string `yaml:"name"`
	Condition string `yaml:"condition"`
}

func (t *rawTag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&t.Name)
	}
	type plain rawTag
	return value.Decode((*plain)(t))
}

func (t rawTag) parse() metadata.Tag {
	name := t.Name
	addition := true
	if strings.HasPrefix(name, "-") {
		addition = false
		name = strings.TrimPrefix(name, "-")
	}
	tag := metadata.Tag{Name: name, Addition: addition}
	tag.Condition = t.Condition
	return tag
}

// rawMessage decodes a Message: {type, content, condition}. content is
// either a bare string (interpreted as unlocalised English text) or a
// list of {lang, text} mappings.
type rawMessage struct {
	Type      string          `yaml:"type"`
	Content   rawContentField `yaml:"content"`
	Condition string          `yaml:"condition"`
}

type rawContentField []metadata.MessageContent

func (c *rawContentField) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var text string
		if err := value.Decode(&text); err != nil {
			return err
		}
		*c = rawContentField{{Language: language.English, Text: text}}
		return nil
	}

	var entries []struct {
		Lang string `yaml:"lang"`
		Text string `yaml:"text"`
	}
	if err := value.Decode(&entries); err != nil {
		return err
	}
	out := make(rawContentField, 0, len(entries))
	for _, e := range entries {
		tag := language.English
		if e.Lang != "" {
			parsed, err := language.Parse(e.Lang)
			if err != nil {
				return fmt.Errorf("invalid language tag %q: %w", e.Lang, err)
			}
			tag = parsed
		}
		out = append(out, metadata.MessageContent{Language: tag, Text: e.Text})
	}
	*c = out
	return nil
}

func (m rawMessage) parse() (metadata.Message, error) {
	var kind metadata.MessageType
	switch strings.ToLower(m.Type) {
	case "", "say":
		kind = metadata.MessageSay
	case "warn":
		kind = metadata.MessageWarn
	case "error":
		kind = metadata.MessageError
	default:
		return metadata.Message{}, fmt.Errorf("unknown message type %q", m.Type)
	}
	msg := metadata.Message{Type: kind, Content: []metadata.MessageContent(m.Content)}
	msg.Condition = m.Condition
	return msg, nil
}

// rawDirty decodes a cleaning-data entry. crc accepts either a hex
// string ("DEADBEEF") or a YAML integer.
type rawDirty struct {
	CRC       rawCRC `yaml:"crc"`
	Util      string `yaml:"util"`
	ITM       int    `yaml:"itm"`
	UDR       int    `yaml:"udr"`
	UNM       int    `yaml:"unm"`
	Info      string `yaml:"info"`
	Condition string `yaml:"condition"`
}

type rawCRC uint32

func (c *rawCRC) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if n, err := strconv.ParseUint(value.Value, 0, 32); err == nil {
			*c = rawCRC(n)
			return nil
		}
		n, err := strconv.ParseUint(value.Value, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid crc %q: %w", value.Value, err)
		}
		*c = rawCRC(n)
		return nil
	}
	return fmt.Errorf("crc must be a scalar")
}

func (d rawDirty) parse() metadata.CleaningData {
	var info []metadata.MessageContent
	if d.Info != "" {
		info = []metadata.MessageContent{{Language: language.English, Text: d.Info}}
	}
	return metadata.CleaningData{
		CRC:                   uint32(d.CRC),
		Utility:               d.Util,
		ITMCount:              d.ITM,
		DeletedReferenceCount: d.UDR,
		DeletedNavmeshCount:   d.UNM,
		Info:                  info,
		Condition:             d.Condition,
	}
}
