package metadata

import (
	"golang.org/x/text/language"
)

// MessageType classifies a Message per spec.md §3.
type MessageType int

const (
	MessageSay MessageType = iota
	MessageWarn
	MessageError
)

func (t MessageType) String() string {
	switch t {
	case MessageWarn:
		return "warn"
	case MessageError:
		return "error"
	default:
		return "say"
	}
}

// MessageContent is one localised rendering of a message: a BCP 47
// language tag plus the text in that language (spec.md §3).
type MessageContent struct {
	Language language.Tag
	Text     string
}

// Message is a type plus an ordered list of localised content plus an
// optional condition (spec.md §3). A message is visible iff its condition
// evaluates to true, or is absent; an empty visible-message list is legal.
type Message struct {
	Conditional
	Type    MessageType
	Content []MessageContent
}

// PreferredContent resolves which MessageContent to show for a requested
// language with a golang.org/x/text/language.Matcher built over the
// content's language tags; when no tag matches, the matcher falls back to
// the first entry. It reports false only when there is no content.
func (m Message) PreferredContent(want language.Tag) (MessageContent, bool) {
	if len(m.Content) == 0 {
		return MessageContent{}, false
	}
	tags := make([]language.Tag, len(m.Content))
	for i, c := range m.Content {
		tags[i] = c.Language
	}
	matcher := language.NewMatcher(tags)
	_, index, _ := matcher.Match(want)
	return m.Content[index], true
}

func mergeMessages(a, b []Message) []Message {
	result := make([]Message, 0, len(a)+len(b))
	result = append(result, a...)
	result = append(result, b...)
	return result
}
