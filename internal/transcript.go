package internal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Transcript is one rendered conversation
type Transcript struct {
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Messages []Message `json:"messages"`

	// SourceTitle is the tab title without the "# " prefix, used for file naming
	SourceTitle string `json:"-"`
}

// Message is one pre-formatted conversation turn.
// Type keeps the bubble type exactly as stored ("user" or "ai").
type Message struct {
	Text string `json:"text"`
	Type string `json:"type"`
	Role Role   `json:"-"`
}

var (
	errMissingTabs    = errors.New("chat data has no tabs")
	errMissingBubbles = errors.New("tab has no bubbles")
)

// roleFromBubbleType maps a stored bubble type onto a Role
func roleFromBubbleType(t string) (Role, bool) {
	switch t {
	case "user":
		return RoleUser, true
	case "ai", "assistant":
		return RoleAssistant, true
	default:
		return "", false
	}
}

// FormatMessage renders a message body with its role glyph and emphasis
func FormatMessage(role Role, body string) string {
	glyph, marker := "🤖", "**"
	if role == RoleUser {
		glyph, marker = "👤", "*"
	}
	return glyph + ": \n\n" + marker + body + marker
}

// ParseTranscripts decodes the raw chat-data value of the store at source into transcripts.
// Any structural problem fails the whole record, so a workspace never yields a partial set.
func ParseTranscripts(source, raw string) ([]*Transcript, error) {
	var data RawChatData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &ParseError{Source: source, Field: "json", Err: err}
	}
	if data.Tabs == nil {
		return nil, &ParseError{Source: source, Field: "tabs", Err: errMissingTabs}
	}

	transcripts := make([]*Transcript, 0, len(*data.Tabs))
	for i, tab := range *data.Tabs {
		if tab.Bubbles == nil {
			return nil, &ParseError{
				Source: source,
				Field:  "bubbles",
				Err:    fmt.Errorf("tab %d: %w", i, errMissingBubbles),
			}
		}
		transcripts = append(transcripts, newTranscript(source, tab))
	}

	return transcripts, nil
}

func newTranscript(source string, tab RawTab) *Transcript {
	title := tab.title()
	t := &Transcript{
		Title:       "# " + title,
		SourceTitle: title,
		Messages:    make([]Message, 0, len(*tab.Bubbles)),
	}
	if tab.Summary != nil {
		t.Summary = "## " + tab.Summary.Text
	}

	for _, bubble := range *tab.Bubbles {
		role, ok := roleFromBubbleType(bubble.Type)
		if !ok {
			LogWarn("Skipping bubble with unknown type %q in %q (%s)", bubble.Type, title, source)
			continue
		}
		t.Messages = append(t.Messages, Message{
			Text: FormatMessage(role, bubble.Text),
			Type: bubble.Type,
			Role: role,
		})
	}

	return t
}

// AssistantCount returns the number of assistant-authored messages
func (t *Transcript) AssistantCount() int {
	n := 0
	for _, m := range t.Messages {
		if m.Role == RoleAssistant {
			n++
		}
	}
	return n
}
