package internal

// RawChatData is the decoded value stored under ChatDataKey
type RawChatData struct {
	Tabs *[]RawTab `json:"tabs"`
}

// RawTab is one conversation tab from the aichat panel
type RawTab struct {
	ChatTitle *string      `json:"chatTitle"`
	Summary   *RawSummary  `json:"summary"`
	Bubbles   *[]RawBubble `json:"bubbles"`
}

// RawSummary holds the panel's generated summary for a tab
type RawSummary struct {
	Text string `json:"text"`
}

// RawBubble is one message turn inside a tab
type RawBubble struct {
	Type string `json:"type"` // "user" or "ai"
	Text string `json:"text"`
}

// title returns the tab title, "" when absent
func (t RawTab) title() string {
	if t.ChatTitle == nil {
		return ""
	}
	return *t.ChatTitle
}
