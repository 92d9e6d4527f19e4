package domain

// Message is the webhook payload for one digest delivery. Text always
// carries a plain rendering; Blocks is populated only by renderers that
// target destinations with structured layout.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is one discrete display block in a structured rendering.
type Block struct {
	Type     string       `json:"type"`
	Text     *TextObject  `json:"text,omitempty"`
	Elements []TextObject `json:"elements,omitempty"`
}

// TextObject is a typed text fragment inside a block.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// PlainText wraps s as a plain-text block object.
func PlainText(s string) *TextObject {
	return &TextObject{Type: "plain_text", Text: s}
}

// Markdown wraps s as a markdown block object.
func Markdown(s string) *TextObject {
	return &TextObject{Type: "mrkdwn", Text: s}
}
