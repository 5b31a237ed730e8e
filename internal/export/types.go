package export

import "encoding/json"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is one exported chat session: a title, the node mapping, and
// the identifier of the active leaf node.
type Conversation struct {
	Title       string          `json:"title"`
	CurrentNode string          `json:"current_node"`
	Mapping     map[string]Node `json:"mapping"`
}

// Node is one entry in a conversation's parent-linked structure. An empty
// Parent marks the root. The message payload is optional.
type Node struct {
	Parent  string   `json:"parent"`
	Message *Message `json:"message"`
}

// Message is the payload a node may carry.
type Message struct {
	Author   Author         `json:"author"`
	Content  Content        `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

type Author struct {
	Role string `json:"role"`
}

type Content struct {
	ContentType string `json:"content_type"`
	Parts       []Part `json:"parts"`
}

// Part is one fragment of a message's content. The export encodes parts as
// either a bare string or an object carrying a text field (normal text parts
// and audio transcriptions both use the latter shape).
type Part struct {
	Text        string
	ContentType string
	Plain       bool // decoded from a bare string rather than an object
}

func (p *Part) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Text = s
		p.Plain = true
		return nil
	}

	var obj struct {
		Text        string `json:"text"`
		ContentType string `json:"content_type"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Numbers, arrays and other shapes contribute nothing.
		return nil
	}
	p.Text = obj.Text
	p.ContentType = obj.ContentType
	return nil
}

// Turn is a single cleaned user or assistant message, in conversation order.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Pair is one prompt/completion fine-tuning example derived from a user turn
// (or a merged run of user turns) and the assistant reply that followed it.
type Pair struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
	Title      string `json:"_title"`
}
