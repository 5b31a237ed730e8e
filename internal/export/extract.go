package export

import "strings"

// ExtractMessages reconstructs the active conversation path and reduces it to
// cleaned user/assistant turns. Nodes without a message payload, system
// messages (unless flagged as user-authored), and non-text content types are
// skipped. Returns nil if the conversation yields no usable turns.
func ExtractMessages(conv Conversation) []Turn {
	var turns []Turn

	for _, node := range OrderedNodes(conv.Mapping, conv.CurrentNode) {
		m := node.Message
		if m == nil {
			continue
		}

		author := m.Author.Role
		if author == "tool" || author == "ChatGPT" {
			author = RoleAssistant
		}

		if author == "system" && !isTruthy(m.Metadata["is_user_system_message"]) {
			continue
		}

		ctype := m.Content.ContentType
		if ctype != "text" && ctype != "multimodal_text" {
			continue
		}

		text := CleanText(flattenParts(m.Content.Parts))
		if text == "" {
			continue
		}

		// Anything that is not the assistant collapses to the user side,
		// including user-authored system messages.
		role := RoleUser
		if author == RoleAssistant {
			role = RoleAssistant
		}
		turns = append(turns, Turn{Role: role, Text: text})
	}

	return turns
}

// flattenParts joins the usable text of a message's parts with newlines.
// Bare string parts are taken verbatim when non-blank; object parts
// contribute their text field (covers both text and audio transcription
// parts). Everything else is dropped.
func flattenParts(parts []Part) string {
	var chunks []string
	for _, p := range parts {
		switch {
		case p.Plain && strings.TrimSpace(p.Text) != "":
			chunks = append(chunks, p.Text)
		case !p.Plain && p.Text != "":
			chunks = append(chunks, p.Text)
		}
	}
	return strings.Join(chunks, "\n")
}

func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
