package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MikeSquared-Agency/scribe/internal/export"
)

// Role labels used in the markdown transcripts.
const (
	labelUser      = "👤 You"
	labelAssistant = "🤖 Assistant"
)

// MarkdownDirName is the subdirectory holding per-conversation transcripts.
const MarkdownDirName = "markdown_by_conversation"

// ConversationRecord is one entry of the consolidated JSON artifact.
type ConversationRecord struct {
	Title    string        `json:"title"`
	Messages []export.Turn `json:"messages"`
}

// RenderMarkdown renders a conversation as a markdown transcript: a level-1
// heading with the raw title followed by role-labeled message blocks.
func RenderMarkdown(title string, turns []export.Turn) string {
	lines := []string{fmt.Sprintf("# %s\n", title)}
	for _, t := range turns {
		label := labelUser
		if t.Role == export.RoleAssistant {
			label = labelAssistant
		}
		lines = append(lines, fmt.Sprintf("**%s**:\n\n%s\n", label, t.Text))
	}
	return strings.Join(lines, "\n")
}

// WriteMarkdown writes a conversation transcript under dir, named after the
// sanitized title. Returns the path written.
func WriteMarkdown(dir, title string, turns []export.Turn) (string, error) {
	name := export.SanitizeFilename(title, export.DefaultMaxFilename) + ".md"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(RenderMarkdown(title, turns)), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return path, nil
}

// WriteAllConversations writes the consolidated JSON artifact: an array of
// {title, messages} records, 2-space indented, non-ASCII kept as-is.
func WriteAllConversations(path string, records []ConversationRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if records == nil {
		records = []ConversationRecord{}
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode conversations: %w", err)
	}
	return nil
}

// WritePairs writes the fine-tuning artifact: one JSON object per line.
func WritePairs(path string, pairs []export.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode pair: %w", err)
		}
	}
	return nil
}
