package writer

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/scribe/internal/export"
)

func TestRenderMarkdown(t *testing.T) {
	turns := []export.Turn{
		{Role: export.RoleUser, Text: "Hi"},
		{Role: export.RoleAssistant, Text: "Hello!"},
	}

	md := RenderMarkdown("My Chat", turns)

	if !strings.HasPrefix(md, "# My Chat\n") {
		t.Errorf("missing title heading, got %q", md)
	}
	if !strings.Contains(md, "**👤 You**:\n\nHi\n") {
		t.Errorf("missing user block, got %q", md)
	}
	if !strings.Contains(md, "**🤖 Assistant**:\n\nHello!\n") {
		t.Errorf("missing assistant block, got %q", md)
	}
}

func TestWriteMarkdown_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteMarkdown(dir, "My/Chat: Test?", []export.Turn{
		{Role: export.RoleUser, Text: "Hi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(path) != "My_Chat_ Test_.md" {
		t.Errorf("filename = %q, want sanitized title", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	// The heading keeps the raw title.
	if !strings.Contains(string(data), "# My/Chat: Test?") {
		t.Errorf("heading should keep raw title, got %q", string(data))
	}
}

func TestWriteAllConversations_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "all_conversations.json")

	records := []ConversationRecord{
		{Title: "Café chat", Messages: []export.Turn{{Role: "user", Text: "héllo <world>"}}},
	}
	if err := WriteAllConversations(path, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	// Non-ASCII and angle brackets must survive unescaped.
	if !strings.Contains(string(data), "héllo <world>") {
		t.Errorf("expected unescaped content, got %q", string(data))
	}

	var decoded []ConversationRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Title != "Café chat" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteAllConversations_EmptyIsArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "all_conversations.json")

	if err := WriteAllConversations(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty array, got %q", string(data))
	}
}

func TestWritePairs_OneObjectPerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.jsonl")

	pairs := []export.Pair{
		{Prompt: "Hi", Completion: "Hello!", Title: "Greeting"},
		{Prompt: "Part 1\n\nPart 2", Completion: "OK", Title: "Multi"},
	}
	if err := WritePairs(path, pairs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var decoded []export.Pair
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var p export.Pair
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			t.Fatalf("line not valid JSON: %v", err)
		}
		decoded = append(decoded, p)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(decoded))
	}
	if decoded[1].Prompt != "Part 1\n\nPart 2" || decoded[1].Title != "Multi" {
		t.Errorf("pair[1] = %+v", decoded[1])
	}
}
