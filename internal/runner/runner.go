package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/MikeSquared-Agency/scribe/internal/events"
	"github.com/MikeSquared-Agency/scribe/internal/export"
	"github.com/MikeSquared-Agency/scribe/internal/store"
	"github.com/MikeSquared-Agency/scribe/internal/writer"
)

// Config holds the clean command configuration.
type Config struct {
	InputPath string
	OutDir    string
}

// Summary reports what a run produced.
type Summary struct {
	Conversations int
	Pairs         int
	Skipped       int
	WriteErrors   int
}

// Runner orchestrates one export cleaning run. The store and publisher are
// optional; nil disables persistence and event publishing.
type Runner struct {
	cfg    Config
	store  *store.Store
	events *events.Publisher
	logger *slog.Logger
}

// New creates a runner.
func New(cfg Config, st *store.Store, pub *events.Publisher, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		store:  st,
		events: pub,
		logger: logger,
	}
}

// Run reads the export file, cleans every conversation in it and writes the
// three output artifacts. Per-conversation problems are logged and counted;
// only a malformed top-level document or a failed aggregate write is fatal.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	data, err := os.ReadFile(r.cfg.InputPath)
	if err != nil {
		return summary, fmt.Errorf("read input: %w", err)
	}

	conversations, err := decodeConversations(data)
	if err != nil {
		return summary, err
	}

	mdDir := filepath.Join(r.cfg.OutDir, writer.MarkdownDirName)
	if err := os.MkdirAll(mdDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	r.logger.Info("processing export",
		"input", r.cfg.InputPath,
		"conversations", len(conversations),
	)

	var allRecords []writer.ConversationRecord
	var allPairs []export.Pair

	for _, conv := range conversations {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		title := conv.Title
		if title == "" {
			title = "Conversation"
		}

		turns := export.ExtractMessages(conv)
		if len(turns) == 0 {
			summary.Skipped++
			continue
		}

		if _, err := writer.WriteMarkdown(mdDir, title, turns); err != nil {
			r.logger.Warn("failed to write markdown", "title", title, "error", err)
			summary.WriteErrors++
		}

		allRecords = append(allRecords, writer.ConversationRecord{Title: title, Messages: turns})

		pairs := export.BuildPairs(turns, title)
		allPairs = append(allPairs, pairs...)

		if r.store != nil {
			if _, err := r.store.WriteConversation(ctx, title, turns, pairs); err != nil {
				r.logger.Warn("failed to persist conversation", "title", title, "error", err)
				summary.WriteErrors++
			}
		}

		if r.events != nil {
			if err := r.events.ConversationCleaned(title, len(turns), len(pairs)); err != nil {
				r.logger.Warn("failed to publish event", "title", title, "error", err)
			}
		}

		summary.Conversations++
		summary.Pairs += len(pairs)
	}

	// The aggregate artifacts are the whole point of the run; losing either
	// one is fatal.
	if err := writer.WriteAllConversations(filepath.Join(r.cfg.OutDir, "all_conversations.json"), allRecords); err != nil {
		return summary, err
	}
	if err := writer.WritePairs(filepath.Join(r.cfg.OutDir, "pairs.jsonl"), allPairs); err != nil {
		return summary, err
	}

	if r.events != nil {
		if err := r.events.RunCompleted(summary.Conversations, summary.Pairs, summary.Skipped); err != nil {
			r.logger.Warn("failed to publish run summary", "error", err)
		}
	}

	r.logger.Info("export cleaned",
		"conversations", summary.Conversations,
		"pairs", summary.Pairs,
		"skipped", summary.Skipped,
		"write_errors", summary.WriteErrors,
	)

	r.printSummary(summary)
	return summary, nil
}

// decodeConversations accepts both export shapes: an object with a
// "conversations" key, or a bare array of conversation records. Anything else
// is a malformed document.
func decodeConversations(data []byte) ([]export.Conversation, error) {
	errInvalid := fmt.Errorf(`invalid format: expected {"conversations": [...]} or [...]`)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errInvalid
	}

	switch trimmed[0] {
	case '{':
		var wrapper struct {
			Conversations *[]export.Conversation `json:"conversations"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err == nil && wrapper.Conversations != nil {
			return *wrapper.Conversations, nil
		}
	case '[':
		var list []export.Conversation
		if err := json.Unmarshal(trimmed, &list); err == nil {
			return list, nil
		}
	}

	return nil, errInvalid
}

func (r *Runner) printSummary(s Summary) {
	color.New(color.FgGreen, color.Bold).Println("\n=== Scribe Summary ===")
	fmt.Printf("Conversations: %d\n", s.Conversations)
	fmt.Printf("Prompt-completion pairs: %d\n", s.Pairs)
	fmt.Printf("Skipped (empty): %d\n", s.Skipped)
	if s.WriteErrors > 0 {
		color.Yellow("Write errors: %d", s.WriteErrors)
	}
	fmt.Printf("Output: %s\n", r.cfg.OutDir)
}
