package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/scribe/internal/export"
)

// WriteConversation writes one cleaned conversation and its training pairs in
// a single transaction. Tables: conversations, messages, training_pairs.
func (s *Store) WriteConversation(ctx context.Context, title string, turns []export.Turn, pairs []export.Pair) (uuid.UUID, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	conversationID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO conversations (id, title, message_count, pair_count, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		conversationID, title, len(turns), len(pairs),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert conversation: %w", err)
	}

	for i, t := range turns {
		_, err = tx.Exec(ctx, `
			INSERT INTO messages (id, conversation_id, seq, role, text)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), conversationID, i, t.Role, t.Text,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert message: %w", err)
		}
	}

	for _, p := range pairs {
		_, err = tx.Exec(ctx, `
			INSERT INTO training_pairs (id, conversation_id, prompt, completion, title)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), conversationID, p.Prompt, p.Completion, p.Title,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert pair: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	return conversationID, nil
}

// CountConversations returns the number of persisted conversations.
func (s *Store) CountConversations(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM conversations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversations: %w", err)
	}
	return n, nil
}
