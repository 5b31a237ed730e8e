package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Subjects published by a cleaning run.
const (
	SubjectConversationCleaned = "scribe.conversation.cleaned"
	SubjectRunCompleted        = "scribe.run.completed"
)

// ConversationCleanedEvent is emitted once per cleaned conversation.
type ConversationCleanedEvent struct {
	RunID    string `json:"run_id"`
	Title    string `json:"title"`
	Messages int    `json:"messages"`
	Pairs    int    `json:"pairs"`
}

// RunCompletedEvent is emitted when the full run has finished.
type RunCompletedEvent struct {
	RunID         string `json:"run_id"`
	Conversations int    `json:"conversations"`
	Pairs         int    `json:"pairs"`
	Skipped       int    `json:"skipped"`
	CompletedAt   string `json:"completed_at"`
}

// Publisher emits cleaning progress events over NATS.
type Publisher struct {
	conn   *nats.Conn
	runID  string
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, runID: uuid.New().String(), logger: logger}, nil
}

func (p *Publisher) ConversationCleaned(title string, messages, pairs int) error {
	return p.publish(SubjectConversationCleaned, ConversationCleanedEvent{
		RunID:    p.runID,
		Title:    title,
		Messages: messages,
		Pairs:    pairs,
	})
}

func (p *Publisher) RunCompleted(conversations, pairs, skipped int) error {
	return p.publish(SubjectRunCompleted, RunCompletedEvent{
		RunID:         p.runID,
		Conversations: conversations,
		Pairs:         pairs,
		Skipped:       skipped,
		CompletedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("nats drain failed", "error", err)
	}
}
