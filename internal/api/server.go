package api

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/scribe/internal/export"
	"github.com/MikeSquared-Agency/scribe/internal/writer"
)

// Server exposes the artifacts of a cleaning run over HTTP.
type Server struct {
	router *chi.Mux
	port   int
	outDir string
}

// conversationSummary is the list-view shape for GET /api/v1/conversations.
type conversationSummary struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Messages int    `json:"messages"`
}

func NewServer(port int, outDir string) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		outDir: outDir,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/conversations", s.listConversations)
	router.Get("/api/v1/conversations/{index}", s.getConversation)
	router.Get("/api/v1/pairs", s.listPairs)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr, "out_dir", s.outDir)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	records, err := s.loadConversations()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	summaries := make([]conversationSummary, len(records))
	for i, rec := range records {
		summaries[i] = conversationSummary{Index: i, Title: rec.Title, Messages: len(rec.Messages)}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid index"))
		return
	}

	records, err := s.loadConversations()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if idx < 0 || idx >= len(records) {
		writeError(w, http.StatusNotFound, fmt.Errorf("conversation %d not found", idx))
		return
	}
	writeJSON(w, http.StatusOK, records[idx])
}

func (s *Server) listPairs(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(s.outDir, "pairs.jsonl"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("open pairs: %w", err))
		return
	}
	defer f.Close()

	pairs := []export.Pair{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024)
	for scanner.Scan() {
		var p export.Pair
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			continue // skip malformed lines
		}
		pairs = append(pairs, p)
	}
	writeJSON(w, http.StatusOK, pairs)
}

func (s *Server) loadConversations() ([]writer.ConversationRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.outDir, "all_conversations.json"))
	if err != nil {
		return nil, fmt.Errorf("read conversations: %w", err)
	}
	var records []writer.ConversationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}
	return records, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
