package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"groq-chat/internal/llm"
)

const noResponseFallback = "(no response from model)"

// Generator is the upstream completion dependency; *llm.OpenAIClient
// satisfies it.
type Generator interface {
	GenerateWithModel(ctx context.Context, messages []llm.Message, model string) (llm.Response, error)
}

// Server is the chat completion proxy: it serves the static UI and relays
// /api/chat requests to the hosted provider. It keeps no chat state of its
// own; all history lives with the client.
type Server struct {
	upstream     Generator
	logger       *zap.Logger
	staticDir    string
	defaultModel string
	port         int
	server       *http.Server
}

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
	Model    string        `json:"model"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func New(upstream Generator, logger *zap.Logger, staticDir, defaultModel string, port int) *Server {
	return &Server{
		upstream:     upstream,
		logger:       logger,
		staticDir:    staticDir,
		defaultModel: defaultModel,
		port:         port,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	return mux
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.logger.Info("starting chat proxy", zap.Int("port", s.port))
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	reqID := uuid.NewString()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	// Rejected before any provider call.
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "messages array is required"})
		return
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	resp, err := s.upstream.GenerateWithModel(r.Context(), req.Messages, model)
	if err != nil {
		s.logger.Error("chat completion failed",
			zap.String("request_id", reqID),
			zap.String("model", model),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "chat completion error",
			Detail: err.Error(),
		})
		return
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		reply = noResponseFallback
	}

	s.logger.Debug("chat completion served",
		zap.String("request_id", reqID),
		zap.String("model", model),
		zap.Int("messages", len(req.Messages)))
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
