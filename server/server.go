// Package server exposes the chat orchestrator over HTTP. One inbound
// operation exists: submit a chat turn. The server holds no conversation
// state; clients resend the full history each turn.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/petal-labs/sous/chat"
	"github.com/petal-labs/sous/core"
)

// chatPath is the inbound chat-turn endpoint.
const chatPath = "/v1/chat"

// TurnRunner executes one chat turn. Satisfied by *chat.Orchestrator.
type TurnRunner interface {
	Turn(ctx context.Context, history []core.Message) (*chat.TurnResult, error)
}

// Server is the HTTP front end for the chat orchestrator.
type Server struct {
	runner TurnRunner
	logger *log.Logger

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a server listening on addr.
func New(addr string, runner TurnRunner, opts ...Option) *Server {
	s := &Server{
		runner: runner,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the server's route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(chatPath, s.handleChat)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Run serves until the context is canceled, then shuts down gracefully,
// letting in-flight turns finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.logger.Printf("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// chatRequest is the inbound turn payload.
type chatRequest struct {
	Messages []core.Message `json:"messages"`
}

// chatResponse is the success payload: exactly one assistant message.
type chatResponse struct {
	Message core.Message    `json:"message"`
	Usage   core.TokenUsage `json:"usage"`
}

// errorResponse is the failure payload.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requestID := uuid.NewString()
	start := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Printf("request %s: malformed body: %v", requestID, err)
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	result, err := s.runner.Turn(r.Context(), req.Messages)
	if err != nil {
		var turnErr *chat.TurnError
		if errors.As(err, &turnErr) {
			// Full detail stays in the log; the client gets the
			// non-sensitive message.
			s.logger.Printf("request %s: turn failed (%s): %v", requestID, turnErr.Kind, err)
			writeError(w, turnErr.HTTPStatus(), turnErr.ClientMessage())
			return
		}
		s.logger.Printf("request %s: turn failed: %v", requestID, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Printf("request %s: ok in %v (tool round: %t, tokens: %d)",
		requestID, time.Since(start), result.ToolRound, result.Usage.TotalTokens)

	writeJSON(w, http.StatusOK, chatResponse{
		Message: result.Message,
		Usage:   result.Usage,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
