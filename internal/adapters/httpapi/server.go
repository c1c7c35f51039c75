// Package httpapi exposes a local control and preview surface for a
// playback session: start/restart/cancel, the normalized script, and a
// server-sent-events mirror of the playback event stream for an external
// preview renderer. No message delivery happens over the network; the
// stream is a read-only view of the local event bus.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/offbook/offbook/internal/logging"
	"github.com/offbook/offbook/pkg/domain"
)

// Engine defines the slice of the playback session the server drives.
type Engine interface {
	Start(script domain.Script) error
	Restart() error
	Cancel()
	Subscribe(fn func(domain.Event)) func()
	Status() domain.SessionStatus
	Delivered() []domain.Line
}

// Server wires a script and a playback engine to HTTP.
type Server struct {
	engine Engine
	script domain.Script
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request/stream logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler creates the HTTP handler for a loaded script. If reg is
// non-nil its metrics are served at /metrics.
func NewHandler(engine Engine, script domain.Script, reg *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{engine: engine, script: script, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/script", s.handleScript)
	r.Get("/status", s.handleStatus)
	r.Get("/events", s.handleEvents)
	r.Post("/session/start", s.handleStart)
	r.Post("/session/restart", s.handleRestart)
	r.Post("/session/cancel", s.handleCancel)
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.script)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    s.engine.Status(),
		"delivered": s.engine.Delivered(),
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Start(s.script); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Restart(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restarted"})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.engine.Cancel()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// handleEvents streams playback events as server-sent events until the
// client disconnects. A slow consumer drops events rather than stalling
// playback; the stream is a preview, not a source of truth.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events := make(chan domain.Event, 64)
	unsubscribe := s.engine.Subscribe(func(ev domain.Event) {
		select {
		case events <- ev:
		default:
			s.logger.Warn("event stream consumer too slow, dropping event", "kind", ev.EventKind())
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			data, err := json.Marshal(ev)
			if err != nil {
				s.logger.Warn("failed to marshal event", "err", err, "kind", ev.EventKind())
				continue
			}
			if _, err := w.Write([]byte("event: " + string(ev.EventKind()) + "\ndata: " + string(data) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
