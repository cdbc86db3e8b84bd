package api

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pagesmith/internal/config"
	"pagesmith/internal/cycle"
)

//go:embed web/index.html
var indexHTML []byte

// Server is the HTTP surface for pagesmith: the embedded UI plus the
// JSON generation API.
type Server struct {
	router chi.Router
	runner *cycle.Runner
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(runner *cycle.Runner, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		runner: runner,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)

	r.Post("/api/generate", s.handleGenerate)
	r.Get("/api/cycle", s.handleCycle)
	r.Get("/api/document", s.handleDocument)
	r.Post("/api/brief", s.handleBrief)
	r.Get("/api/stats/llm", s.handleLLMStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
