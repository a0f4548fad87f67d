package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/notargets/mshfmt/msh"
)

// maxDocumentBytes bounds the request body size for /format.
const maxDocumentBytes = 256 << 20

// Server is the HTTP formatting service.
type Server struct {
	router chi.Router
	log    *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger) *Server {
	s := &Server{log: log}
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
	r.Post("/format", s.handleFormat)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleFormat accepts an MSH document body plus FormatConfig fields as
// query parameters and returns the formatted document. Config and document
// errors are client errors; nothing partial is ever returned.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	cfg, err := configFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	formatted, err := msh.Format(string(body), cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(formatted))
}

// configFromQuery overlays query parameters onto the default FormatConfig.
// Parameter names mirror the config fields: precision, align, comments,
// compact, scientificThreshold, columnWidth, sectionSpacing,
// nodeCommentFreq, elementCommentFreq.
func configFromQuery(r *http.Request) (*msh.FormatConfig, error) {
	cfg := msh.DefaultConfig()
	q := r.URL.Query()

	for name, dst := range map[string]*int{
		"precision":          &cfg.Precision,
		"columnWidth":        &cfg.ColumnWidth,
		"sectionSpacing":     &cfg.SectionSpacing,
		"nodeCommentFreq":    &cfg.NodeCommentFreq,
		"elementCommentFreq": &cfg.ElementCommentFreq,
	} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, err
			}
			*dst = n
		}
	}

	for name, dst := range map[string]*bool{
		"align":    &cfg.AlignColumns,
		"comments": &cfg.AddComments,
		"compact":  &cfg.CompactMode,
	} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, err
			}
			*dst = b
		}
	}

	if v := q.Get("scientificThreshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		cfg.ScientificThreshold = f
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
