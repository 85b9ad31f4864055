package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	httpswagger "github.com/swaggo/http-swagger"

	"github.com/nafamubarokhusni/News-Summary/pkg/articles"
	"github.com/rs/zerolog"
)

//go:embed openapi.yaml
var openapiSpecYaml string

//go:embed index.html
var indexPageHTML string

type summarizePipeline interface {
	Summarize(ctx context.Context, rawURL string) (*articles.Summary, error)
}

type Server struct {
	pipeline summarizePipeline
	logger   *zerolog.Logger
	http     http.Server
}

func NewServer(logger *zerolog.Logger, config *Config, pipeline summarizePipeline) *Server {
	mux := http.NewServeMux()

	server := &Server{
		logger:   logger,
		pipeline: pipeline,
		http: http.Server{
			Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler: requestLogMiddleware(logger, corsMiddleware(mux, config.CORSOrigin)),
		},
	}

	server.registerHandlers(mux)

	return server
}

func (s *Server) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/summarize", s.handleSummarize)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/demo", s.handleDemo)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	s.registerApiDocsHandlers(mux)
}

func (s *Server) registerApiDocsHandlers(mux *http.ServeMux) {
	mux.Handle("/docs/", httpswagger.Handler(
		httpswagger.URL("/docs/openapi.yaml"),
	))
	mux.HandleFunc("/docs/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")

		_, err := w.Write([]byte(openapiSpecYaml))
		if err != nil {
			s.logger.Error().Err(err).Msg("response write error")
		}
	})
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// SummarizeRequest is the POST /api/summarize payload.
type SummarizeRequest struct {
	URL string `json:"url"`
}

// SummarizeResponse is the success envelope.
type SummarizeResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// ErrorResponse is the failure envelope. Success is always false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := deserializeReq(r, &req); err != nil {
		s.logger.Warn().Err(err).Msg("Malformed summarize request")
		s.serializeRes(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		s.serializeRes(w, http.StatusBadRequest, ErrorResponse{Error: "URL is required"})
		return
	}

	summary, err := s.pipeline.Summarize(r.Context(), rawURL)
	if err != nil {
		s.respondPipelineError(w, rawURL, err)
		return
	}

	s.serializeRes(w, http.StatusOK, SummarizeResponse{
		Success: true,
		Title:   summary.Title,
		Summary: summary.Summary,
		URL:     summary.URL,
	})
}

// respondPipelineError maps a pipeline failure to a status code and a
// client-safe message. Invalid input is the client's fault, an unreachable
// upstream is a bad gateway, everything else is on us.
func (s *Server) respondPipelineError(w http.ResponseWriter, rawURL string, err error) {
	var stage articles.Stage
	var stageErr *articles.StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
	}

	var status int
	var message string

	switch {
	case errors.Is(err, articles.ErrInvalidURL):
		status = http.StatusBadRequest
		message = "Invalid URL format"
	case errors.Is(err, articles.ErrNoContent), errors.Is(err, articles.ErrUnsupportedContent):
		status = http.StatusInternalServerError
		message = "Could not extract article content"
	case stage == articles.StageFetch:
		status = http.StatusBadGateway
		message = fmt.Sprintf("Error fetching URL: %v", stageErr.Err)
	case stage == articles.StageExtract:
		status = http.StatusInternalServerError
		message = "Could not extract article content"
	default:
		status = http.StatusInternalServerError
		message = fmt.Sprintf("An error occurred: %v", err)
	}

	s.logger.Warn().
		Err(err).
		Str("url", rawURL).
		Str("stage", string(stage)).
		Int("status", status).
		Msg("Summarize request failed")

	s.serializeRes(w, status, ErrorResponse{Error: message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.serializeRes(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleDemo(w http.ResponseWriter, _ *http.Request) {
	s.serializeRes(w, http.StatusOK, articles.NewDemoArticle())
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err := w.Write([]byte(indexPageHTML))
	if err != nil {
		s.logger.Error().Err(err).Msg("response write error")
	}
}

func deserializeReq[Req any](r *http.Request, req *Req) error {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return fmt.Errorf("unsupported content type: %s", contentType)
	}

	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}

	err = json.Unmarshal(reqBytes, req)
	if err != nil {
		return fmt.Errorf("deserialize request body: %w", err)
	}

	return nil
}

func (s *Server) serializeRes(w http.ResponseWriter, status int, res any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if res == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.Error().Err(err).Msg("serialize response")
	}
}
