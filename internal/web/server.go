// Package web serves the comparison table as an HTML page and a small JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/assist"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/outwriter"
	"github.com/huangsam/scorecard/schema"
)

// RequestIDHeader carries the per-request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// DeletePath is the prefix of the delete endpoint; the experiment id follows it.
const DeletePath = "/api/experiments/"

const shutdownTimeout = 5 * time.Second

// Server answers page and API requests from an experiment source.
type Server struct {
	cfg *contract.Config
	src contract.ExperimentSource
}

// NewServer returns a Server reading experiments from src.
func NewServer(cfg *contract.Config, src contract.ExperimentSource) *Server {
	return &Server{cfg: cfg, src: src}
}

// Router registers every route.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/table", s.handleTable).Methods(http.MethodGet)
	r.HandleFunc(DeletePath+"{id}", s.handleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	return r
}

// Handler returns the router wrapped in an access log on stderr.
func (s *Server) Handler() http.Handler {
	return handlers.LoggingHandler(os.Stderr, s.Router())
}

// ListenAndServe serves on cfg.Addr until ctx is canceled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, cfg *contract.Config, src contract.ExperimentSource) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewServer(cfg, src).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		contract.Logger().Infow("serving scorecard", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

// requestID tags every request with an id, reusing one sent by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		contract.Logger().Debugw("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// requestConfig applies the query parameters of r to a copy of the base config.
func (s *Server) requestConfig(r *http.Request, output schema.OutputMode) (*contract.Config, error) {
	cfg := s.cfg.Clone()
	cfg.Output = output

	q := r.URL.Query()
	if q.Has("filter") {
		cfg.Filter = q.Get("filter")
	}
	if c := q.Get("columns"); c != "" {
		cfg.Columns = schema.ColumnStrategy(strings.ToLower(c))
		if _, ok := schema.ValidColumnStrategies[cfg.Columns]; !ok {
			return nil, fmt.Errorf("invalid columns strategy '%s'. must be first, union", c)
		}
	}
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 || n > contract.MaxResultLimit {
			return nil, fmt.Errorf("limit must be between 0 and %d (received %q)", contract.MaxResultLimit, l)
		}
		cfg.ResultLimit = n
	}
	return cfg, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r, schema.HTMLOut)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table, err := core.CompareTable(r.Context(), cfg, s.src)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	opts := outwriter.HTMLOptions{Precision: cfg.Precision, Filter: cfg.Filter, DeleteURL: DeletePath}
	if err := outwriter.RenderHTML(w, table, opts); err != nil {
		contract.Logger().Errorw("failed to render page", "error", err)
	}
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r, schema.JSONOut)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	table, err := core.CompareTable(r.Context(), cfg, s.src)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.src.Delete(r.Context(), id); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, assist.ErrReadOnlySource) {
			status = http.StatusMethodNotAllowed
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	contract.Logger().Infow("trashed experiment", "id", id, "via", "web")
	w.WriteHeader(http.StatusNoContent)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		contract.Logger().Errorw("failed to encode response", "error", err)
	}
}
