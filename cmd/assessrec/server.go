package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/poiesic/assessrec"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/recommend"
	"github.com/urfave/cli/v2"
)

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sys, err := newSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	if err := ensureCatalog(ctx, c, sys, c.Bool("rebuild")); err != nil {
		return err
	}

	logger := slog.Default().With("component", "api-server")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("POST /recommend", handleRecommend(sys, logger))
	mux.HandleFunc("GET /analyze", handleAnalyze(sys))
	mux.HandleFunc("GET /assessments", handleAssessments(sys))

	srv := &http.Server{
		Addr:         c.String("addr"),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}

// recommendRequest is the JSON body for POST /recommend.
type recommendRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// assessmentItem is one recommendation in the response payload.
type assessmentItem struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	AdaptiveSupport string   `json:"adaptive_support"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	RemoteSupport   string   `json:"remote_support"`
	TestType        []string `json:"test_type"`
}

// recommendResponse is the JSON response for POST /recommend.
type recommendResponse struct {
	RecommendedAssessments []assessmentItem `json:"recommended_assessments"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleRecommend(sys *assessrec.System, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.TopK == 0 {
			req.TopK = recommend.MaxTopK
		}

		results, err := sys.Recommend(r.Context(), req.Query, req.TopK)
		switch {
		case errors.Is(err, core.ErrQueryTooShort):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, core.ErrEngineNotReady):
			writeError(w, http.StatusServiceUnavailable, "recommender not initialized")
			return
		case err != nil:
			logger.Error("recommendation failed", "err", err)
			writeError(w, http.StatusInternalServerError, "error generating recommendations")
			return
		}

		items := make([]assessmentItem, len(results))
		for i, hit := range results {
			items[i] = assessmentItem{
				URL:             hit.Assessment.URL,
				Name:            hit.Assessment.Name,
				AdaptiveSupport: hit.Assessment.AdaptiveSupport,
				Description:     hit.Assessment.Description,
				Duration:        hit.Assessment.Duration,
				RemoteSupport:   hit.Assessment.RemoteSupport,
				TestType:        hit.Assessment.TestType,
			}
		}
		writeJSON(w, http.StatusOK, recommendResponse{RecommendedAssessments: items})
	}
}

func handleAnalyze(sys *assessrec.System) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if err := core.ValidateQuery(query); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"query":  query,
			"intent": sys.Analyze(query),
		})
	}
}

func handleAssessments(sys *assessrec.System) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assessments := sys.Engine().Assessments()
		if len(assessments) == 0 {
			writeError(w, http.StatusServiceUnavailable, "assessments not loaded")
			return
		}

		limit := 10
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}
		if limit > len(assessments) {
			limit = len(assessments)
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"total":       len(assessments),
			"assessments": assessments[:limit],
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error("error encoding response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
