package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/trivia"
	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, handler *trivia.HTTPHandler) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handler.HandleListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handler.HandleQuestionsByCategory)
	mux.HandleFunc("GET /questions", handler.HandleListQuestions)
	mux.HandleFunc("POST /questions", handler.HandleCreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handler.HandleDeleteQuestion)
	mux.HandleFunc("POST /questions/search", handler.HandleSearchQuestions)
	mux.HandleFunc("POST /quizzes", handler.HandleQuiz)

	// ServeMux's default 404/405 pages are plain text; keep the JSON envelope
	// for anything outside the table above.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	wrapped := RequestID(AccessLog(logger, Metrics(CORS(cfg.CORS, mux))))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: wrapped,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
