package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
)

const shutdownTimeout = 5 * time.Second

// RouterConfig holds everything the HTTP routes depend on.
type RouterConfig struct {
	Logger   *slog.Logger
	Games    gameUseCase
	Sessions *pkg.Sessions
	Gatherer prometheus.Gatherer

	// WebSocket is mounted at /ws when set.
	WebSocket http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	h := &handlers{
		logger:   cfg.Logger.With("component", "rest"),
		games:    cfg.Games,
		sessions: cfg.Sessions,
	}

	r := mux.NewRouter()
	r.Use(recovery(h.logger), logging(h.logger))

	r.HandleFunc("/", h.page).Methods(http.MethodGet)
	r.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	if cfg.WebSocket != nil {
		r.Handle("/ws", cfg.WebSocket).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/game", h.getGame).Methods(http.MethodGet)
	api.HandleFunc("/game", h.endSession).Methods(http.MethodDelete)
	api.HandleFunc("/game/turn", h.makeTurn).Methods(http.MethodPost)
	api.HandleFunc("/game/reset", h.resetGame).Methods(http.MethodPost)

	return r
}

// Start serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

func logging(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		})
	}
}

func recovery(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("recovered from panic", "error", err, "path", r.URL.Path)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
