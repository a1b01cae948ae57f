package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/steadyday/steadyday/internal/infra/config"
)

// Ingestor populates the advisory corpus before queries arrive.
type Ingestor interface {
	IngestAll(ctx context.Context) (int, error)
}

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *http.Server
	ingestor Ingestor
}

// NewApp is used by Wire to build the runnable app. ingestor may be nil.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, ingestor Ingestor) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, ingestor: ingestor}
}

// Run starts corpus ingestion in the background, then the HTTP server, and
// blocks until shutdown. Reports fall back to placeholder advice while
// ingestion is still running or if it fails.
func (a *App) Run(ctx context.Context) error {
	if a.ingestor != nil {
		go func() {
			if _, err := a.ingestor.IngestAll(ctx); err != nil {
				a.logger.Warn("corpus ingestion failed, reports will omit retrieved advice", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
