package querystats

import (
	"context"
	"log/slog"
	"strings"
)

// Service records queries and serves the trending list. Recording is best
// effort; a counter failure never fails the report request.
type Service struct {
	store  Store
	limit  int
	logger *slog.Logger
}

// NewService constructs a Service.
func NewService(store Store, limit int, logger *slog.Logger) *Service {
	if limit <= 0 {
		limit = 10
	}
	return &Service{
		store:  store,
		limit:  limit,
		logger: logger.With("component", "querystats.service"),
	}
}

// Record bumps the counter for the question.
func (s *Service) Record(ctx context.Context, question string) {
	display := strings.TrimSpace(question)
	canonical := Canonicalize(question)
	if canonical == "" {
		return
	}
	if err := s.store.IncrementQuery(ctx, canonical, display); err != nil {
		s.logger.Warn("failed to record query", "error", err)
	}
}

// Trending returns the most asked questions, most frequent first.
func (s *Service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	return s.store.TopQueries(ctx, s.limit)
}
