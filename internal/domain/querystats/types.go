// Package querystats tracks which questions users ask most, powering the
// trending endpoint.
package querystats

import "context"

// TrendingQuery is one entry of the trending list.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Store persists query counters keyed by canonical form.
type Store interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
