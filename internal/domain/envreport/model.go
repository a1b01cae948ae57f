package envreport

import (
	"context"

	"github.com/steadyday/steadyday/pkg/metrics"
)

// Reading is the normalized outcome of one live data fetch. Live=true means
// the upstream value is authoritative; Live=false means Summary carries a
// user-facing fallback line instead. Readings exist only for the request
// that produced them.
type Reading struct {
	Summary string
	Live    bool
}

// Request is the single inbound shape: a free-text question.
type Request struct {
	Question string `json:"question" binding:"required"`
}

// Result is the generated report plus one status flag per live source.
type Result struct {
	Response      string             `json:"response"`
	WeatherStatus bool               `json:"weatherStatus"`
	PSIStatus     bool               `json:"psiStatus"`
	UVStatus      bool               `json:"uvStatus"`
	DengueStatus  bool               `json:"dengueStatus"`
	Region        string             `json:"region"`
	Date          string             `json:"date"`
	Hour          int                `json:"hour"`
	WeatherSource string             `json:"weatherSource"`
	Usage         metrics.TokenUsage `json:"usage,omitempty"`
}

// DengueSource is the external collaborator for dengue cluster data. The
// bundled implementation is a fixed placeholder; a live cluster API slots
// in behind the same shape.
type DengueSource interface {
	Clusters(ctx context.Context, query string) Reading
}
