// Package dengue provides cluster data for the report pipeline. NEA's
// cluster feed has no public JSON API, so the bundled source serves a
// fixed advisory payload until a live feed becomes available.
package dengue

import (
	"context"

	"github.com/steadyday/steadyday/internal/domain/envreport"
)

const stubSummary = "Dengue Alert Level: **ORANGE**. There are **12 active clusters** in the East and **8 active clusters** in the Central region (e.g., Geylang, Aljunied, Bishan). Total 20 active clusters nationwide. Stay vigilant."

// StubSource implements envreport.DengueSource with a fixed payload.
type StubSource struct{}

// NewStubSource returns the placeholder cluster source.
func NewStubSource() *StubSource {
	return &StubSource{}
}

// Clusters ignores the query and returns the fixed advisory. The payload is
// always flagged live so the report includes the dengue section.
func (s *StubSource) Clusters(_ context.Context, _ string) envreport.Reading {
	return envreport.Reading{Summary: stubSummary, Live: true}
}
