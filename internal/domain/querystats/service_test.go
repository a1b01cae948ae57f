package querystats

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubStore struct {
	increments map[string]string
	err        error
	top        []TrendingQuery
}

func (s *stubStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if s.err != nil {
		return s.err
	}
	if s.increments == nil {
		s.increments = make(map[string]string)
	}
	s.increments[canonical] = display
	return nil
}

func (s *stubStore) TopQueries(context.Context, int) ([]TrendingQuery, error) {
	return s.top, s.err
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, nil))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestCanonicalize(t *testing.T) {
	cases := map[string]string{
		"Weather in Jurong?":       "weather in jurong",
		"  weather   in  jurong  ": "weather in jurong",
		"WEATHER IN JURONG!!!":     "weather in jurong",
		"":                         "",
		"???":                      "",
		"PSI now, please.":         "psi now, please",
	}
	for in, want := range cases {
		require.Equal(t, want, Canonicalize(in), "input %q", in)
	}
}

func TestRecordNormalizes(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, 5, nopLogger())

	svc.Record(context.Background(), "  Weather in Jurong? ")
	require.Equal(t, "Weather in Jurong?", store.increments["weather in jurong"])
}

func TestRecordSkipsEmpty(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, 5, nopLogger())
	svc.Record(context.Background(), "   ")
	require.Empty(t, store.increments)
}

func TestRecordSwallowsStoreError(t *testing.T) {
	svc := NewService(&stubStore{err: errors.New("down")}, 5, nopLogger())
	// Must not panic or propagate.
	svc.Record(context.Background(), "psi now")
}

func TestTrending(t *testing.T) {
	store := &stubStore{top: []TrendingQuery{{Query: "psi now", Count: 3}}}
	svc := NewService(store, 0, nopLogger())
	out, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(3), out[0].Count)
}
