package unit

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steadyday/steadyday/internal/domain/corpus"
	"github.com/steadyday/steadyday/internal/infra/corpus/chunker"
	"github.com/steadyday/steadyday/internal/infra/corpus/embedder"
	"github.com/steadyday/steadyday/internal/infra/corpus/loader"
	"github.com/steadyday/steadyday/internal/infra/corpus/repo"
	"github.com/steadyday/steadyday/internal/infra/corpus/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Exercises the full ingestion path against live-looking HTML endpoints:
// fetch, extract, chunk, embed, store, then retrieve.
func TestCorpusPipelineIngestAndRetrieve(t *testing.T) {
	hazePage := `<html><body><h1>Haze precautions</h1>
<p>Wear an N95 mask when the air quality is in the unhealthy range.</p>
<p>Keep windows closed and use an air purifier indoors.</p></body></html>`
	denguePage := `<html><body><h1>Dengue prevention</h1>
<p>Remove stagnant water from containers every other day.</p></body></html>`

	mux := http.NewServeMux()
	mux.HandleFunc("/haze", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(hazePage))
	})
	mux.HandleFunc("/dengue", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(denguePage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sources := []corpus.Source{
		{Name: "haze-advice", URL: srv.URL + "/haze", Kind: corpus.SourceKindURL},
		{Name: "dengue-advice", URL: srv.URL + "/dengue", Kind: corpus.SourceKindURL},
	}

	snapshots := storage.NewMemoryStorage()
	svc := corpus.NewService(
		corpus.Config{TopPassages: 2},
		sources,
		loader.NewHTTPLoader(5*time.Second, snapshots, testLogger()),
		chunker.NewTokenChunker(300, 50),
		embedder.NewDeterministicEmbedder(64),
		repo.NewMemoryChunkStore(),
		testLogger(),
	)

	n, err := svc.IngestAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Raw payloads were snapshotted.
	for _, key := range []string{"corpus/haze-advice.html", "corpus/dengue-advice.html"} {
		reader, err := snapshots.Get(context.Background(), key)
		require.NoError(t, err, key)
		reader.Close()
	}

	passages, err := svc.Retrieve(context.Background(), "what should I do during haze")
	require.NoError(t, err)
	require.NotEmpty(t, passages)
	require.LessOrEqual(t, len(passages), 2)

	_, err = svc.Retrieve(context.Background(), "")
	require.Error(t, err)
}

// A dead source must not block the others.
func TestCorpusPipelinePartialFailure(t *testing.T) {
	okPage := `<html><body><p>Apply broad-spectrum sunscreen.</p></body></html>`
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sources := []corpus.Source{
		{Name: "sun-advice", URL: srv.URL + "/ok", Kind: corpus.SourceKindURL},
		{Name: "gone", URL: srv.URL + "/missing", Kind: corpus.SourceKindURL},
	}

	svc := corpus.NewService(
		corpus.Config{TopPassages: 3},
		sources,
		loader.NewHTTPLoader(5*time.Second, nil, testLogger()),
		chunker.NewTokenChunker(300, 50),
		embedder.NewDeterministicEmbedder(64),
		repo.NewMemoryChunkStore(),
		testLogger(),
	)

	n, err := svc.IngestAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
