// Package loader fetches corpus sources over HTTP and extracts plain text
// from PDF and HTML payloads. Raw payloads are snapshotted to object
// storage so a later re-ingestion can diff against what was last seen.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domain "github.com/steadyday/steadyday/internal/domain/corpus"
	apperrors "github.com/steadyday/steadyday/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; steadyday/1.0)"
	maxPayloadSize = 32 << 20
)

// HTTPLoader downloads sources and extracts their text. storage may be nil,
// in which case snapshots are skipped.
type HTTPLoader struct {
	httpClient *http.Client
	storage    domain.ObjectStorage
	logger     *slog.Logger
}

// NewHTTPLoader constructs a loader.
func NewHTTPLoader(timeout time.Duration, storage domain.ObjectStorage, logger *slog.Logger) *HTTPLoader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPLoader{
		httpClient: &http.Client{Timeout: timeout},
		storage:    storage,
		logger:     logger.With("component", "corpus.loader"),
	}
}

// Load fetches the source and returns its extracted plain text.
func (l *HTTPLoader) Load(ctx context.Context, src domain.Source) (string, error) {
	payload, mimeType, err := l.fetch(ctx, src.URL)
	if err != nil {
		return "", err
	}
	l.snapshot(ctx, src, payload, mimeType)

	switch src.Kind {
	case domain.SourceKindPDF:
		text, err := extractPDF(payload)
		if err != nil {
			return "", apperrors.Wrap("load_error", "pdf extraction failed", err)
		}
		return text, nil
	case domain.SourceKindURL:
		return extractHTML(payload), nil
	default:
		return "", apperrors.Wrap("invalid_input", fmt.Sprintf("unknown source kind %q", src.Kind), nil)
	}
}

func (l *HTTPLoader) fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", apperrors.Wrap("load_error", "failed to build request", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, "", apperrors.Wrap("load_error", "fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, "", apperrors.Wrap("load_error", fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, "", apperrors.Wrap("load_error", "failed to read body", err)
	}
	return payload, resp.Header.Get("Content-Type"), nil
}

func (l *HTTPLoader) snapshot(ctx context.Context, src domain.Source, payload []byte, mimeType string) {
	if l.storage == nil {
		return
	}
	key := "corpus/" + sanitizeKey(src.Name) + extensionFor(src.Kind)
	if mimeType == "" {
		mimeType = http.DetectContentType(payload)
	}
	if _, err := l.storage.Put(ctx, key, payload, mimeType); err != nil {
		l.logger.Warn("snapshot upload failed", "source", src.Name, "error", err)
	}
}

func sanitizeKey(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		return "source"
	}
	return name
}

func extensionFor(kind domain.SourceKind) string {
	if kind == domain.SourceKindPDF {
		return ".pdf"
	}
	return ".html"
}

var _ domain.SourceLoader = (*HTTPLoader)(nil)
