package main

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	corpusdomain "github.com/steadyday/steadyday/internal/domain/corpus"
	"github.com/steadyday/steadyday/internal/domain/envreport"
	statsdomain "github.com/steadyday/steadyday/internal/domain/querystats"
	"github.com/steadyday/steadyday/internal/infra/config"
	"github.com/steadyday/steadyday/internal/infra/corpus/chunker"
	"github.com/steadyday/steadyday/internal/infra/corpus/embedder"
	"github.com/steadyday/steadyday/internal/infra/corpus/loader"
	"github.com/steadyday/steadyday/internal/infra/corpus/repo"
	"github.com/steadyday/steadyday/internal/infra/corpus/storage"
	"github.com/steadyday/steadyday/internal/infra/llm/chatgpt"
	"github.com/steadyday/steadyday/internal/infra/nea"
	"github.com/steadyday/steadyday/internal/infra/querystats"
)

func provideReportConfig(cfg *config.Config) envreport.Config {
	return envreport.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideNEAClient(cfg *config.Config) *nea.Client {
	return nea.NewClient(cfg.NEA.BaseURL, cfg.NEA.Timeout)
}

func provideCorpusConfig(cfg *config.Config) corpusdomain.Config {
	return corpusdomain.Config{TopPassages: cfg.Report.TopPassages}
}

// provideCorpusSources flattens the configured PDF and URL maps into a
// stable, name-sorted list so ingestion order is deterministic.
func provideCorpusSources(cfg *config.Config) []corpusdomain.Source {
	sources := make([]corpusdomain.Source, 0, len(cfg.Corpus.PDFSources)+len(cfg.Corpus.URLSources))
	for name, url := range cfg.Corpus.PDFSources {
		sources = append(sources, corpusdomain.Source{Name: name, URL: url, Kind: corpusdomain.SourceKindPDF})
	}
	for name, url := range cfg.Corpus.URLSources {
		sources = append(sources, corpusdomain.Source{Name: name, URL: url, Kind: corpusdomain.SourceKindURL})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	return sources
}

func provideCorpusStorage(cfg *config.Config, logger *slog.Logger) corpusdomain.ObjectStorage {
	if !cfg.Corpus.ObjectStorage.Enabled {
		return storage.NewMemoryStorage()
	}
	s3 := cfg.Corpus.ObjectStorage
	r2, err := storage.NewR2Storage(s3.Endpoint, s3.AccessKey, s3.SecretKey, s3.Bucket, s3.Region, logger)
	if err != nil {
		logger.Error("failed to initialize object storage, using memory snapshots", "error", err)
		return storage.NewMemoryStorage()
	}
	logger.Info("corpus object storage enabled", "bucket", s3.Bucket)
	return r2
}

func provideCorpusLoader(cfg *config.Config, objectStorage corpusdomain.ObjectStorage, logger *slog.Logger) corpusdomain.SourceLoader {
	return loader.NewHTTPLoader(cfg.Corpus.FetchTimeout, objectStorage, logger)
}

func provideCorpusChunker(cfg *config.Config) corpusdomain.Chunker {
	return chunker.NewTokenChunker(cfg.Corpus.ChunkTokens, cfg.Corpus.ChunkOverlap)
}

// provideCorpusEmbedder picks the embedding backend. Setting the embedding
// model to "offline" swaps in the deterministic hash embedder, which keeps
// local development working without burning API quota.
func provideCorpusEmbedder(cfg *config.Config, client *chatgpt.Client, logger *slog.Logger) corpusdomain.Embedder {
	if strings.EqualFold(cfg.LLM.EmbeddingModel, "offline") {
		logger.Info("using offline deterministic embedder")
		return embedder.NewDeterministicEmbedder(64)
	}
	return embedder.NewChatGPTEmbedder(client, cfg.LLM.EmbeddingModel, logger)
}

func provideChunkStore(cfg *config.Config, logger *slog.Logger) corpusdomain.ChunkStore {
	fallback := repo.NewMemoryChunkStore()
	dsn := strings.TrimSpace(cfg.Corpus.Postgres.DSN)
	if dsn == "" {
		logger.Info("corpus postgres dsn not set, using memory chunk store")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory chunk store", "error", err)
		return fallback
	}
	if cfg.Corpus.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Corpus.Postgres.MaxConns
	}
	if cfg.Corpus.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Corpus.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory chunk store", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory chunk store", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("corpus postgres chunk store enabled")
	return repo.NewPostgresChunkStore(pool)
}

func provideStatsStore(cfg *config.Config, logger *slog.Logger) statsdomain.Store {
	if cfg.Stats.ValkeyEnabled {
		opt, err := buildValkeyOptions(cfg.Stats.ValkeyAddr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return querystats.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return querystats.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("querystats valkey store enabled", "addr", cfg.Stats.ValkeyAddr)
			return querystats.NewValkeyStore(client, "querystats")
		}
	}
	return querystats.NewMemoryStore()
}

func provideStatsService(store statsdomain.Store, logger *slog.Logger) *statsdomain.Service {
	return statsdomain.NewService(store, 10, logger)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
