//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/steadyday/steadyday/internal/bootstrap"
	"github.com/steadyday/steadyday/internal/domain/corpus"
	"github.com/steadyday/steadyday/internal/domain/envreport"
	"github.com/steadyday/steadyday/internal/domain/historical"
	"github.com/steadyday/steadyday/internal/infra/config"
	"github.com/steadyday/steadyday/internal/infra/dengue"
	"github.com/steadyday/steadyday/internal/infra/llm/chatgpt"
	"github.com/steadyday/steadyday/internal/infra/nea"
	httpiface "github.com/steadyday/steadyday/internal/interface/http"
	"github.com/steadyday/steadyday/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideReportConfig,
		provideChatGPTClient,
		provideNEAClient,
		provideCorpusConfig,
		provideCorpusSources,
		provideCorpusStorage,
		provideCorpusLoader,
		provideCorpusChunker,
		provideCorpusEmbedder,
		provideChunkStore,
		provideStatsStore,
		provideStatsService,
		historical.NewTables,
		dengue.NewStubSource,
		corpus.NewService,
		envreport.NewService,
		wire.Bind(new(envreport.NEAClient), new(*nea.Client)),
		wire.Bind(new(envreport.DengueSource), new(*dengue.StubSource)),
		wire.Bind(new(envreport.Retriever), new(*corpus.Service)),
		wire.Bind(new(envreport.ChatClient), new(*chatgpt.Client)),
		wire.Bind(new(bootstrap.Ingestor), new(*corpus.Service)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
