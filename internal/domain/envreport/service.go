// Package envreport orchestrates one environmental report: resolve region
// and time intent from the question, pick the right weather source, pull
// live readings alongside historical averages and advisory passages, then
// hand the assembled context to the LLM exactly once.
package envreport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/steadyday/steadyday/internal/domain/historical"
	"github.com/steadyday/steadyday/internal/domain/querytime"
	"github.com/steadyday/steadyday/internal/domain/region"
	"github.com/steadyday/steadyday/internal/infra/llm/chatgpt"
	apperrors "github.com/steadyday/steadyday/pkg/errors"
	"github.com/steadyday/steadyday/pkg/metrics"
	"github.com/steadyday/steadyday/pkg/timeutil"
)

// Service exposes the report generation pipeline.
type Service interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// ChatClient is the single-call LLM dependency.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Retriever returns up to k advisory passages for the raw question. A nil
// Retriever (construction failure at startup) degrades to a placeholder.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]string, error)
}

// Config tunes the generation step.
type Config struct {
	Model       string
	Temperature float32
}

type service struct {
	cfg       Config
	nea       NEAClient
	dengue    DengueSource
	retriever Retriever
	chat      ChatClient
	tables    *historical.Tables
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the report domain. retriever may be nil.
func NewService(cfg Config, neaClient NEAClient, dengue DengueSource, retriever Retriever, chat ChatClient, tables *historical.Tables, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		nea:       neaClient,
		dengue:    dengue,
		retriever: retriever,
		chat:      chat,
		tables:    tables,
		logger:    logger.With("component", "envreport.service"),
		now:       timeutil.NowSGT,
	}
}

func (s *service) Generate(ctx context.Context, req Request) (Result, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Result{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	now := s.now().In(timeutil.Singapore)
	target := region.Resolve(question)
	resolved := querytime.Resolve(question, now)
	isToday := resolved.IsToday(now)
	source := SelectSource(isToday, resolved.Hour, now.Hour())

	s.logger.Info("query resolved",
		"region", target,
		"date", resolved.Date.Format("2006-01-02"),
		"hour", resolved.Hour,
		"source", source.Label(),
	)

	weather := s.fetchWeather(ctx, source, resolved, now, target)

	// PSI and UV have no forecast product: for a future day the live fetch
	// is skipped outright and the historical table is the only reference.
	var psi, uv Reading
	if isToday {
		psi = s.fetchPSI(ctx, target)
		uv = s.fetchUV(ctx)
	} else {
		when := resolved.Date.Format("January 02")
		psi = Reading{Summary: fmt.Sprintf("Live PSI forecast for %s is not available via NEA.", when), Live: true}
		uv = Reading{Summary: fmt.Sprintf("Live UV Index forecast for %s is not available via NEA.", when), Live: true}
	}

	dengue := s.dengue.Clusters(ctx, question)
	hist := s.tables.Lookup(resolved.Date, resolved.Hour)
	passages := s.retrievePassages(ctx, question)

	prompt := buildUserPrompt(promptInput{
		WeatherSummary: fmt.Sprintf("Weather Data (%s):\n%s", source.Label(), weather.Summary),
		LivePSI:        psi.Summary,
		HistoricalPSI:  hist.PSI,
		LiveUV:         uv.Summary,
		HistoricalUV:   hist.UV,
		Dengue:         dengue.Summary,
		Passages:       passages,
		Question:       question,
	})

	completion, err := s.chat.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: s.cfg.Temperature,
	})
	if err != nil || len(completion.Choices) == 0 {
		// One uniform degraded result for any generation failure: all four
		// flags drop to false and the text explains rather than reports.
		if err != nil {
			s.logger.Error("report generation failed", "error", err)
		} else {
			s.logger.Error("report generation returned no choices")
		}
		return Result{
			Response:      "System Error: Failed to generate the environmental report. Please try again shortly.",
			Region:        string(target),
			Date:          resolved.Date.Format("2006-01-02"),
			Hour:          resolved.Hour,
			WeatherSource: source.Label(),
		}, nil
	}

	return Result{
		Response:      completion.Choices[0].Message.Content,
		WeatherStatus: weather.Live,
		PSIStatus:     psi.Live,
		UVStatus:      uv.Live,
		DengueStatus:  dengue.Live,
		Region:        string(target),
		Date:          resolved.Date.Format("2006-01-02"),
		Hour:          resolved.Hour,
		WeatherSource: source.Label(),
		Usage: metrics.TokenUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

func (s *service) fetchWeather(ctx context.Context, source Source, resolved querytime.Resolved, now time.Time, target region.Code) Reading {
	switch source {
	case SourceFutureDay:
		return s.fetchFourDay(ctx)
	case SourceTodayLater:
		return s.fetchTwentyFourHour(ctx)
	case SourceTodayPastOrNow:
		return s.fetchTwoHour(ctx, at(resolved.Date, now.Hour()), target)
	default:
		return s.fetchTwoHour(ctx, at(resolved.Date, resolved.Hour), target)
	}
}

func (s *service) retrievePassages(ctx context.Context, question string) []string {
	if s.retriever == nil {
		return nil
	}
	passages, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		s.logger.Warn("passage retrieval failed", "error", err)
		return nil
	}
	return passages
}

func at(date time.Time, hour int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, date.Location())
}
