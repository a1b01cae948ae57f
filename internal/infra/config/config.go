package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	LLM    LLMConfig    `yaml:"llm"`
	NEA    NEAConfig    `yaml:"nea"`
	Report ReportConfig `yaml:"report"`
	Corpus CorpusConfig `yaml:"corpus"`
	Stats  StatsConfig  `yaml:"stats"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey         string  `yaml:"apiKey"`
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
}

// NEAConfig points at the data.gov.sg real-time environment endpoints.
type NEAConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// ReportConfig tunes the report generation domain.
type ReportConfig struct {
	TopPassages int `yaml:"topPassages"`
}

// CorpusConfig drives advisory document ingestion and retrieval.
type CorpusConfig struct {
	PDFSources    map[string]string   `yaml:"pdfSources"`
	URLSources    map[string]string   `yaml:"urlSources"`
	ChunkTokens   int                 `yaml:"chunkTokens"`
	ChunkOverlap  int                 `yaml:"chunkOverlap"`
	FetchTimeout  time.Duration       `yaml:"fetchTimeout"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	ObjectStorage ObjectStorageConfig `yaml:"objectStorage"`
}

// PostgresConfig contains DSN and pooling settings for the pgvector store.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectStorageConfig holds S3-compatible credentials for raw source snapshots.
type ObjectStorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// StatsConfig controls the query statistics store.
type StatsConfig struct {
	ValkeyEnabled bool   `yaml:"valkeyEnabled"`
	ValkeyAddr    string `yaml:"valkeyAddr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("NEA_BASE_URL"); v != "" {
		cfg.NEA.BaseURL = v
	}
	if v := os.Getenv("NEA_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.NEA.Timeout = parsed
		}
	}
	if v := os.Getenv("REPORT_TOP_PASSAGES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Report.TopPassages = parsed
		}
	}
	if v := os.Getenv("CORPUS_POSTGRES_DSN"); v != "" {
		cfg.Corpus.Postgres.DSN = v
	}
	if v := os.Getenv("CORPUS_STORAGE_ENABLED"); v != "" {
		cfg.Corpus.ObjectStorage.Enabled = isTrue(v)
	}
	if v := os.Getenv("CORPUS_STORAGE_ENDPOINT"); v != "" {
		cfg.Corpus.ObjectStorage.Endpoint = v
	}
	if v := os.Getenv("CORPUS_STORAGE_ACCESS_KEY"); v != "" {
		cfg.Corpus.ObjectStorage.AccessKey = v
	}
	if v := os.Getenv("CORPUS_STORAGE_SECRET_KEY"); v != "" {
		cfg.Corpus.ObjectStorage.SecretKey = v
	}
	if v := os.Getenv("CORPUS_STORAGE_BUCKET"); v != "" {
		cfg.Corpus.ObjectStorage.Bucket = v
	}
	if v := os.Getenv("STATS_VALKEY_ENABLED"); v != "" {
		cfg.Stats.ValkeyEnabled = isTrue(v)
	}
	if v := os.Getenv("STATS_VALKEY_ADDR"); v != "" {
		cfg.Stats.ValkeyAddr = v
	}
}

func isTrue(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		LLM: LLMConfig{
			Model:          "gpt-4o",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0,
		},
		NEA: NEAConfig{
			BaseURL: "https://api.data.gov.sg/v1/environment",
			Timeout: 10 * time.Second,
		},
		Report: ReportConfig{
			TopPassages: 3,
		},
		Corpus: CorpusConfig{
			PDFSources: map[string]string{
				"Dengue 2025 Q2 data":          "https://www.nea.gov.sg/docs/default-source/default-document-library/q2-2025-dengue-surveillance-data-(110kb).pdf",
				"Dengue 2025 Q1 data":          "https://www.nea.gov.sg/docs/default-source/default-document-library/q1-2025-dengue-surveillance-data.pdf",
				"UV Radiation & UV Protection": "https://www.weather.gov.sg/wp-content/uploads/2015/07/Personal-Guidebook-to-UV-Radiation.pdf",
			},
			URLSources: map[string]string{
				"NEA Dengue Prevention": "https://www.nea.gov.sg/dengue-zika/stop-dengue-now",
				"HealthHub Haze Advice": "https://www.healthhub.sg/live-healthy/1922/how-to-protect-yourself-against-haze",
				"NEA Haze Guidelines":   "https://www.nea.gov.sg/our-services/pollution-control/air-pollution/managing-haze",
				"Seasonal Heat Stress":  "https://www.weather.gov.sg/heat-stress/",
			},
			ChunkTokens:  300,
			ChunkOverlap: 50,
			FetchTimeout: 10 * time.Second,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Stats: StatsConfig{},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.NEA.BaseURL) == "" {
		return errors.New("nea.baseUrl cannot be empty")
	}
	if c.NEA.Timeout <= 0 {
		return errors.New("nea.timeout must be positive")
	}
	if c.Report.TopPassages <= 0 {
		return errors.New("report.topPassages must be positive")
	}
	if c.Corpus.ChunkTokens <= 0 {
		return errors.New("corpus.chunkTokens must be positive")
	}
	if c.Corpus.ChunkOverlap < 0 {
		return errors.New("corpus.chunkOverlap cannot be negative")
	}
	if c.Corpus.FetchTimeout <= 0 {
		return errors.New("corpus.fetchTimeout must be positive")
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	if c.Stats.ValkeyEnabled && strings.TrimSpace(c.Stats.ValkeyAddr) == "" {
		return errors.New("stats.valkeyAddr cannot be empty when valkey is enabled")
	}
	return nil
}
