package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	AppName    = "polyfaq"
	AppVersion = "1.0.0"
)

// DefaultCacheTTL is how long a serialized FAQ page stays valid in Redis.
const DefaultCacheTTL = 300 * time.Second

// DefaultLanguages is the eager translation set applied on FAQ creation.
var DefaultLanguages = []string{"hi", "bn"}

type AIConfig struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string
	Model    string
	QPS      int
}

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	RedisURL  string
	CacheTTL  time.Duration
	Languages []string
	LogLevel  string
	AI        AIConfig
}

func Load() Config {
	addr := os.Getenv("POLYFAQ_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("POLYFAQ_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	dbPath := os.Getenv("POLYFAQ_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "polyfaq.db")
	}
	redisURL := os.Getenv("POLYFAQ_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	ttl := DefaultCacheTTL
	if raw := os.Getenv("POLYFAQ_CACHE_TTL"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	langs := DefaultLanguages
	if raw := os.Getenv("POLYFAQ_LANGS"); raw != "" {
		langs = nil
		for _, lang := range strings.Split(raw, ",") {
			lang = strings.TrimSpace(lang)
			if lang != "" {
				langs = append(langs, lang)
			}
		}
	}

	qps := 10
	if raw := os.Getenv("POLYFAQ_AI_QPS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			qps = n
		}
	}

	provider := os.Getenv("POLYFAQ_AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}
	model := os.Getenv("POLYFAQ_AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return Config{
		Addr:      addr,
		DBPath:    filepath.Clean(dbPath),
		DataDir:   filepath.Clean(dataDir),
		RedisURL:  redisURL,
		CacheTTL:  ttl,
		Languages: langs,
		LogLevel:  os.Getenv("POLYFAQ_LOG_LEVEL"),
		AI: AIConfig{
			Provider: provider,
			APIKey:   os.Getenv("POLYFAQ_AI_API_KEY"),
			BaseURL:  os.Getenv("POLYFAQ_AI_BASE_URL"),
			Model:    model,
			QPS:      qps,
		},
	}
}
