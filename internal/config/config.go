package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorePostgREST = "postgrest"
	StorePostgres  = "postgres"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	ErrMissingStore       = errors.New("no store configured: set SUPABASE_URL and SUPABASE_KEY, or DATABASE_URL")
	ErrMissingProviderKey = errors.New("missing API key for extractor provider")
	ErrUnknownProvider    = errors.New("unknown extractor provider")
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"caixa"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"console"`
	}

	Supabase struct {
		URL   string `envconfig:"SUPABASE_URL"`
		Key   string `envconfig:"SUPABASE_KEY"`
		Table string `envconfig:"SUPABASE_TABLE" default:"transacoes"`
	}

	DB struct {
		URL string `envconfig:"DATABASE_URL"`
	}

	Extractor struct {
		Provider string `envconfig:"EXTRACTOR_PROVIDER" default:"openai"`
	}

	OpenAI struct {
		APIKey string `envconfig:"OPENAI_API_KEY"`
		Model  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	}

	Gemini struct {
		APIKey string `envconfig:"GEMINI_API_KEY"`
		Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	}

	// WhatsApp group id that must appear in remoteJid. Empty lets everything through.
	Group struct {
		ID string `envconfig:"WPP_GROUP_ID"`
	}
}

// Store picks the persistence backend; a direct DSN wins over the REST endpoint.
func (c *Config) Store() string {
	if c.DB.URL != "" {
		return StorePostgres
	}

	return StorePostgREST
}

func (c *Config) Provider() string {
	return strings.ToLower(strings.TrimSpace(c.Extractor.Provider))
}

func (c *Config) Validate() error {
	if c.DB.URL == "" && (c.Supabase.URL == "" || c.Supabase.Key == "") {
		return ErrMissingStore
	}

	switch c.Provider() {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY", ErrMissingProviderKey)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingProviderKey)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Extractor.Provider)
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
