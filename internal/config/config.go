package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	// Locale is the language of operator messages.
	Locale   string `env:"LANGTOOL_LOCALE" env-default:"en"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	Export   ExportConfig
	Server   ServerConfig
	Database DatabaseConfig
}

type ExportConfig struct {
	Input        string `env:"EXPORT_INPUT" env-default:"./samples.portuguese.ts"`
	Output       string `env:"EXPORT_OUTPUT" env-default:"./translations_pt.csv"`
	Language     string `env:"EXPORT_LANGUAGE" env-default:"pt-BR"`
	CreateSample bool   `env:"EXPORT_CREATE_SAMPLE" env-default:"false"`
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST"`
	Port            int           `env:"SERVER_PORT" env-default:"3000"`
	StaticDir       string        `env:"SERVER_STATIC_DIR"`
	IndexFile       string        `env:"SERVER_INDEX_FILE"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	// URL is optional; without it the database sink is disabled.
	URL string `env:"DATABASE_URL"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate applies the rules every command relies on. Commands call it again
// after applying their flags.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: LANGTOOL_LOCALE invalide (%q): %w", c.Locale, err)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL doit être debug, info, warn ou error (%q)", c.LogLevel)
	}

	if strings.TrimSpace(c.Export.Input) == "" {
		return fmt.Errorf("config: EXPORT_INPUT est requis et ne peut pas être vide")
	}
	if strings.TrimSpace(c.Export.Output) == "" {
		return fmt.Errorf("config: EXPORT_OUTPUT est requis et ne peut pas être vide")
	}
	if _, err := language.Parse(c.Export.Language); err != nil {
		return fmt.Errorf("config: EXPORT_LANGUAGE invalide (%q): %w", c.Export.Language, err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: SERVER_PORT hors limites (%d)", c.Server.Port)
	}

	if c.Database.URL != "" {
		parsed, err := url.Parse(c.Database.URL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.Database.URL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.Database.URL)
		}
	}

	return nil
}
