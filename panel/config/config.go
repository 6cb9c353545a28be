// Package config loads the panel configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sapujagad-id/botpanel/pkg/logger"
)

var (
	ErrBackendURL   = errors.New("config: BACKEND_URL must be an absolute http(s) URL")
	ErrCookieSecret = errors.New("config: COOKIE_SECRET must be at least 32 bytes")
	ErrNoModels     = errors.New("config: BOT_MODELS must not be empty")
	ErrNoAdapters   = errors.New("config: BOT_ADAPTERS must not be empty")
	ErrAccessLevel  = errors.New("config: ACCESS_LEVEL_MAX must not be negative")
)

// Config is the panel configuration.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	BackendURL      string        `env:"BACKEND_URL,required"`
	BackendTimeout  time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	CookieSecret    string        `env:"COOKIE_SECRET"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AccessLevelMax  int           `env:"ACCESS_LEVEL_MAX" envDefault:"2"`

	BotForm BotForm
	Log     logger.Config
}

// BotForm configures the chatbot form.
type BotForm struct {
	// Slug enables the slug and data source fields.
	Slug        bool     `env:"BOT_FORM_SLUG" envDefault:"true"`
	Models      []string `env:"BOT_MODELS" envSeparator:"," envDefault:"OpenAI,Anthropic"`
	Adapters    []string `env:"BOT_ADAPTERS" envSeparator:"," envDefault:"Slack"`
	DataSources []string `env:"BOT_DATA_SOURCES" envSeparator:","`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrBackendURL
	}
	if c.CookieSecret != "" && len(c.CookieSecret) < 32 {
		return ErrCookieSecret
	}
	if len(c.BotForm.Models) == 0 {
		return ErrNoModels
	}
	if len(c.BotForm.Adapters) == 0 {
		return ErrNoAdapters
	}
	if c.AccessLevelMax < 0 {
		return ErrAccessLevel
	}
	return nil
}
