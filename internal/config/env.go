package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/oops"
)

type EnvVars struct {
	AppEnv         string `envconfig:"APP_ENV" default:"dev"`
	Port           int    `envconfig:"PORT" default:"9090"`
	DefinitionsDir string `envconfig:"DEFINITIONS_DIR" default:"definitions"`

	ProfileDB string `envconfig:"PROFILE_DB"`
	ChatLog   string `envconfig:"CHAT_LOG" default:"chat_logs.csv"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	APIKey     string        `envconfig:"API_KEY"`
	RateLimit  int           `envconfig:"RATE_LIMIT" default:"60"`
	RateWindow time.Duration `envconfig:"RATE_WINDOW" default:"1m"`

	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SessionSweep time.Duration `envconfig:"SESSION_SWEEP" default:"5m"`
}

// ChatLogDisabled reports whether turn logging was switched off with "-".
func (e *EnvVars) ChatLogDisabled() bool {
	return e.ChatLog == "" || e.ChatLog == "-"
}

// LoadEnv reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadEnv() (*EnvVars, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oops.In("config").Wrapf(err, "cargando .env")
	}
	var v EnvVars
	if err := envconfig.Process("", &v); err != nil {
		return nil, oops.In("config").Wrapf(err, "leyendo entorno")
	}
	return &v, nil
}
