// apps/solver/internal/config/config.go
//
// Process configuration.
// A .env file in the working directory is loaded first (if present), then
// the environment is parsed into Config. Real environment variables win
// over .env entries.

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every setting the binary reads from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Dictionary source; see words.Load for precedence.
	WordsFile string `env:"WORDS_FILE"`
	WordsDB   string `env:"WORDS_DB"`

	MaxTurns  int    `env:"MAX_TURNS" envDefault:"6"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	// HTTP session API.
	Port          string        `env:"PORT" envDefault:"5175"`
	ClientOrigin  string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"2h"`
}

// Load reads .env (best effort) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTurns < 1 {
		return Config{}, fmt.Errorf("parse env: MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}

// SetupLogging sets the global zerolog level from cfg. When console is true
// output is human-readable on w (stderr if nil); otherwise JSON.
func SetupLogging(cfg Config, console bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
