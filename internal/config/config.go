// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is every setting the CLI and server read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/wordle.db"`

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	PickMode    string `env:"PICK_MODE" envDefault:"sequential"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	Port         string        `env:"PORT" envDefault:"5175"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	Production   bool          `env:"PRODUCTION" envDefault:"false"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiry    time.Duration `env:"JWT_EXPIRY" envDefault:"336h"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"wordle_token"`
	HandlerLimit time.Duration `env:"HANDLER_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// ApplyLogLevel sets zerolog's global level; unknown names leave it unchanged.
func (c Config) ApplyLogLevel() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
