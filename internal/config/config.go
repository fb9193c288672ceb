package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-autopilot/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables with caarlos0/env; nested sections use
// envPrefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). It is attached to
	// every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Production configs.Production `envPrefix:"PRODUCTION_"`
	Callback   configs.Callback   `envPrefix:"CALLBACK_"`
	Scheduler  configs.Scheduler  `envPrefix:"SCHEDULER_"`
	Metrics    configs.Metrics    `envPrefix:"METRICS_"`

	// OfferMappings pairs external offer ids with their numeric ids, written
	// as OFFER_MAPPINGS=recA:1,recB:2.
	OfferMappings map[string]int64 `env:"OFFER_MAPPINGS" envSeparator:"," envKeyValSeparator:":"`
}

// Load reads an optional .env file from the working directory and then the
// environment into a Config. Variables already set in the environment win
// over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are ignored.
func LoadFiles(files ...string) (Config, error) {
	var cfg Config
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Production.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
