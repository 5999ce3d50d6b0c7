package cliparse

import (
	"errors"
	"flag"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"paperstock.db"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL  string `env:"DATABASE_URL"`
}

// ParseFlags resolves configuration from CLI flags with environment
// variable fallback. Flags win over the environment.
func ParseFlags(args []string) (Config, error) {
	var envCfg Config
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, err
	}

	var cfg Config
	fs := flag.NewFlagSet("paperstock", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "u", "", "PostgreSQL connection string")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		cfg.Port = envCfg.Port
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = envCfg.DatabasePath
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envCfg.DatabaseType
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = envCfg.DatabaseURL
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("invalid port")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.DatabaseType == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("postgres requires a connection string (use -u or DATABASE_URL env)")
	}

	return cfg, nil
}
