package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Roster struct {
		// The roster manages exactly one calendar year.
		Year              int    `env:"ROSTER_YEAR" envDefault:"2026"`
		CatalogFile       string `env:"ROSTER_CATALOG_FILE"`
		TitlesDocument    string `env:"ROSTER_TITLES_DOCUMENT" envDefault:"docs/titulos-liturgicos.pdf"`
		FreeTextCelebrant bool   `env:"ROSTER_FREE_TEXT_CELEBRANT"`
	}

	Sheet struct {
		URL      string `env:"SHEET_URL"`
		Table    string `env:"SHEET_TABLE" envDefault:"missas"`
		Username string `env:"SHEET_USERNAME"`
		Password string `env:"SHEET_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"secretaria:secretaria"`
		BasicClients       []ConfigBasicClient
	}

	Cache struct {
		Enabled bool `env:"CACHE_ENABLED" envDefault:"true"`
		Size    int  `env:"CACHE_SIZE" envDefault:"8"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Normalize the environment name
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
