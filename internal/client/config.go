package client

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment only.
type Config struct {
	// ServerAddress is the base URL of the hub server.
	ServerAddress string `env:"HUB_SERVER_ADDRESS" envDefault:"http://localhost:3000"`

	// Token is sent on routes that need authentication.
	Token string `env:"HUB_TOKEN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing client env: %w", err)
	}
	return cfg, nil
}
