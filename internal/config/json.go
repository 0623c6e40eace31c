package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is the on-disk layout of the optional config file. Durations
// accept either Go duration strings or nanosecond numbers.
type jsonConfig struct {
	App     jsonApp     `json:"app"`
	Storage jsonStorage `json:"storage"`
	Server  jsonServer  `json:"server"`
}

type jsonApp struct {
	TokenSignKey     string   `json:"token_sign_key"`
	TokenIssuer      string   `json:"token_issuer"`
	TokenDuration    Duration `json:"token_duration"`
	PasswordHashCost int      `json:"password_hash_cost"`
	Version          string   `json:"version"`
	LogLevel         string   `json:"log_level"`
}

type jsonStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
}

type jsonServer struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
	AllowedOrigins []string `json:"allowed_origins"`
}

func (c jsonConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     c.App.TokenSignKey,
			TokenIssuer:      c.App.TokenIssuer,
			TokenDuration:    time.Duration(c.App.TokenDuration),
			PasswordHashCost: c.App.PasswordHashCost,
			Version:          c.App.Version,
			LogLevel:         c.App.LogLevel,
		},
		Storage: Storage{DB: DB{DSN: c.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
			AllowedOrigins: c.Server.AllowedOrigins,
		},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}

	var file jsonConfig
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return file.structured(), nil
}

// Duration decodes "90s" style strings as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %w", err)
	}
	*d = Duration(nanos)

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
