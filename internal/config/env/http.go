package env

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"slot_backend/internal/config"
)

type httpConfig struct {
	Host string `envconfig:"HTTP_HOST" default:""`
	Port int    `envconfig:"HTTP_PORT" default:"3001"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid http config: %w", err)
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
