package env

import (
	"github.com/kelseyhightower/envconfig"

	"slot_backend/internal/config"
)

type signConfig struct {
	// Дефолт только для локальной разработки, в проде секрет обязателен
	HMACSecret string `envconfig:"HMAC_SECRET" default:"dev-secret"`
}

func NewSignConfig() (config.SignConfig, error) {
	var cfg signConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *signConfig) Secret() []byte {
	return []byte(cfg.HMACSecret)
}
