package env

import (
	"github.com/kelseyhightower/envconfig"

	"slot_backend/internal/config"
)

type storageConfig struct {
	ConfigPath string `envconfig:"CONFIG_PATH" default:"data/runtime-config.json"`
}

func NewStorageConfig() (config.StorageConfig, error) {
	var cfg storageConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *storageConfig) Path() string {
	return cfg.ConfigPath
}
