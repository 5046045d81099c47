package env

import (
	"errors"

	"github.com/kelseyhightower/envconfig"

	"slot_backend/internal/config"
)

type pgConfig struct {
	PGDSN string `envconfig:"PG_DSN"`
}

// NewPGConfig читает строку подключения к Postgres.
// Отсутствующий DSN — не ошибка конфигурации, а сигнал работать
// на файловом хранилище; вызывающий различает это по ошибке.
func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.PGDSN == "" {
		return nil, errors.New("pg dsn not found")
	}
	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.PGDSN
}
