package env

import (
	"github.com/kelseyhightower/envconfig"

	"slot_backend/internal/config"
)

type adminConfig struct {
	AdminToken string `envconfig:"ADMIN_TOKEN"`
}

// NewAdminConfig читает статический админ-токен. Пустое значение валидно:
// guard в этом случае отклоняет все админские запросы (fail closed).
func NewAdminConfig() (config.AdminConfig, error) {
	var cfg adminConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *adminConfig) Token() string {
	return cfg.AdminToken
}
