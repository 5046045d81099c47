package config

import (
	"github.com/joho/godotenv"
)

// Load подхватывает переменные окружения из .env файла
func Load(path string) error {
	return godotenv.Load(path)
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// AdminConfig — статический админ-токен. Пустой токен означает,
// что админский доступ закрыт целиком.
type AdminConfig interface {
	Token() string
}

// SignConfig — общий секрет протокола подписи результатов
type SignConfig interface {
	Secret() []byte
}

// StorageConfig — путь файлового хранилища конфигурации
// для запуска без Postgres
type StorageConfig interface {
	Path() string
}
