package config_file_repo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"slot_backend/internal/repository"
)

// Файловая реализация хранилища конфигурации для запуска без Postgres.
// Документ лежит единственным файлом; запись идёт через временный файл
// и rename, чтобы не оставить полузаписанный документ при падении.
type repo struct {
	path string
}

func NewConfigRepository(path string) repository.ConfigRepository {
	return &repo{
		path: path,
	}
}

func (r *repo) Load(_ context.Context) ([]byte, error) {
	doc, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrConfigNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *repo) Save(_ context.Context, doc []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "runtime-config-*.tmp")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
