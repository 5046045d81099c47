package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"slot_backend/internal/model"
)

type paytableSource struct {
	PaytablePath string `envconfig:"PAYTABLE_PATH" default:"paytable.yaml"`
}

// NewDefaultPaytable возвращает модель по умолчанию для этого процесса.
// Если рядом лежит paytable.yaml (или файл из PAYTABLE_PATH), встроенные
// дефолты заменяются его содержимым — так математику можно перенастроить
// без пересборки. Отсутствие файла — штатный случай.
func NewDefaultPaytable() (model.Paytable, error) {
	var src paytableSource
	if err := envconfig.Process("", &src); err != nil {
		return model.Paytable{}, err
	}

	raw, err := os.ReadFile(src.PaytablePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.DefaultPaytable(), nil
		}
		return model.Paytable{}, err
	}

	var pt model.Paytable
	if err := yaml.Unmarshal(raw, &pt); err != nil {
		return model.Paytable{}, err
	}

	log.WithField("path", src.PaytablePath).Info("default paytable loaded from file")
	return pt, nil
}
