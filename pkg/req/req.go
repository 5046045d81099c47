package req

import (
	"encoding/json"
	"io"
)

// Decode читает JSON-тело запроса в структуру типа T.
// Неизвестные поля отклоняются: частичные обновления конфигурации
// не должны молча принимать опечатки в именах полей.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&payload)
	return payload, err
}
