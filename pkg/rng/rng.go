// Package rng — источник случайных индексов для розыгрыша стопов.
// Вынесен за интерфейс, чтобы в тестах подменять выпадающие индексы
// детерминированным источником.
package rng

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Picker выдаёт равномерный случайный индекс в [0, n)
type Picker interface {
	Pick(n int) (int, error)
}

// CryptoPicker — криптостойкая реализация поверх crypto/rand.
// Исходы не должны быть предсказуемы или воспроизводимы наблюдателем:
// на них может висеть реальная ценность.
type CryptoPicker struct{}

func (CryptoPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("rng: pick range must be positive")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
