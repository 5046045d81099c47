// Package sign — протокол аутентификации результата спина.
// Сервер подписывает каноническое сообщение HMAC-SHA256 общим секретом,
// клиент независимо пересчитывает подпись и отвергает результат при расхождении.
// Протокол защищает целостность, не конфиденциальность: стопы и выигрыш
// ходят открытым текстом, детектируется только подмена.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"slot_backend/internal/apperr"
)

type Signer struct {
	secret []byte
}

func New(secret []byte) *Signer {
	return &Signer{secret: secret}
}

// CanonicalMessage строит сообщение вида "spinId|s0,s1,s2|winMinor":
// стопы — десятичные числа через запятую в порядке барабанов.
func CanonicalMessage(spinID string, stops [3]int, winMinor int64) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = strconv.Itoa(s)
	}
	return spinID + "|" + strings.Join(parts, ",") + "|" + strconv.FormatInt(winMinor, 10)
}

// Sign возвращает HMAC-SHA256 канонического сообщения в нижнем hex-регистре
func (s *Signer) Sign(spinID string, stops [3]int, winMinor int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(CanonicalMessage(spinID, stops, winMinor)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify пересчитывает подпись и сравнивает с присланной за константное время.
// Клиентская сторона протокола: при расхождении результат считается
// недоверенным и не должен применяться.
func (s *Signer) Verify(spinID string, stops [3]int, winMinor int64, sig string) error {
	expected := s.Sign(spinID, stops, winMinor)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) != 1 {
		return apperr.New(apperr.KindIntegrityMismatch, "spin signature mismatch")
	}
	return nil
}
