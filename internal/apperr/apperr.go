// Package apperr — единая таксономия ошибок ядра.
// Каждая ошибка несёт стабильный машинный вид (Kind) и человекочитаемое сообщение;
// хендлеры по Kind выбирают HTTP-статус, ничего не проглатывается молча.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// KindUnauthorized — неизвестная сессия или невалидный админ-токен
	KindUnauthorized Kind = "unauthorized"
	// KindBadBet — ставка не прошла нормализацию или политику
	KindBadBet Kind = "bad_bet"
	// KindSpinInProgress — сработал защитный флаг конкурентного спина
	KindSpinInProgress Kind = "spin_in_progress"
	// KindConfigValidation — предложенная конфигурация нарушает инвариант
	KindConfigValidation Kind = "config_validation"
	// KindIntegrityMismatch — клиентская проверка подписи не сошлась
	KindIntegrityMismatch Kind = "integrity_mismatch"
	// KindInternal — всё остальное
	KindInternal Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Wrap оборачивает низлежащую ошибку, сохраняя её для errors.Is/As
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// KindOf возвращает вид ошибки; для чужих ошибок — KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind проверяет вид ошибки через цепочку Unwrap
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus отображает вид ошибки на HTTP-статус.
// IntegrityMismatch сервер не отдаёт — это клиентская проверка,
// но отображение оставлено полным.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadBet, KindConfigValidation:
		return http.StatusBadRequest
	case KindSpinInProgress:
		return http.StatusTooManyRequests
	case KindIntegrityMismatch:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
