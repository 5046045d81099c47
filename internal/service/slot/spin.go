package slot

import (
	"context"
	"math"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"slot_backend/internal/apperr"
	"slot_backend/internal/model"
	"slot_backend/internal/monitoring"
	"slot_backend/internal/paytable"
)

// Spin разыгрывает один спин по активной модели.
//
// Валидация идёт без побочных эффектов: запрос либо отклоняется целиком,
// либо применяется целиком, частичного применения (списание без начисления)
// не бывает. Флаг спина снимается отложенно и безусловно, так что упавший
// шаг не оставляет сессию в Spinning.
func (s *serv) Spin(ctx context.Context, req model.SlotSpin) (*model.SpinOutcome, error) {
	if _, ok := s.sessions.Get(req.SessionID); !ok {
		monitoring.SpinRejected(apperr.KindUnauthorized)
		return nil, apperr.New(apperr.KindUnauthorized, "unknown session")
	}

	// Активный снимок модели один на весь спин: конкурентное обновление
	// конфигурации подменяет указатель и этот спин не затрагивает
	pt := s.store.Get()

	bet := req.BetMinor
	if bet <= 0 {
		monitoring.SpinRejected(apperr.KindBadBet)
		return nil, apperr.New(apperr.KindBadBet, "bet must be a positive integer")
	}
	if bet < pt.MinBetMinor {
		monitoring.SpinRejected(apperr.KindBadBet)
		return nil, apperr.Newf(apperr.KindBadBet, "bet is below the minimum of %d", pt.MinBetMinor)
	}

	// Переход Idle -> Spinning; параллельный спин отклоняется, не ждёт
	if err := s.sessions.BeginSpin(req.SessionID); err != nil {
		monitoring.SpinRejected(apperr.KindOf(err))
		return nil, err
	}
	defer s.sessions.EndSpin(req.SessionID)

	// Ставка против баланса сверяется только под взведённым флагом:
	// снимок, прочитанный до BeginSpin, мог устареть из-за параллельного
	// спина, и проверка по нему увела бы баланс в минус
	sess, ok := s.sessions.Get(req.SessionID)
	if !ok {
		monitoring.SpinRejected(apperr.KindUnauthorized)
		return nil, apperr.New(apperr.KindUnauthorized, "unknown session")
	}
	if !pt.AllowOverBalance && bet > sess.BalanceMinor {
		monitoring.SpinRejected(apperr.KindBadBet)
		return nil, apperr.New(apperr.KindBadBet, "bet exceeds current balance")
	}

	var stops [3]int
	var symbols [3]model.Symbol
	for i, reel := range pt.Reels {
		idx, err := s.picker.Pick(len(reel))
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "random draw failed", err)
		}
		stops[i] = idx
		symbols[i] = reel[idx]
	}

	mult, reason := paytable.PayoutMultiplier(symbols[0], symbols[1], symbols[2], pt)

	// Выигрыш округляется вниз до целых минорных единиц
	win := int64(math.Floor(mult * float64(bet)))

	// Списание ставки и начисление выигрыша одной дельтой:
	// balance' = balance - bet + bet*mult
	newBalance, err := s.sessions.ApplySpin(req.SessionID, win-bet)
	if err != nil {
		return nil, err
	}

	outcome := &model.SpinOutcome{
		SpinID:   uuid.NewString(),
		Stops:    stops,
		Symbols:  symbols,
		Mult:     mult,
		WinMinor: win,
		Reason:   reason,
	}
	outcome.Sig = s.signer.Sign(outcome.SpinID, outcome.Stops, outcome.WinMinor)

	s.stats.Record(bet, win)
	monitoring.SpinResolved(bet, win)

	log.WithFields(log.Fields{
		"spin_id": outcome.SpinID,
		"bet":     bet,
		"win":     win,
		"reason":  reason,
		"balance": newBalance,
	}).Debug("spin resolved")

	return outcome, nil
}
