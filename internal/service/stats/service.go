package stats

import (
	"sync"

	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// Размер окна последних спинов для оценки короткого RTP
const windowSize = 500

type spinRecord struct {
	betMinor    int64
	payoutMinor int64
}

// Фактическая статистика спинов. Телеметрия только для чтения:
// на модель игры она не влияет, модель меняет исключительно администратор.
type serv struct {
	mtx    sync.RWMutex
	state  model.SlotStats
	window []spinRecord
}

func NewStatsService() service.StatsService {
	return &serv{
		state: model.SlotStats{
			WindowSize: windowSize,
		},
		window: make([]spinRecord, 0, windowSize),
	}
}

// Record учитывает завершённый спин
func (s *serv) Record(betMinor, payoutMinor int64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.state.TotalSpins++
	s.state.TotalBetMinor += betMinor
	s.state.TotalPayoutMinor += payoutMinor
	if s.state.TotalBetMinor > 0 {
		s.state.RTPPercent = float64(s.state.TotalPayoutMinor) / float64(s.state.TotalBetMinor) * 100
	}

	s.window = append(s.window, spinRecord{betMinor: betMinor, payoutMinor: payoutMinor})
	if len(s.window) > windowSize {
		s.window = s.window[1:]
	}

	var windowBet, windowPayout int64
	for _, rec := range s.window {
		windowBet += rec.betMinor
		windowPayout += rec.payoutMinor
	}
	if windowBet > 0 {
		s.state.WindowRTPPercent = float64(windowPayout) / float64(windowBet) * 100
	} else {
		s.state.WindowRTPPercent = 0
	}
}

// Snapshot возвращает копию текущей статистики
func (s *serv) Snapshot() model.SlotStats {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.state
}
