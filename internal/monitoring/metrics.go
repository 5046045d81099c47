package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"slot_backend/internal/apperr"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path"},
	)

	SpinsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_spins_total",
			Help: "Total resolved spins",
		},
	)

	SpinsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slot_spins_rejected_total",
			Help: "Total rejected spin requests by error kind",
		},
		[]string{"kind"},
	)

	BetMinorTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_bet_minor_total",
			Help: "Total wagered amount in minor units",
		},
	)

	PayoutMinorTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_payout_minor_total",
			Help: "Total paid out amount in minor units",
		},
	)

	ConfigUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_config_updates_total",
			Help: "Total successful runtime config updates",
		},
	)
)

func Init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(SpinsTotal)
	prometheus.MustRegister(SpinsRejectedTotal)
	prometheus.MustRegister(BetMinorTotal)
	prometheus.MustRegister(PayoutMinorTotal)
	prometheus.MustRegister(ConfigUpdatesTotal)
}

func SpinResolved(betMinor, payoutMinor int64) {
	SpinsTotal.Inc()
	BetMinorTotal.Add(float64(betMinor))
	PayoutMinorTotal.Add(float64(payoutMinor))
}

func SpinRejected(kind apperr.Kind) {
	SpinsRejectedTotal.WithLabelValues(string(kind)).Inc()
}
