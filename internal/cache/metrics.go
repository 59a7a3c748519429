package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitledger",
		Subsystem: "balance_cache",
		Name:      "lookups_total",
		Help:      "Balance cache lookups by result (hit, miss, unavailable).",
	}, []string{"result"})

	invalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splitledger",
		Subsystem: "balance_cache",
		Name:      "invalidations_total",
		Help:      "Balance cache entries deleted after ledger writes.",
	})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitledger",
		Subsystem: "balance_cache",
		Name:      "errors_total",
		Help:      "Swallowed balance cache failures by operation.",
	}, []string{"op"})
)
