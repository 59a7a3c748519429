package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceComputeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "splitledger",
		Name:      "balance_compute_seconds",
		Help:      "Time spent recomputing a balance summary from the ledger on a cache miss.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	ledgerWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitledger",
		Name:      "ledger_writes_total",
		Help:      "Expenses and settlements recorded, by kind.",
	}, []string{"kind"})
)
