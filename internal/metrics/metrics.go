// Package metrics коллекторы prometheus. Регистрируются в глобальном реестре при импорте пакета.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradecredit"

var DuesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "dues",
	Name:      "created_total",
	Help:      "Total dues created by suppliers.",
})

var PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "dues",
	Name:      "payments_total",
	Help:      "Total payments that closed a due.",
})

// PaymentConflicts попытки оплатить уже оплаченный долг.
var PaymentConflicts = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "dues",
	Name:      "payment_conflicts_total",
	Help:      "Total payment attempts rejected because the due was already paid.",
})

var OverdueTransitions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "sweeper",
	Name:      "overdue_transitions_total",
	Help:      "Total dues moved from pending to overdue by the sweep.",
})

var SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "sweeper",
	Name:      "runs_total",
	Help:      "Sweep runs by result (ok, error, locked).",
}, []string{"result"})

var RelayConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "relay",
	Name:      "connections",
	Help:      "Current number of relay subscribers.",
})

var RelayPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "relay",
	Name:      "published_total",
	Help:      "Total events published to the relay by type.",
}, []string{"type"})

// RelayDropped сообщения, не доставленные подписчику из-за переполненного буфера.
var RelayDropped = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "relay",
	Name:      "dropped_total",
	Help:      "Total messages dropped because a subscriber buffer was full.",
})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route, method and status.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "status"})
