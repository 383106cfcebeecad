package contract

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "multiverse"
	subsystem        = "contract"
)

var (
	// contractCalls counts simulator dispatches by action and outcome (ok, unauthorized, not_found, ...).
	contractCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "calls_total",
			Help:      "Total number of contract calls dispatched by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	// recordsCreated counts new ids handed out per record family.
	recordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "records_created_total",
			Help:      "Total number of records created per family",
		},
		[]string{"family"},
	)
)
