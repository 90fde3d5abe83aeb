// Package metrics provides Prometheus metrics for Borealis session
// operations: query counts, converted record/row volumes, and metadata
// round trips performed by table facades.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts executed statements by kind and outcome.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "borealis",
			Name:      "queries_total",
			Help:      "Total statements executed against the remote engine",
		},
		[]string{"kind", "status"},
	)

	// RecordsConverted counts records passed through the converter by direction.
	RecordsConverted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "borealis",
			Name:      "records_converted_total",
			Help:      "Total records converted between the app and storage models",
		},
		[]string{"direction"},
	)

	// SchemaReads counts live table metadata round trips.
	SchemaReads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "borealis",
			Name:      "schema_reads_total",
			Help:      "Total live schema metadata reads",
		},
	)

	// QueryDuration tracks statement latency by kind.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "borealis",
			Name:      "query_duration_seconds",
			Help:      "Statement latency against the remote engine",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)
