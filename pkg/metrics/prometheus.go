package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FetchesTotal     *prometheus.CounterVec
	FaresParsed      prometheus.Counter
	FaresRejected    prometheus.Counter
	SnapshotsWritten prometheus.Counter
	CampaignDuration prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// A nil reg uses the default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fare_fetches_total",
			Help:      "The total number of fare endpoint requests by outcome",
		}, []string{"outcome"}),
		FaresParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fares_parsed_total",
			Help:      "The total number of fare records parsed",
		}),
		FaresRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fares_rejected_total",
			Help:      "The total number of malformed fare records skipped",
		}),
		SnapshotsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_snapshots_written_total",
			Help:      "The total number of price snapshots persisted",
		}),
		CampaignDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "campaign_duration_seconds",
			Help:      "Time taken by one polling campaign",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
