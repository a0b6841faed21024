package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// factEventsTotal counts Bus-level add/remove calls, labeled by tag
	// (VALID/INVALID) so operators can see assertion vs. retraction volume
	// without instrumenting every individual node.
	factEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rete",
			Subsystem: "network",
			Name:      "fact_events_total",
			Help:      "Total fact events dispatched through the Bus",
		},
		[]string{"tag"},
	)

	// cascadeDuration measures how long a single add/remove call spends
	// propagating through the network, a direct stand-in for the
	// "activation functions must terminate" bound spec §5 calls for.
	cascadeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rete",
			Subsystem: "network",
			Name:      "cascade_duration_seconds",
			Help:      "Duration of a single Bus add/remove cascade",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tag"},
	)

	// activationSetSize reports the current size of each rule's conflict
	// set, labeled by rule ID, sampled on every GetActivations call.
	activationSetSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "rete",
			Subsystem: "network",
			Name:      "activation_set_size",
			Help:      "Current number of activations held by a rule's terminal",
		},
		[]string{"rule"},
	)
)

func init() {
	prometheus.MustRegister(factEventsTotal, cascadeDuration, activationSetSize)
}
