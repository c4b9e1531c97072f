package catalog

import "github.com/prometheus/client_golang/prometheus"

var (
	datasetRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "llmboard",
		Subsystem: "dataset",
		Name:      "records",
		Help:      "Records in the loaded dataset",
	})

	datasetRanked = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "llmboard",
			Subsystem: "dataset",
			Name:      "ranked_records",
			Help:      "Records carrying a rank, per dimension",
		},
		[]string{"dimension"},
	)

	datasetGeneration = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "llmboard",
		Subsystem: "dataset",
		Name:      "generation",
		Help:      "Generation of the published dataset snapshot",
	})

	reloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llmboard",
			Subsystem: "dataset",
			Name:      "reloads_total",
			Help:      "Dataset load attempts by result",
		},
		[]string{"result"},
	)

	viewCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llmboard",
			Subsystem: "views",
			Name:      "cache_lookups_total",
			Help:      "Derived view cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(datasetRecords, datasetRanked, datasetGeneration, reloadsTotal, viewCacheTotal)
}

func observeSnapshot(s *snapshot) {
	op, safety := s.counts()
	datasetRecords.Set(float64(len(s.models)))
	datasetRanked.WithLabelValues("operational").Set(float64(op))
	datasetRanked.WithLabelValues("safety").Set(float64(safety))
	datasetGeneration.Set(float64(s.gen))
}
