package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_parses_total",
		Help: "Query parses served, labelled by classified intent.",
	}, []string{"intent"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_request_duration_seconds",
		Help:    "End-to-end latency of search requests.",
		Buckets: prometheus.DefBuckets,
	})

	suggestionCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_suggestion_cache_hits_total",
		Help: "Suggestion responses served from the redis cache.",
	})

	suggestionCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_suggestion_cache_misses_total",
		Help: "Suggestion responses computed without a cache hit.",
	})

	documentsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_documents_ingested_total",
		Help: "Documents accepted through the ingest endpoint.",
	})
)
