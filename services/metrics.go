package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rotationChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "rotation_changes_total",
		Help:      "Active index changes per carousel, from ticks and manual controls.",
	}, []string{"section"})

	filterRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "blog_filter_recomputes_total",
		Help:      "Recomputations of the visible blog subset.",
	})

	emptyFilterResults = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "blog_filter_empty_results_total",
		Help:      "Blog filter recomputations that matched no post.",
	})

	activePages = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "site",
		Name:      "active_pages",
		Help:      "Mounted landing page states.",
	})

	pageTeardowns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "page_teardowns_total",
		Help:      "Landing page states released, by reason.",
	}, []string{"reason"})

	droppedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "stream_dropped_events_total",
		Help:      "Carousel change events dropped because a stream subscriber was slow.",
	})
)
