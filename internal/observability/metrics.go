package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	pageViews = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "http",
		Name:      "page_views_total",
		Help:      "Tracked page views, after static/admin and DNT filtering.",
	})

	renders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "render",
		Name:      "renders_total",
		Help:      "Render pipeline invocations by requested category.",
	}, []string{"category"})

	cardsRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "render",
		Name:      "cards_total",
		Help:      "Project cards produced across all renders.",
	})

	contactSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact form submissions by outcome (relayed, failed, rejected).",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(pageViews, renders, cardsRendered, contactSubmissions)
}

// RecordPageView counts one tracked page view.
func RecordPageView() {
	pageViews.Inc()
}

// RecordRender counts one pipeline render and the cards it produced.
func RecordRender(category string, cards int) {
	renders.WithLabelValues(category).Inc()
	cardsRendered.Add(float64(cards))
}

// RecordContact counts one contact submission outcome.
func RecordContact(outcome string) {
	contactSubmissions.WithLabelValues(outcome).Inc()
}
