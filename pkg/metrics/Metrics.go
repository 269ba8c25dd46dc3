package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Counter struct {
	metric *prometheus.CounterVec
}

func NewCounter(name string, help string, labels []string) *Counter {
	counter := &Counter{
		metric: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}

	prometheus.MustRegister(counter.metric)
	return counter
}

func (c *Counter) Increment(labels ...string) {
	c.metric.WithLabelValues(labels...).Inc()
}

func (c *Counter) Value(labels ...string) float64 {
	return value(c.metric.WithLabelValues(labels...))
}

type Histogram struct {
	metric *prometheus.HistogramVec
}

func NewHistogram(name string, help string, buckets []float64, labels []string) *Histogram {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	histogram := &Histogram{
		metric: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      name,
				Help:      help,
				Buckets:   buckets,
			},
			labels,
		),
	}

	prometheus.MustRegister(histogram.metric)
	return histogram
}

func (h *Histogram) Observe(value float64, labels ...string) {
	h.metric.WithLabelValues(labels...).Observe(value)
}

func (h *Histogram) Count(labels ...string) uint64 {
	observer, err := h.metric.GetMetricWithLabelValues(labels...)

	if err != nil {
		return 0
	}

	collector, ok := observer.(prometheus.Metric)

	if !ok {
		return 0
	}

	return sample(collector).GetHistogram().GetSampleCount()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
