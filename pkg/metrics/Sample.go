package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func sample(metric prometheus.Metric) *dto.Metric {
	out := &dto.Metric{}

	if err := metric.Write(out); err != nil {
		return &dto.Metric{}
	}

	return out
}

func value(counter prometheus.Counter) float64 {
	return sample(counter).GetCounter().GetValue()
}
