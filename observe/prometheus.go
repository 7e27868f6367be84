// SPDX-License-Identifier: MIT
// Package: sx/observe
//
// prometheus.go - an Observer exporting sample counts and latencies.

package observe

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	// MetricSamples counts observed Produce calls by generator and outcome.
	MetricSamples = "sx_samples_total"
	// MetricSampleDuration is the histogram of Produce wall time.
	MetricSampleDuration = "sx_sample_duration_seconds"

	LabelGenerator = "generator"
	LabelOutcome   = "outcome"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// PrometheusObserver records every sample into Prometheus collectors.
type PrometheusObserver struct {
	samples  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusObserver creates the collectors and registers them on reg.
// Collectors already registered on reg (by an earlier observer) are reused.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		return nil, errors.New("observe: nil prometheus registerer")
	}

	samples := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricSamples,
			Help: "Number of generator samples, by generator and outcome.",
		},
		[]string{LabelGenerator, LabelOutcome},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricSampleDuration,
			Help:    "Wall time spent producing one sample.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		},
		[]string{LabelGenerator},
	)

	var err error
	if samples, err = register(reg, samples); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &PrometheusObserver{samples: samples, duration: duration}, nil
}

// register registers c, or returns the identical collector already on reg.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("observe: register collector: %w", err)
	}

	return c, nil
}

// OnSample implements Observer.
func (o *PrometheusObserver) OnSample(s Sample) {
	outcome := OutcomeFailure
	if s.OK {
		outcome = OutcomeSuccess
	}
	o.samples.WithLabelValues(s.Name, outcome).Inc()
	o.duration.WithLabelValues(s.Name).Observe(s.Duration.Seconds())
}

// Totals reads the success and failure sample counts for one generator from
// g. Missing series count as zero.
func Totals(g prometheus.Gatherer, generator string) (success, failure float64, err error) {
	families, err := g.Gather()
	if err != nil {
		return 0, 0, fmt.Errorf("observe: gather: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != MetricSamples {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue(m, LabelGenerator) != generator {
				continue
			}
			switch labelValue(m, LabelOutcome) {
			case OutcomeSuccess:
				success += m.GetCounter().GetValue()
			case OutcomeFailure:
				failure += m.GetCounter().GetValue()
			}
		}
	}

	return success, failure, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}

	return ""
}
