/*
Copyright © 2019 the HazPlume authors.
This file is part of HazPlume.

HazPlume is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HazPlume is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HazPlume.  If not, see <http://www.gnu.org/licenses/>.
*/

package hazplumeutil

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the number and duration of model operations.
// It implements hazplume.Measurer.
type Metrics struct {
	Operations *prometheus.CounterVec   // labels: op
	Duration   *prometheus.HistogramVec // labels: op

	registry *prometheus.Registry
}

// NewMetrics creates model metrics and registers them with reg.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hazplume",
			Name:      "operations_total",
			Help:      "Model operations by name.",
		}, []string{"op"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hazplume",
			Name:      "operation_duration_seconds",
			Help:      "Duration of model operations.",
			Buckets:   []float64{1e-5, 1e-4, 5e-4, 1e-3, 5e-3, 0.01, 0.05, 0.1, 0.5},
		}, []string{"op"}),
		registry: reg,
	}
	for _, c := range []prometheus.Collector{m.Operations, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("hazplumeutil: registering metrics: %v", err)
		}
	}
	return m, nil
}

// Measure starts timing op and returns a function that stops the timer.
func (m *Metrics) Measure(op string) func() {
	m.Operations.WithLabelValues(op).Inc()
	timer := prometheus.NewTimer(m.Duration.WithLabelValues(op))
	return func() { timer.ObserveDuration() }
}

// WriteFile writes the current metric values to path in the Prometheus
// text format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("hazplumeutil: writing metrics: %v", err)
	}
	return nil
}
