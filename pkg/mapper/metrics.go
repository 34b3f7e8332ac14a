// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapper

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Error reasons used as the "reason" label of seqmap_mapper_errors_total.
const (
	reasonNilTransform   = "nil_transform"
	reasonLengthMismatch = "length_mismatch"
	reasonCanceled       = "canceled"
)

// metricsMapper holds Prometheus metrics for the mapper.
type metricsMapper struct {
	once sync.Once

	calls    prometheus.Counter
	elements prometheus.Counter
	errors   *prometheus.CounterVec
	duration prometheus.Histogram
}

var mapMetrics metricsMapper

func (m *metricsMapper) init() {
	m.once.Do(func() {
		m.calls = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqmap_mapper_calls_total", Help: "Completed map operations"})
		m.elements = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqmap_mapper_elements_total", Help: "Elements transformed"})
		m.errors = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "seqmap_mapper_errors_total", Help: "Map operations rejected or aborted"}, []string{"reason"})

		buckets := []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "seqmap_mapper_seconds", Help: "Duration of completed map operations", Buckets: buckets})

		prometheus.MustRegister(m.calls, m.elements, m.errors, m.duration)
	})
}

func recordCall(n int, d time.Duration) {
	mapMetrics.init()
	mapMetrics.calls.Inc()
	mapMetrics.elements.Add(float64(n))
	mapMetrics.duration.Observe(d.Seconds())
}

func recordError(reason string) {
	mapMetrics.init()
	mapMetrics.errors.WithLabelValues(reason).Inc()
}
