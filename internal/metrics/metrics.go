// Package metrics exports run outcome counters in the Prometheus text
// format, for node-exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/backmassage/camswap/internal/replace"
)

// Recorder owns a private registry so several runs in one process (tests)
// never collide on the default one.
type Recorder struct {
	reg        *prometheus.Registry
	containers *prometheus.CounterVec
	cameras    *prometheus.CounterVec
	lastRun    prometheus.Gauge
}

// New returns a Recorder with every counter registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		containers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camswap_containers_total",
				Help: "Backdrops processed, by outcome",
			},
			[]string{"outcome"},
		),
		cameras: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camswap_cameras_total",
				Help: "Camera splices attempted, by outcome",
			},
			[]string{"outcome"},
		),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "camswap_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
	}
	r.reg.MustRegister(r.containers, r.cameras, r.lastRun)
	return r
}

// Record adds the counters of one run.
func (r *Recorder) Record(s replace.Stats) {
	r.containers.WithLabelValues("unidentified").Add(float64(s.Unidentified))
	r.containers.WithLabelValues("no_cameras").Add(float64(s.NoCameras))
	r.containers.WithLabelValues("unresolved").Add(float64(s.Unresolved))
	r.containers.WithLabelValues("cancelled").Add(float64(s.Cancelled))
	processed := s.Containers - s.Unidentified - s.NoCameras - s.Unresolved - s.Cancelled
	if processed > 0 {
		r.containers.WithLabelValues("processed").Add(float64(processed))
	}

	r.cameras.WithLabelValues("replaced").Add(float64(s.Replaced))
	r.cameras.WithLabelValues("failed").Add(float64(s.Failed))
	r.lastRun.Set(float64(time.Now().Unix()))
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }
