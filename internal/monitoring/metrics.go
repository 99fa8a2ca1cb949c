package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "iscol",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, path and status.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "iscol",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	cpuPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "iscol",
		Subsystem: "host",
		Name:      "cpu_percent",
		Help:      "Host CPU utilization percentage.",
	})

	memoryUsedBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "iscol",
		Subsystem: "host",
		Name:      "memory_used_bytes",
		Help:      "Host memory in use.",
	})

	memoryTotalBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "iscol",
		Subsystem: "host",
		Name:      "memory_total_bytes",
		Help:      "Host memory installed.",
	})

	diskUsedBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "iscol",
		Subsystem: "host",
		Name:      "disk_used_bytes",
		Help:      "Disk space used on the root filesystem.",
	})
)

// RecordRequest records one served HTTP request.
func RecordRequest(method, path string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
