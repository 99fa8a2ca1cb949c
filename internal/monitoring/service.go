package monitoring

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// MonitoringService samples host metrics into the Prometheus gauges.
type MonitoringService struct {
	interval time.Duration
	stop     chan struct{}
}

func NewMonitoringService(interval time.Duration) *MonitoringService {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &MonitoringService{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// StartCollection starts the background metrics collection
func (s *MonitoringService) StartCollection() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.collect()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the background collection.
func (s *MonitoringService) Stop() {
	close(s.stop)
}

func (s *MonitoringService) collect() {
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuPercent.Set(percents[0])
	}

	if stats, err := mem.VirtualMemory(); err == nil {
		memoryUsedBytes.Set(float64(stats.Used))
		memoryTotalBytes.Set(float64(stats.Total))
	}

	if stats, err := disk.Usage("/"); err == nil {
		diskUsedBytes.Set(float64(stats.Used))
	}
}
