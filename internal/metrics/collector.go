// Package metrics exposes controller state to Prometheus. The collector
// reads the loop's published snapshot at scrape time, so scraping never
// touches the control loop itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"saunactl"
)

const namespace = "sauna"

// SnapshotSource supplies the current controller snapshot.
type SnapshotSource func() saunactl.Snapshot

// Collector implements prometheus.Collector over a snapshot source.
type Collector struct {
	source SnapshotSource

	temperatureDesc      *prometheus.Desc
	poweredDesc          *prometheus.Desc
	remainingSecondsDesc *prometheus.Desc
	sensorFaultDesc      *prometheus.Desc
}

func NewCollector(source SnapshotSource) *Collector {
	return &Collector{
		source: source,
		temperatureDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "temperature_fahrenheit"),
			"Latest good temperature reading in °F",
			nil, nil,
		),
		poweredDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "powered"),
			"Whether the heating element is energized (1 = on, 0 = off)",
			nil, nil,
		),
		remainingSecondsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "remaining_seconds"),
			"Seconds left on the countdown",
			nil, nil,
		),
		sensorFaultDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "sensor_fault"),
			"Whether the temperature probe is currently faulted (1 = fault)",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.temperatureDesc
	ch <- c.poweredDesc
	ch <- c.remainingSecondsDesc
	ch <- c.sensorFaultDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.source()

	ch <- prometheus.MustNewConstMetric(c.temperatureDesc, prometheus.GaugeValue, snap.TemperatureF)
	ch <- prometheus.MustNewConstMetric(c.poweredDesc, prometheus.GaugeValue, boolToFloat(snap.Powered))
	ch <- prometheus.MustNewConstMetric(c.remainingSecondsDesc, prometheus.GaugeValue, float64(snap.RemainingSeconds))
	ch <- prometheus.MustNewConstMetric(c.sensorFaultDesc, prometheus.GaugeValue, boolToFloat(snap.SensorFault))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
