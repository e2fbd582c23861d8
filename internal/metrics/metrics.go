// Package metrics exports per-system control-loop state to Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "heating"

// Metrics holds the per-system collectors. A nil *Metrics is a no-op.
type Metrics struct {
	relayOn        *prometheus.GaugeVec
	temperature    *prometheus.GaugeVec
	target         *prometheus.GaugeVec
	advanceActive  *prometheus.GaugeVec
	sensorFailures *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	labels := []string{"system_id"}
	m := &Metrics{
		relayOn: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "relay_on",
			Help: "1 if the heating relay is switched on",
		}, labels),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "temperature_celsius",
			Help: "Last temperature reported by the system's sensor in degrees celsius",
		}, labels),
		target: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "target_celsius",
			Help: "Target temperature used by the last control pass in degrees celsius",
		}, labels),
		advanceActive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "advance_active",
			Help: "1 if an advance override is active",
		}, labels),
		sensorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sensor_failures_total",
			Help: "Number of failed sensor polls",
		}, labels),
	}
	reg.MustRegister(m.relayOn, m.temperature, m.target, m.advanceActive, m.sensorFailures)
	return m
}

func label(systemID int) string { return strconv.Itoa(systemID) }

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ObserveRelay records the relay state.
func (m *Metrics) ObserveRelay(systemID int, on bool) {
	if m == nil {
		return
	}
	m.relayOn.WithLabelValues(label(systemID)).Set(boolGauge(on))
}

// ObserveReading records a successful sensor reading and the target in force.
func (m *Metrics) ObserveReading(systemID int, temperature, target float64) {
	if m == nil {
		return
	}
	m.temperature.WithLabelValues(label(systemID)).Set(temperature)
	m.target.WithLabelValues(label(systemID)).Set(target)
}

// ObserveAdvance records whether an advance is active.
func (m *Metrics) ObserveAdvance(systemID int, active bool) {
	if m == nil {
		return
	}
	m.advanceActive.WithLabelValues(label(systemID)).Set(boolGauge(active))
}

// SensorFailed counts a failed sensor poll.
func (m *Metrics) SensorFailed(systemID int) {
	if m == nil {
		return
	}
	m.sensorFailures.WithLabelValues(label(systemID)).Inc()
}

// Forget drops every series of a stopped system.
func (m *Metrics) Forget(systemID int) {
	if m == nil {
		return
	}
	l := label(systemID)
	m.relayOn.DeleteLabelValues(l)
	m.temperature.DeleteLabelValues(l)
	m.target.DeleteLabelValues(l)
	m.advanceActive.DeleteLabelValues(l)
	m.sensorFailures.DeleteLabelValues(l)
}
