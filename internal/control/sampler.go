package control

import (
	"time"

	"saunactl/internal/hw"
)

// Sampling cadence. Conversion time matches the DS18B20 at 10-bit
// resolution; the request/poll split keeps the loop from ever waiting on it.
const (
	SamplePeriod    = 1000 * time.Millisecond
	ConversionDelay = 750 * time.Millisecond
)

type samplerPhase int

const (
	phaseIdle samplerPhase = iota
	phaseRequested
)

// Sampler drives the non-blocking temperature-read state machine. One
// Advance call per loop tick; lastReading changes only when a conversion
// completes, never mid-flight.
type Sampler struct {
	sensor hw.TempSensor

	phase       samplerPhase
	lastReading float64
	lastRead    time.Time
	requestedAt time.Time
	fault       bool
}

func NewSampler(sensor hw.TempSensor) *Sampler {
	return &Sampler{sensor: sensor}
}

// Reading returns the most recent good temperature in °F. During a fault it
// stays frozen at the last good value.
func (s *Sampler) Reading() float64 { return s.lastReading }

// Fault reports whether the last sensor interaction failed. It clears on the
// next successful read.
func (s *Sampler) Fault() bool { return s.fault }

// Advance moves the state machine one step. It never blocks: waiting for the
// conversion is an elapsed-time check, and an incomplete conversion is simply
// re-polled next tick.
func (s *Sampler) Advance(now time.Time) {
	switch s.phase {
	case phaseIdle:
		if now.Sub(s.lastRead) < SamplePeriod {
			return
		}
		if err := s.sensor.RequestConversion(); err != nil {
			// Sensor missing or bus error: surface a fault, freeze the
			// reading, retry after the next sample period.
			s.fault = true
			s.lastRead = now
			return
		}
		s.requestedAt = now
		s.phase = phaseRequested

	case phaseRequested:
		if now.Sub(s.requestedAt) < ConversionDelay {
			return
		}
		done, err := s.sensor.ConversionComplete()
		if err != nil {
			s.fault = true
			s.phase = phaseIdle
			s.lastRead = now
			return
		}
		if !done {
			// Not a fault: the device is allowed to take longer, poll again
			// next tick.
			return
		}
		v, err := s.sensor.ReadTempF()
		if err != nil {
			s.fault = true
		} else {
			s.lastReading = v
			s.fault = false
		}
		s.lastRead = now
		s.phase = phaseIdle
	}
}
