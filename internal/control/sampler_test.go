package control

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunactl/internal/hw"
)

func TestSamplerNoReadBeforeConversionDelay(t *testing.T) {
	sensor := &hw.FakeSensor{TempF: 150}
	s := NewSampler(sensor)

	// First request fires once the sample period has elapsed since the
	// zero-value lastRead; drive it there, then poll every millisecond.
	start := t0.Add(SamplePeriod)
	s.Advance(start)
	require.Equal(t, 1, sensor.Requests)

	for d := time.Millisecond; d < ConversionDelay; d += time.Millisecond {
		s.Advance(start.Add(d))
		assert.Equal(t, 0.0, s.Reading(), "no update before the conversion delay elapsed")
	}

	s.Advance(start.Add(ConversionDelay))
	assert.Equal(t, 150.0, s.Reading())
}

func TestSamplerWaitsOutIncompleteConversion(t *testing.T) {
	sensor := &hw.FakeSensor{TempF: 150, Pending: true}
	s := NewSampler(sensor)

	start := t0.Add(SamplePeriod)
	s.Advance(start)
	s.Advance(start.Add(ConversionDelay))
	assert.Equal(t, 0.0, s.Reading())
	assert.False(t, s.Fault(), "slow conversion is not a fault")

	// Stays in the polling half until the device reports done.
	s.Advance(start.Add(2 * ConversionDelay))
	assert.Equal(t, 0.0, s.Reading())

	sensor.Pending = false
	s.Advance(start.Add(3 * ConversionDelay))
	assert.Equal(t, 150.0, s.Reading())
}

func TestSamplerRespectsSamplePeriod(t *testing.T) {
	sensor := &hw.FakeSensor{TempF: 150}
	s := NewSampler(sensor)

	start := t0.Add(SamplePeriod)
	s.Advance(start)
	done := start.Add(ConversionDelay)
	s.Advance(done)
	require.Equal(t, 1, sensor.Requests)

	// Immediately re-armable, but only after another full sample period.
	s.Advance(done.Add(SamplePeriod / 2))
	assert.Equal(t, 1, sensor.Requests)
	s.Advance(done.Add(SamplePeriod))
	assert.Equal(t, 2, sensor.Requests)
}

func TestSamplerFaultFreezesReading(t *testing.T) {
	sensor := &hw.FakeSensor{TempF: 150}
	s := NewSampler(sensor)

	start := t0.Add(SamplePeriod)
	s.Advance(start)
	s.Advance(start.Add(ConversionDelay))
	require.Equal(t, 150.0, s.Reading())

	// Probe disappears: the next cycle faults but keeps the last reading.
	sensor.RequestErr = errors.New("no device found")
	next := start.Add(ConversionDelay + SamplePeriod)
	s.Advance(next)
	assert.True(t, s.Fault())
	assert.Equal(t, 150.0, s.Reading())

	// Probe comes back: fault clears on the next good read.
	sensor.RequestErr = nil
	sensor.Set(160)
	again := next.Add(SamplePeriod)
	s.Advance(again)
	s.Advance(again.Add(ConversionDelay))
	assert.False(t, s.Fault())
	assert.Equal(t, 160.0, s.Reading())
}

func TestSamplerFaultOnReadError(t *testing.T) {
	sensor := &hw.FakeSensor{TempF: 150, ReadErr: errors.New("crc mismatch")}
	s := NewSampler(sensor)

	start := t0.Add(SamplePeriod)
	s.Advance(start)
	s.Advance(start.Add(ConversionDelay))
	assert.True(t, s.Fault())
	assert.Equal(t, 0.0, s.Reading())
}
