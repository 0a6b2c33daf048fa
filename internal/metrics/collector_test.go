package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunactl"
)

func TestCollectorExportsSnapshot(t *testing.T) {
	snap := saunactl.Snapshot{
		TemperatureF:     151.5,
		RemainingSeconds: 2700,
		Powered:          true,
		SensorFault:      false,
	}
	c := NewCollector(func() saunactl.Snapshot { return snap })

	expected := `
# HELP sauna_powered Whether the heating element is energized (1 = on, 0 = off)
# TYPE sauna_powered gauge
sauna_powered 1
# HELP sauna_remaining_seconds Seconds left on the countdown
# TYPE sauna_remaining_seconds gauge
sauna_remaining_seconds 2700
# HELP sauna_sensor_fault Whether the temperature probe is currently faulted (1 = fault)
# TYPE sauna_sensor_fault gauge
sauna_sensor_fault 0
# HELP sauna_temperature_fahrenheit Latest good temperature reading in °F
# TYPE sauna_temperature_fahrenheit gauge
sauna_temperature_fahrenheit 151.5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorTracksSource(t *testing.T) {
	snap := saunactl.Snapshot{Powered: true}
	c := NewCollector(func() saunactl.Snapshot { return snap })

	on := `
# HELP sauna_powered Whether the heating element is energized (1 = on, 0 = off)
# TYPE sauna_powered gauge
sauna_powered 1
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(on), "sauna_powered"))

	snap.Powered = false
	off := `
# HELP sauna_powered Whether the heating element is energized (1 = on, 0 = off)
# TYPE sauna_powered gauge
sauna_powered 0
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(off), "sauna_powered"))
}
