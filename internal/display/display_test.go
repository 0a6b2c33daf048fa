package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saunactl"
)

func TestLinesPoweredLayout(t *testing.T) {
	top, bottom := Lines(saunactl.Snapshot{
		TemperatureF: 103.5,
		Remaining:    "45:00",
		Powered:      true,
		Mode:         "NAVIGATING",
		MenuEntry:    "Start",
	})

	assert.Len(t, top, Width)
	assert.Len(t, bottom, Width)
	assert.Equal(t, "103.5\xdfF", top[:7])
	assert.Equal(t, "45:00", top[8:13], "countdown sits at column 8")
	assert.Equal(t, byte('*'), top[Width-1], "powered marker at column 15")
	assert.Equal(t, ">Start", bottom[:6])
}

func TestLinesUnpoweredMarker(t *testing.T) {
	top, _ := Lines(saunactl.Snapshot{
		TemperatureF: 72.0,
		Remaining:    "00:00",
		Mode:         "NAVIGATING",
		MenuEntry:    "Stop",
	})
	assert.Equal(t, byte('_'), top[Width-1])
}

func TestLinesTimeEntry(t *testing.T) {
	_, bottom := Lines(saunactl.Snapshot{
		Remaining:      "00:00",
		Mode:           "ENTERING_TIME",
		PendingMinutes: 5,
	})
	assert.Equal(t, ">Set Time:  5m", bottom[:14])
	assert.Len(t, bottom, Width)
}

func TestConsoleSkipsIdenticalFrames(t *testing.T) {
	c := NewConsole(nil, nil)
	snap := saunactl.Snapshot{Remaining: "10:00", Mode: "NAVIGATING", MenuEntry: "Start"}
	c.Render(snap)
	first := c.lastTop
	c.Render(snap)
	assert.Equal(t, first, c.lastTop)

	snap.Remaining = "09:59"
	c.Render(snap)
	assert.NotEqual(t, first, c.lastTop)
}
