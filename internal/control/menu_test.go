package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddressShower struct{ shown int }

func (f *fakeAddressShower) ShowAddress() { f.shown++ }

func TestMenuNavigationWraps(t *testing.T) {
	var m Menu
	require.Equal(t, MenuStart, m.Selected())

	m.HandleStep(StepDown)
	assert.Equal(t, MenuShowAddress, m.Selected(), "wraps backward from the first entry")

	m.HandleStep(StepUp)
	assert.Equal(t, MenuStart, m.Selected(), "wraps forward from the last entry")
}

func TestMenuTimeEntryWraps(t *testing.T) {
	var (
		m  Menu
		tm Timer
	)
	m.HandleStep(StepUp)
	m.HandleStep(StepUp) // land on Set
	require.Equal(t, MenuSet, m.Selected())
	m.HandlePress(&tm, t0, nil)
	require.Equal(t, EnteringTime, m.Mode())
	require.Equal(t, 0, m.PendingMinutes())

	m.HandleStep(StepDown)
	assert.Equal(t, MaxMinutes, m.PendingMinutes(), "0 minus one step wraps to 90")

	m.HandleStep(StepUp)
	assert.Equal(t, 0, m.PendingMinutes(), "90 plus one step wraps to 0")
}

func TestMenuConfirmSetsTimerWithoutStarting(t *testing.T) {
	var (
		m  Menu
		tm Timer
	)
	m.HandleStep(StepUp)
	m.HandleStep(StepUp)
	m.HandlePress(&tm, t0, nil) // enter time entry
	for i := 0; i < 30; i++ {
		m.HandleStep(StepUp)
	}
	m.HandlePress(&tm, t0, nil) // confirm

	assert.Equal(t, Navigating, m.Mode())
	assert.Equal(t, 30*time.Minute, tm.Remaining())
	assert.False(t, tm.Powered(), "set does not auto-start")
}

func TestMenuStartStopDispatch(t *testing.T) {
	var (
		m  Menu
		tm Timer
	)
	// Start with nothing set: silent no-op.
	m.HandlePress(&tm, t0, nil)
	assert.False(t, tm.Powered())

	tm.SetMinutes(20)
	m.HandlePress(&tm, t0, nil)
	assert.True(t, tm.Powered())

	m.HandleStep(StepUp) // Stop
	require.Equal(t, MenuStop, m.Selected())
	m.HandlePress(&tm, t0, nil)
	assert.False(t, tm.Powered())
	assert.Equal(t, time.Duration(0), tm.Remaining())
}

func TestMenuSetBlockedWhilePowered(t *testing.T) {
	var (
		m  Menu
		tm Timer
	)
	require.True(t, tm.StartDefault(t0))

	m.HandleStep(StepUp)
	m.HandleStep(StepUp)
	require.Equal(t, MenuSet, m.Selected())
	m.HandlePress(&tm, t0, nil)
	assert.Equal(t, Navigating, m.Mode(), "time entry is unreachable while powered")
}

func TestMenuShowAddressDelegates(t *testing.T) {
	var (
		m  Menu
		tm Timer
	)
	addr := &fakeAddressShower{}
	m.HandleStep(StepDown) // wrap to IP
	require.Equal(t, MenuShowAddress, m.Selected())
	m.HandlePress(&tm, t0, addr)
	assert.Equal(t, 1, addr.shown)
	assert.False(t, tm.Powered(), "pure read, no state mutation")
}
