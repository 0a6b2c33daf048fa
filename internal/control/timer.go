package control

import (
	"fmt"
	"time"
)

// MaxDuration is the hard ceiling on sauna runtime. No command sequence may
// leave the countdown above it.
const MaxDuration = 90 * time.Minute

// MaxMinutes is MaxDuration expressed in whole minutes, used by the numeric
// time-entry wrap-around.
const MaxMinutes = int(MaxDuration / time.Minute)

// Timer owns the on/off state, the remaining duration, and the wall-clock
// deadline of the countdown. While powered, remaining is derived from
// deadline minus now on every Tick; while off it holds whatever the last
// command set.
type Timer struct {
	powered   bool
	remaining time.Duration
	deadline  time.Time // valid only while powered
}

// Powered reports whether the heating element should be energized.
func (t *Timer) Powered() bool { return t.powered }

// Remaining returns the current countdown value.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Start powers on using the previously set duration. It is a silent no-op
// when there is no time on the clock or the sauna is already on; this is the
// local menu "Start", which requires a prior "Set".
func (t *Timer) Start(now time.Time) bool {
	if t.powered || t.remaining <= 0 {
		return false
	}
	t.powered = true
	t.deadline = now.Add(t.remaining)
	return true
}

// StartDefault is the remote "on" path: with nothing on the clock it loads
// the full MaxDuration and powers on. Any non-zero countdown, powered or
// not, makes it a no-op ("already on").
func (t *Timer) StartDefault(now time.Time) bool {
	if t.remaining > 0 {
		return false
	}
	t.remaining = MaxDuration
	t.powered = true
	t.deadline = now.Add(t.remaining)
	return true
}

// Stop powers off and zeroes the countdown. Always succeeds.
func (t *Timer) Stop() {
	t.powered = false
	t.remaining = 0
}

// AddTime raises the countdown by the given minutes, clamped to MaxDuration.
// It is defined while off: the stored duration grows without powering on
// (reachable only from the remote surface, preserved source behavior).
func (t *Timer) AddTime(minutes int, now time.Time) {
	t.remaining += time.Duration(minutes) * time.Minute
	if t.remaining > MaxDuration {
		t.remaining = MaxDuration
	}
	if t.powered {
		t.deadline = now.Add(t.remaining)
	}
}

// SetMinutes is the numeric-entry confirm: it overwrites the countdown
// without touching the powered state.
func (t *Timer) SetMinutes(minutes int) {
	d := time.Duration(minutes) * time.Minute
	if d > MaxDuration {
		d = MaxDuration
	}
	if d < 0 {
		d = 0
	}
	t.remaining = d
}

// Tick refreshes the derived countdown and fires the auto-off exactly once
// when the deadline passes. Returns true on the tick that powered off.
func (t *Timer) Tick(now time.Time) bool {
	if !t.powered {
		return false
	}
	left := t.deadline.Sub(now)
	if left <= 0 {
		t.Stop()
		return true
	}
	t.remaining = left
	return false
}

// FormatRemaining renders a duration as the MM:SS string shared by the
// display, the status endpoint and the telemetry payloads.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
