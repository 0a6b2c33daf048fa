// Package control holds the cooperative control core of the sauna
// controller: countdown timer, temperature sampler, input decoding, menu
// state, and the single-goroutine loop that interleaves them.
package control

import (
	"context"
	"sync/atomic"
	"time"

	"saunactl"
	"saunactl/internal/display"
	"saunactl/internal/hw"
	"saunactl/internal/logger"
)

// DefaultTick is the loop cadence. A full pass completes well under it, so
// input and sampling stay responsive.
const DefaultTick = 10 * time.Millisecond

// renderPeriod throttles display redraws, matching the firmware's 200 ms.
const renderPeriod = 200 * time.Millisecond

// EventSink receives controller events. Implementations must not block; the
// loop calls Record inline.
type EventSink interface {
	Record(eventType, description string, metadata map[string]any)
}

// Deps are the collaborators the loop drives. Sensor, Panel and Relay are
// hardware boundaries; Display and Events consume state.
type Deps struct {
	Sensor  hw.TempSensor
	Panel   hw.Panel
	Relay   hw.Relay
	Display display.Display
	Events  EventSink
	Log     *logger.Logger

	// Tick overrides DefaultTick when positive.
	Tick time.Duration
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Loop is the scheduler. It exclusively owns the four state machines and is
// the only goroutine that mutates them; everyone else sees the published
// snapshot or talks through the command mailbox.
type Loop struct {
	timer   Timer
	sampler *Sampler
	decoder Decoder
	menu    Menu

	panel   hw.Panel
	relay   hw.Relay
	display display.Display
	events  EventSink
	log     *logger.Logger

	tick  time.Duration
	clock func() time.Time

	commands   chan command
	snap       atomic.Pointer[saunactl.Snapshot]
	lastRender time.Time
}

func NewLoop(d Deps) *Loop {
	l := &Loop{
		sampler: NewSampler(d.Sensor),
		panel:   d.Panel,
		relay:   d.Relay,
		display: d.Display,
		events:  d.Events,
		log:     d.Log,
		tick:    d.Tick,
		clock:   d.Clock,
		// Small mailbox: commands are applied within one tick, the buffer
		// only smooths bursts from concurrent HTTP handlers.
		commands: make(chan command, 16),
	}
	if l.tick <= 0 {
		l.tick = DefaultTick
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.log == nil {
		l.log = logger.Nop()
	}
	snap := l.buildSnapshot(l.clock())
	l.snap.Store(&snap)
	return l
}

// Run executes loop passes until ctx is canceled.
func (l *Loop) Run(ctx context.Context) {
	t := time.NewTicker(l.tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.step(l.clock())
		}
	}
}

// Snapshot returns the latest published state. Safe from any goroutine.
func (l *Loop) Snapshot() saunactl.Snapshot {
	return *l.snap.Load()
}

// step is one full pass, in the fixed order: remote commands, sampler,
// local input, timer, relay, snapshot, display. Nothing in here blocks.
func (l *Loop) step(now time.Time) {
	// 1. Remote commands queued since the last pass.
	l.drainCommands()

	// 2. Temperature state machine.
	wasFault := l.sampler.Fault()
	l.sampler.Advance(now)
	if l.sampler.Fault() && !wasFault {
		l.log.Warnw("sensor fault", "last_reading_f", l.sampler.Reading())
		l.record("SENSOR_FAULT", "Temperature sensor read failed", nil)
	}

	// 3. Local input. Read errors keep the previous levels so a flaky pin
	// can never conjure an event.
	l.pollInput(now)

	// 4. Countdown.
	if l.timer.Tick(now) {
		l.log.Infow("countdown expired, powering off")
		l.record("AUTO_OFF", "Countdown reached zero", nil)
	}

	// 5. Relay follows powered every tick; the write is idempotent.
	if err := l.relay.Set(l.timer.Powered()); err != nil {
		l.log.Errorw("relay write failed", "err", err)
	}

	snap := l.buildSnapshot(now)
	l.snap.Store(&snap)

	if l.display != nil && now.Sub(l.lastRender) >= renderPeriod {
		l.lastRender = now
		l.display.Render(snap)
	}
}

func (l *Loop) drainCommands() {
	for {
		select {
		case cmd := <-l.commands:
			out := l.applyCommand(cmd)
			cmd.reply <- out
		default:
			return
		}
	}
}

func (l *Loop) pollInput(now time.Time) {
	count, pressed, err := l.panel.Read()
	if err != nil {
		l.log.Debugw("panel read failed", "err", err)
		return
	}
	if step := l.decoder.DecodeStep(count); step != StepNone {
		l.menu.HandleStep(step)
	}
	if l.decoder.DecodePress(pressed) {
		before := l.menu.Mode()
		l.menu.HandlePress(&l.timer, now, l.display)
		if before == EnteringTime && l.menu.Mode() == Navigating {
			l.record("SET_TIME", "Countdown set from menu", map[string]any{
				"remaining_seconds": int(l.timer.Remaining().Seconds()),
			})
		}
	}
}

func (l *Loop) buildSnapshot(now time.Time) saunactl.Snapshot {
	return saunactl.Snapshot{
		TemperatureF:     l.sampler.Reading(),
		Remaining:        FormatRemaining(l.timer.Remaining()),
		RemainingSeconds: int(l.timer.Remaining() / time.Second),
		Powered:          l.timer.Powered(),
		SensorFault:      l.sampler.Fault(),
		Mode:             l.menu.Mode().String(),
		MenuEntry:        l.menu.Selected().String(),
		PendingMinutes:   l.menu.PendingMinutes(),
		UpdatedAt:        now,
	}
}

func (l *Loop) record(eventType, description string, metadata map[string]any) {
	if l.events != nil {
		l.events.Record(eventType, description, metadata)
	}
}
