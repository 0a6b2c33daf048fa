package control

import "context"

// CommandKind enumerates the remote commands the loop accepts.
type CommandKind int

const (
	CmdStartDefault CommandKind = iota
	CmdStop
	CmdAddTime
)

// Outcome is what a remote caller gets back. Failures are modeled as
// no-ops with a reported message, never as errors.
type Outcome struct {
	Accepted bool
	Message  string
}

type command struct {
	kind    CommandKind
	minutes int
	reply   chan Outcome
}

// Apply submits a remote command to the loop's mailbox and waits for the
// loop to pick it up on its next tick. The wait is bounded by the loop
// cadence; ctx guards against a stopped loop.
func (l *Loop) Apply(ctx context.Context, kind CommandKind, minutes int) (Outcome, error) {
	cmd := command{kind: kind, minutes: minutes, reply: make(chan Outcome, 1)}
	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
	select {
	case out := <-cmd.reply:
		return out, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// applyCommand executes one command against the timer. Runs on the loop goroutine,
// so it is never interleaved with local input handling.
func (l *Loop) applyCommand(cmd command) Outcome {
	now := l.clock()
	var out Outcome
	switch cmd.kind {
	case CmdStartDefault:
		if l.timer.StartDefault(now) {
			out = Outcome{Accepted: true, Message: "Sauna turned on"}
			l.record("START", "Sauna turned on remotely", map[string]any{
				"remaining_seconds": int(l.timer.Remaining().Seconds()),
			})
		} else {
			out = Outcome{Accepted: false, Message: "Sauna already on"}
		}
	case CmdStop:
		l.timer.Stop()
		out = Outcome{Accepted: true, Message: "Sauna turned off"}
		l.record("STOP", "Sauna turned off remotely", nil)
	case CmdAddTime:
		l.timer.AddTime(cmd.minutes, now)
		out = Outcome{Accepted: true, Message: "OK"}
		l.record("ADD_TIME", "Time added remotely", map[string]any{
			"added_minutes":     cmd.minutes,
			"remaining_seconds": int(l.timer.Remaining().Seconds()),
		})
	default:
		out = Outcome{Accepted: false, Message: "unknown command"}
	}
	return out
}
