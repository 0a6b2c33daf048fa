package control

import "time"

// MenuEntry is the closed set of local menu actions.
type MenuEntry int

const (
	MenuStart MenuEntry = iota
	MenuStop
	MenuSet
	MenuShowAddress

	menuEntries // count, keep last
)

func (e MenuEntry) String() string {
	switch e {
	case MenuStart:
		return "Start"
	case MenuStop:
		return "Stop"
	case MenuSet:
		return "Set"
	case MenuShowAddress:
		return "IP"
	default:
		return "?"
	}
}

// MenuMode distinguishes navigating the menu from entering a number of
// minutes with the same encoder.
type MenuMode int

const (
	Navigating MenuMode = iota
	EnteringTime
)

func (m MenuMode) String() string {
	if m == EnteringTime {
		return "ENTERING_TIME"
	}
	return "NAVIGATING"
}

// AddressShower is the display/network collaborator behind the "IP" entry.
type AddressShower interface {
	ShowAddress()
}

// Menu multiplexes the one rotary encoder + button between menu navigation
// and numeric time entry.
type Menu struct {
	mode           MenuMode
	index          int
	pendingMinutes int
}

func (m *Menu) Mode() MenuMode      { return m.mode }
func (m *Menu) Selected() MenuEntry { return MenuEntry(m.index) }
func (m *Menu) PendingMinutes() int { return m.pendingMinutes }

// HandleStep applies one encoder step. Navigation wraps circularly over the
// entries; time entry wraps modulo MaxMinutes+1 (90 rolls to 0 and back).
func (m *Menu) HandleStep(step Step) {
	if step == StepNone {
		return
	}
	switch m.mode {
	case Navigating:
		m.index += int(step)
		if m.index < 0 {
			m.index = int(menuEntries) - 1
		}
		if m.index >= int(menuEntries) {
			m.index = 0
		}
	case EnteringTime:
		m.pendingMinutes += int(step)
		if m.pendingMinutes > MaxMinutes {
			m.pendingMinutes = 0
		}
		if m.pendingMinutes < 0 {
			m.pendingMinutes = MaxMinutes
		}
	}
}

// HandlePress dispatches the button. While entering time it confirms the
// pending minutes into the timer; while navigating it runs the selected
// entry. Entries whose precondition fails do nothing.
func (m *Menu) HandlePress(t *Timer, now time.Time, addr AddressShower) {
	if m.mode == EnteringTime {
		t.SetMinutes(m.pendingMinutes)
		m.mode = Navigating
		return
	}
	switch m.Selected() {
	case MenuStart:
		t.Start(now)
	case MenuStop:
		if t.Powered() {
			t.Stop()
		}
	case MenuSet:
		if !t.Powered() {
			m.mode = EnteringTime
			m.pendingMinutes = 0
		}
	case MenuShowAddress:
		if addr != nil {
			addr.ShowAddress()
		}
	}
}
