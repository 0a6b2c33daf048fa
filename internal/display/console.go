package display

import (
	"saunactl"
	"saunactl/internal/logger"
)

// AddressFunc supplies the network name and address shown by the "IP" menu
// entry. Network association itself is outside the controller.
type AddressFunc func() (ssid, ip string)

// Console logs the rendered panel lines instead of driving an LCD. It is the
// default when no hardware display is attached.
type Console struct {
	log  *logger.Logger
	addr AddressFunc

	lastTop    string
	lastBottom string
}

func NewConsole(log *logger.Logger, addr AddressFunc) *Console {
	if log == nil {
		log = logger.Nop()
	}
	return &Console{log: log, addr: addr}
}

// Render logs the panel lines, but only when they changed; the loop redraws
// every 200 ms and identical frames are noise.
func (c *Console) Render(snap saunactl.Snapshot) {
	top, bottom := Lines(snap)
	if top == c.lastTop && bottom == c.lastBottom {
		return
	}
	c.lastTop, c.lastBottom = top, bottom
	c.log.Debugw("display", "line1", top, "line2", bottom)
}

func (c *Console) ShowAddress() {
	if c.addr == nil {
		return
	}
	ssid, ip := c.addr()
	c.log.Infow("display address", "ssid", ssid, "ip", ip)
}

// Fake records render calls for tests.
type Fake struct {
	Rendered     []saunactl.Snapshot
	AddressShown int
}

func (f *Fake) Render(snap saunactl.Snapshot) { f.Rendered = append(f.Rendered, snap) }
func (f *Fake) ShowAddress()                  { f.AddressShown++ }

// Last returns the most recently rendered snapshot.
func (f *Fake) Last() (saunactl.Snapshot, bool) {
	if len(f.Rendered) == 0 {
		return saunactl.Snapshot{}, false
	}
	return f.Rendered[len(f.Rendered)-1], true
}
