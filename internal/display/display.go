// Package display renders controller snapshots into the two 16-character
// lines of the front panel. The character-cell I/O itself lives behind the
// Display interface; this package owns only the layout.
package display

import (
	"fmt"

	"saunactl"
)

// Width is the character width of one panel line.
const Width = 16

// Display consumes snapshots for rendering. Implementations must return
// quickly; the control loop calls Render inline.
type Display interface {
	// Render draws the current state.
	Render(snap saunactl.Snapshot)
	// ShowAddress displays the network name and address, for the "IP" menu
	// entry.
	ShowAddress()
}

// Lines lays a snapshot out on the 16×2 panel: temperature at column 0,
// MM:SS countdown at column 8, powered marker at column 15; the second line
// carries the menu cursor or the in-progress time entry.
func Lines(snap saunactl.Snapshot) (string, string) {
	top := fmt.Sprintf("%.1f\xdfF", snap.TemperatureF)
	top = padTo(top, 8) + snap.Remaining
	top = padTo(top, Width-1)
	if snap.Powered {
		top += "*" // flame glyph slot
	} else {
		top += "_"
	}

	var bottom string
	if snap.Mode == "ENTERING_TIME" {
		bottom = fmt.Sprintf(">Set Time: %2dm", snap.PendingMinutes)
	} else {
		bottom = ">" + snap.MenuEntry
	}
	return top, padTo(bottom, Width)
}

func padTo(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
