package saunactl

import "time"

// Snapshot is the per-tick read-only view of the controller published by the
// control loop. Collaborators (HTTP handlers, display, telemetry) only ever
// see copies of this value.
type Snapshot struct {
	TemperatureF     float64   `json:"temperature_f"`     // latest good sensor reading, °F
	Remaining        string    `json:"remaining"`         // countdown as MM:SS
	RemainingSeconds int       `json:"remaining_seconds"` // same countdown in whole seconds
	Powered          bool      `json:"powered"`           // heating element energized
	SensorFault      bool      `json:"sensor_fault,omitempty"`
	Mode             string    `json:"mode"`                 // NAVIGATING | ENTERING_TIME
	MenuEntry        string    `json:"menu_entry,omitempty"` // selected entry while NAVIGATING
	PendingMinutes   int       `json:"pending_minutes"`      // in-progress value while ENTERING_TIME
	UpdatedAt        time.Time `json:"updated_at"`
}

// SaunaEvent is a single entry in the append-only event log.
type SaunaEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // START | STOP | AUTO_OFF | ADD_TIME | SET_TIME | SENSOR_FAULT
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
