// Package mqtt publishes controller status to a broker, with an abstraction
// for testing. Telemetry is optional: the controller runs identically with
// no broker configured.
package mqtt

import (
	"encoding/json"
	"math"
	"time"

	"saunactl"
)

// DefaultTopic is the MQTT topic for sauna status messages.
const DefaultTopic = "home/sauna/status"

// Publisher publishes controller status.
type Publisher interface {
	// PublishStatus sends one status snapshot to the broker.
	// Returns error if publishing fails (must not crash the process).
	PublishStatus(snap saunactl.Snapshot) error

	// Close disconnects from the broker.
	Close() error
}

// Payload is the MQTT message structure.
type Payload struct {
	Sauna StatusPayload `json:"sauna"`
}

// StatusPayload carries the published status fields.
type StatusPayload struct {
	Timestamp    string  `json:"timestamp"`
	TemperatureF float64 `json:"temperature_f"`
	Remaining    string  `json:"remaining"`
	Powered      bool    `json:"powered"`
	SensorFault  bool    `json:"sensor_fault,omitempty"`
}

// FormatPayload creates the JSON payload for a status snapshot.
func FormatPayload(snap saunactl.Snapshot) ([]byte, error) {
	payload := Payload{
		Sauna: StatusPayload{
			Timestamp:    snap.UpdatedAt.UTC().Format(time.RFC3339),
			TemperatureF: math.Round(snap.TemperatureF*10) / 10,
			Remaining:    snap.Remaining,
			Powered:      snap.Powered,
			SensorFault:  snap.SensorFault,
		},
	}
	return json.Marshal(payload)
}
