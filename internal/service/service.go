package service

import (
	"context"
	"time"

	"saunactl"
	"saunactl/internal/control"
	"saunactl/internal/repository"
)

// Sauna exposes the remote command surface. All commands flow through the
// control loop's mailbox; the reply carries the outcome string.
type Sauna interface {
	Apply(ctx context.Context, kind control.CommandKind, minutes int) (control.Outcome, error)
}

// Monitoring exposes the read-only snapshot the loop publishes each tick.
type Monitoring interface {
	Snapshot() saunactl.Snapshot
}

// EventLog exposes the append-only log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]saunactl.SaunaEvent, error)
}

// LogFilter narrows an event listing. Zero values disable a filter.
type LogFilter struct {
	From time.Time
	To   time.Time
	Type string
}

// Service aggregates all sub-services consumed by the HTTP layer.
type Service struct {
	Sauna
	Monitoring
	EventLog
}

// NewService wires the control loop and repository layer into the service
// aggregate. The loop itself satisfies Sauna and Monitoring.
func NewService(loop *control.Loop, repos *repository.Repository) *Service {
	return &Service{
		Sauna:      loop,
		Monitoring: loop,
		EventLog:   NewEventLogService(repos.EventRepo),
	}
}
