package repository

import (
	"context"
	"database/sql"
	"time"

	"saunactl"
)

// EventRepo is the append-only event log.
type EventRepo interface {
	Append(ctx context.Context, e saunactl.SaunaEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]saunactl.SaunaEvent, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}
