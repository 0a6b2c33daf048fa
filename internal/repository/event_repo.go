package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"saunactl"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite {
	return &EventSQLite{db: db}
}

const insertEventSQL = `
	INSERT INTO sauna_events (id, occurred_at, type, message, meta)
	VALUES (?, ?, ?, ?, ?)
`

// Append stores one event. Metadata is serialized to JSON; a nil metadata
// stores an empty string.
func (r *EventSQLite) Append(ctx context.Context, e saunactl.SaunaEvent) error {
	meta := ""
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return err
		}
		meta = string(b)
	}
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.OccurredAt.UTC(),
		e.Type,
		e.Description,
		meta,
	)
	return err
}

// List returns events in [from, to] of the given type, newest first. Zero
// times and an empty type disable the corresponding filter.
func (r *EventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]saunactl.SaunaEvent, error) {
	query := `SELECT id, occurred_at, type, message, meta FROM sauna_events WHERE 1=1`
	var args []any
	if !from.IsZero() {
		query += ` AND occurred_at >= ?`
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		query += ` AND occurred_at <= ?`
		args = append(args, to.UTC())
	}
	if typ != "" {
		query += ` AND type = ?`
		args = append(args, typ)
	}
	query += ` ORDER BY occurred_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []saunactl.SaunaEvent
	for rows.Next() {
		var e saunactl.SaunaEvent
		var meta string
		if err := rows.Scan(&e.EventID, &e.OccurredAt, &e.Type, &e.Description, &meta); err != nil {
			return nil, err
		}
		if meta != "" {
			var m map[string]any
			if err := json.Unmarshal([]byte(meta), &m); err == nil {
				e.Metadata = m
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
