package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"saunactl"
)

func TestGetLogs(t *testing.T) {
	logs := &fakeEventLog{events: []saunactl.SaunaEvent{
		{EventID: "ev-1", Type: "AUTO_OFF", Description: "Countdown reached zero"},
	}}
	w := doGet(t, newTestRouter(nil, nil, logs), "/api/v1/logs/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got struct {
		Count  int                   `json:"count"`
		Events []saunactl.SaunaEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Count != 1 || got.Events[0].EventID != "ev-1" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestGetLogsFilters(t *testing.T) {
	logs := &fakeEventLog{}
	q := url.Values{
		"from": {"2026-08-01T10:00:00Z"},
		"to":   {"2026-08-02"},
		"type": {"start"},
	}
	w := doGet(t, newTestRouter(nil, nil, logs), "/api/v1/logs/?"+q.Encode())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if logs.last.Type != "START" {
		t.Fatalf("type = %q, want uppercased", logs.last.Type)
	}
	wantFrom := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if !logs.last.From.Equal(wantFrom) {
		t.Fatalf("from = %v", logs.last.From)
	}
	// Date-only 'to' covers the whole day.
	wantTo := time.Date(2026, 8, 2, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	if !logs.last.To.Equal(wantTo) {
		t.Fatalf("to = %v, want end of day", logs.last.To)
	}
}

func TestGetLogsAcceptsDateTimeLayout(t *testing.T) {
	logs := &fakeEventLog{}
	w := doGet(t, newTestRouter(nil, nil, logs), "/api/v1/logs/?from="+url.QueryEscape("2026-08-01 10:30:00"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	want := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	if !logs.last.From.Equal(want) {
		t.Fatalf("from = %v", logs.last.From)
	}
}

func TestGetLogsBadFrom(t *testing.T) {
	w := doGet(t, newTestRouter(nil, nil, nil), "/api/v1/logs/?from=yesterday")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetLogsInvertedRange(t *testing.T) {
	w := doGet(t, newTestRouter(nil, nil, nil), "/api/v1/logs/?from=2026-08-02&to=2026-08-01")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetLogsServiceError(t *testing.T) {
	logs := &fakeEventLog{err: errors.New("db locked")}
	w := doGet(t, newTestRouter(nil, nil, logs), "/api/v1/logs/")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
