package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"saunactl"
)

type syncEventRepo struct {
	mu     sync.Mutex
	events []saunactl.SaunaEvent
}

func (f *syncEventRepo) Append(ctx context.Context, e saunactl.SaunaEvent) error {
	f.mu.Lock()
	f.events = append(f.events, e)
	f.mu.Unlock()
	return nil
}

func (f *syncEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]saunactl.SaunaEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]saunactl.SaunaEvent(nil), f.events...), nil
}

func (f *syncEventRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestRecorderPersistsInBackground(t *testing.T) {
	repo := &syncEventRepo{}
	rec := NewRecorder(repo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rec.Run(ctx)
		close(done)
	}()

	rec.Record("START", "Sauna turned on remotely", map[string]any{"remaining_seconds": 5400})
	rec.Record("STOP", "Sauna turned off remotely", nil)

	deadline := time.After(2 * time.Second)
	for repo.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("events not persisted, have %d", repo.count())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done

	events, _ := repo.List(context.Background(), time.Time{}, time.Time{}, "")
	if events[0].EventID == "" || events[0].OccurredAt.IsZero() {
		t.Fatalf("event missing id or timestamp: %+v", events[0])
	}
	if events[0].Type != "START" {
		t.Fatalf("unexpected order: %+v", events)
	}
}

func TestRecorderNeverBlocks(t *testing.T) {
	// No Run goroutine: the buffer fills and further Records must drop
	// instead of stalling the caller.
	rec := NewRecorder(&syncEventRepo{}, nil)

	finished := make(chan struct{})
	go func() {
		for i := 0; i < recorderBuffer*2; i++ {
			rec.Record("SET_TIME", "Countdown set from menu", nil)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}
}

func TestRecorderFlushesOnShutdown(t *testing.T) {
	repo := &syncEventRepo{}
	rec := NewRecorder(repo, nil)

	// Queue before the goroutine starts, then cancel immediately: Run must
	// still drain what was queued.
	rec.Record("AUTO_OFF", "Countdown reached zero", nil)
	rec.Record("STOP", "Sauna turned off remotely", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec.Run(ctx)

	if repo.count() != 2 {
		t.Fatalf("expected 2 flushed events, got %d", repo.count())
	}
}
