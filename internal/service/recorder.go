package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"saunactl"
	"saunactl/internal/logger"
	"saunactl/internal/repository"
)

// recorderBuffer bounds how many events may be queued before writes start
// dropping. The loop emits at most a handful of events per second.
const recorderBuffer = 64

// Recorder decouples the control loop from sqlite: Record is a non-blocking
// enqueue, and a background goroutine does the actual writes. Overflow drops
// the event with a log line rather than ever stalling a loop tick.
type Recorder struct {
	eventRepo repository.EventRepo
	log       *logger.Logger
	ch        chan saunactl.SaunaEvent
}

func NewRecorder(eventRepo repository.EventRepo, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{
		eventRepo: eventRepo,
		log:       log,
		ch:        make(chan saunactl.SaunaEvent, recorderBuffer),
	}
}

// Record queues an event for persistence. Never blocks.
func (r *Recorder) Record(eventType, description string, metadata map[string]any) {
	e := saunactl.SaunaEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        eventType,
		Description: description,
	}
	if metadata != nil {
		e.Metadata = metadata
	}
	select {
	case r.ch <- e:
	default:
		r.log.Warnw("event dropped, recorder buffer full", "type", eventType)
	}
}

// Run drains the queue until ctx is canceled, then flushes what is left.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			r.flush()
			return
		case e := <-r.ch:
			r.append(e)
		}
	}
}

func (r *Recorder) flush() {
	for {
		select {
		case e := <-r.ch:
			r.append(e)
		default:
			return
		}
	}
}

func (r *Recorder) append(e saunactl.SaunaEvent) {
	// Detached context: the recorder may be flushing after the request or
	// loop context is gone.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.eventRepo.Append(ctx, e); err != nil {
		r.log.Errorw("event append failed", "err", err, "type", e.Type)
	}
}
