package mqtt

import (
	"sync"

	"saunactl"
)

// FakePublisher records published snapshots for tests.
type FakePublisher struct {
	mu        sync.Mutex
	Published []saunactl.Snapshot
	Closed    bool

	// PublishError, if set, is returned by PublishStatus.
	PublishError error
}

func (f *FakePublisher) PublishStatus(snap saunactl.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Published = append(f.Published, snap)
	return nil
}

func (f *FakePublisher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

// Count returns how many snapshots were published.
func (f *FakePublisher) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Published)
}
