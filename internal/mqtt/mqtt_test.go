package mqtt

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saunactl"
)

func TestFormatPayload(t *testing.T) {
	snap := saunactl.Snapshot{
		TemperatureF: 150.04,
		Remaining:    "45:00",
		Powered:      true,
		UpdatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	b, err := FormatPayload(snap)
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	sauna := got["sauna"]
	assert.Equal(t, "2026-08-01T12:00:00Z", sauna["timestamp"])
	assert.Equal(t, 150.0, sauna["temperature_f"], "temperature rounds to one decimal")
	assert.Equal(t, "45:00", sauna["remaining"])
	assert.Equal(t, true, sauna["powered"])
	_, present := sauna["sensor_fault"]
	assert.False(t, present, "healthy probe omits the fault flag")
}

func TestRunPublishesPeriodically(t *testing.T) {
	pub := &FakePublisher{}
	source := func() saunactl.Snapshot {
		return saunactl.Snapshot{Remaining: "10:00"}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Run(ctx, pub, source, 5*time.Millisecond, nil)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pub.Count() >= 3 },
		time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestRunKeepsGoingAfterPublishError(t *testing.T) {
	pub := &FakePublisher{PublishError: assert.AnError}
	source := func() saunactl.Snapshot { return saunactl.Snapshot{} }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	Run(ctx, pub, source, 5*time.Millisecond, nil)
	// Reaching here without a panic is the assertion: errors are swallowed
	// and the runner exits only on ctx.
	assert.Zero(t, pub.Count())
}
