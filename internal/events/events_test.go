package events

import (
	"context"
	"crm/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_LocalFanout(t *testing.T) {
	bus := New(nil, config.Config{})
	defer func() { _ = bus.Close() }()

	first := bus.Subscribe()
	second := bus.Subscribe()

	bus.Publish(context.Background(), Event{
		Type:    TypeRecruitCreated,
		Payload: map[string]any{"recruitId": 1},
	})

	for _, sub := range []<-chan Event{first, second} {
		select {
		case event := <-sub:
			assert.Equal(t, TypeRecruitCreated, event.Type)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestEventBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := New(nil, config.Config{})
	defer func() { _ = bus.Close() }()

	// Never drained; the buffer fills and further events are dropped.
	bus.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(context.Background(), Event{Type: TypeContactRecorded})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestEventBus_Close(t *testing.T) {
	bus := New(nil, config.Config{})

	sub := bus.Subscribe()
	require.NoError(t, bus.Close())

	_, open := <-sub
	assert.False(t, open, "subscriber channel should be closed")

	// Closing twice and publishing after close are both safe.
	require.NoError(t, bus.Close())
	bus.Publish(context.Background(), Event{Type: TypeRecruitDeleted})
}
