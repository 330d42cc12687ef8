package events

import (
	"context"
	"crm/config"
	"crm/internal/database"
	"crm/internal/logger"
	"encoding/json"
	"sync"

	"github.com/valkey-io/valkey-go"
)

const (
	TypeRecruitCreated  = "recruit.created"
	TypeRecruitUpdated  = "recruit.updated"
	TypeRecruitDeleted  = "recruit.deleted"
	TypeContactRecorded = "contact.recorded"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// EventBus fans events out to in-process subscribers and mirrors them over
// the valkey events channel so every server instance sharing the cache
// sees the same stream. Without a cache client it degrades to local-only
// fanout.
type EventBus struct {
	cache   database.CacheClient
	channel string
	log     logger.Logger

	mu     sync.RWMutex
	subs   []chan Event
	closed bool
	cancel context.CancelFunc
}

func New(cache database.CacheClient, config config.Config) *EventBus {
	bus := &EventBus{
		cache:   cache,
		channel: "crm:events",
		log:     logger.New("events"),
	}

	if cache != nil {
		ctx, cancel := context.WithCancel(context.Background())
		bus.cancel = cancel
		go bus.receive(ctx)
	}

	return bus
}

func (b *EventBus) receive(ctx context.Context) {
	log := b.log.Function("receive")

	err := b.cache.Receive(ctx, b.cache.B().Subscribe().Channel(b.channel).Build(),
		func(msg valkey.PubSubMessage) {
			var event Event
			if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
				log.Er("failed to decode event", err, "message", msg.Message)
				return
			}
			b.fanout(event)
		})
	if err != nil && ctx.Err() == nil {
		log.Er("event subscription ended", err)
	}
}

// Publish sends the event to every subscriber. With a cache client the
// event round-trips through valkey pubsub; a publish failure falls back to
// local fanout so in-process subscribers still hear it.
func (b *EventBus) Publish(ctx context.Context, event Event) {
	if b.cache == nil {
		b.fanout(event)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		b.log.Function("Publish").Er("failed to encode event", err, "type", event.Type)
		return
	}

	cmd := b.cache.B().Publish().Channel(b.channel).Message(string(payload)).Build()
	if err := b.cache.Do(ctx, cmd).Error(); err != nil {
		b.log.Function("Publish").Er("failed to publish event", err, "type", event.Type)
		b.fanout(event)
	}
}

func (b *EventBus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	b.subs = append(b.subs, ch)
	return ch
}

func (b *EventBus) fanout(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, sub := range b.subs {
		select {
		case sub <- event:
		default:
			b.log.Warn("dropping event for slow subscriber", "type", event.Type)
		}
	}
}

func (b *EventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	if b.cancel != nil {
		b.cancel()
	}

	for _, sub := range b.subs {
		close(sub)
	}
	b.subs = nil

	return nil
}
