package notify

import (
	"errors"
	"sync"

	"github.com/KirkDiggler/tabletally/internal/common/uuid"
)

// Config holds configuration for the broker
type Config struct {
	// UUIDGenerator issues subscription IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// Broker fans "leaderboard changed" signals out to every subscriber.
// Each subscriber has a single buffered slot, so repeated signals coalesce
// and Notify never blocks.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]*Subscription
	ids  uuid.UUID
}

// New creates a new broker
func New(cfg *Config) (*Broker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	return &Broker{
		subs: make(map[string]*Subscription),
		ids:  ids,
	}, nil
}

// Subscribe registers a new listener
func (b *Broker) Subscribe() *Subscription {
	sub := &Subscription{
		ID:     b.ids.NewUUID(),
		ch:     make(chan struct{}, 1),
		broker: b,
	}

	b.mu.Lock()
	b.subs[sub.ID] = sub
	b.mu.Unlock()

	return sub
}

// Notify signals every subscriber without blocking
func (b *Broker) Notify() {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		select {
		case sub.ch <- struct{}{}:
		default:
			// a refresh is already pending for this subscriber
		}
	}
}

// Subscribers returns the number of active subscriptions
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub.ID]; !ok {
		return
	}
	delete(b.subs, sub.ID)
	close(sub.ch)
}

// Subscription is one listener's view of the broker
type Subscription struct {
	// ID identifies the subscription in logs
	ID string

	ch     chan struct{}
	broker *Broker
}

// C returns the channel that receives change signals. It is closed by Close.
func (s *Subscription) C() <-chan struct{} {
	return s.ch
}

// Close unregisters the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.broker.remove(s)
}
