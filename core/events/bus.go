package events

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Bus fans events out to subscribers and mirrors each one into the log.
// Publish never blocks the engine: a subscriber that falls behind loses
// events rather than stalling a state transition.
type Bus struct {
	mu   sync.RWMutex
	subs []chan Event
}

const subscriberBuffer = 256

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe returns a buffered channel receiving every subsequent event.
func (b *Bus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	b.subs = append(b.subs, ch)
	return ch
}

func (b *Bus) Publish(e Event) {
	log.Infof("event %T: %+v", e, e)

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			log.Warnf("event subscriber overflow, dropping %s", fmt.Sprintf("%T", e))
		}
	}
}
