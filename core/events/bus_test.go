package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBus_Fanout(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish(SlowModeActivated{Caller: "watcher"})

	for _, ch := range []<-chan Event{a, b} {
		ev := <-ch
		activated, ok := ev.(SlowModeActivated)
		require.True(t, ok)
		require.Equal(t, "watcher", string(activated.Caller))
	}
}

func TestBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus()
	_ = bus.Subscribe() // never read

	// overflow the buffer; Publish must not stall
	for i := 0; i < subscriberBuffer+10; i++ {
		bus.Publish(ProposedRootFinalized{})
	}
}
