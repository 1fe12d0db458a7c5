package rootmanager

import (
	"github.com/pkg/errors"
)

// Mode is the engine's operating mode.
type Mode string

const (
	// SlowMode aggregates every dequeued inbound root on the accumulator.
	SlowMode Mode = "slow"
	// OptimisticMode accepts off-chain proposals behind a dispute window.
	OptimisticMode Mode = "optimistic"
)

var modeTransitions = map[Mode]map[Mode]struct{}{
	SlowMode: {
		OptimisticMode: struct{}{},
	},
	OptimisticMode: {
		SlowMode: struct{}{},
	},
}

type modeMachine struct {
	current Mode
}

func newModeMachine(initial Mode) (*modeMachine, error) {
	if initial != SlowMode && initial != OptimisticMode {
		return nil, errors.Errorf("unknown mode %q", initial)
	}
	return &modeMachine{current: initial}, nil
}

func (m *modeMachine) Current() Mode {
	return m.current
}

func (m *modeMachine) Transition(next Mode) error {
	if allowed, ok := modeTransitions[m.current]; ok {
		if _, ok = allowed[next]; ok {
			m.current = next
			return nil
		}
	}

	return errors.Errorf("invalid mode transition %s -> %s", m.current, next)
}
