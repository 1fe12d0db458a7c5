package rootmanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeMachine(t *testing.T) {
	_, err := newModeMachine("banana")
	require.Error(t, err)

	fsm, err := newModeMachine(SlowMode)
	require.NoError(t, err)

	require.Error(t, fsm.Transition(SlowMode))
	require.NoError(t, fsm.Transition(OptimisticMode))
	require.Equal(t, OptimisticMode, fsm.Current())
	require.Error(t, fsm.Transition(OptimisticMode))
	require.NoError(t, fsm.Transition(SlowMode))
}
