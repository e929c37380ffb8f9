package sensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(s *State) bool {
	select {
	case <-s.Changed():
		return true
	default:
		return false
	}
}

func TestStateRefcount(t *testing.T) {
	s := NewState()
	require.Zero(t, s.Bits())

	s.Engage(A3)
	require.True(t, s.Pressed(A3))
	require.Equal(t, uint64(1)<<A3, s.Bits())
	require.True(t, drain(s))

	// A second zone with the same tag adds a claim without a change.
	s.Engage(A3)
	require.False(t, drain(s))

	s.Disengage(A3)
	require.True(t, s.Pressed(A3))
	require.False(t, drain(s))

	s.Disengage(A3)
	require.False(t, s.Pressed(A3))
	require.Zero(t, s.Bits())
	require.True(t, drain(s))

	// Unmatched release is ignored.
	s.Disengage(A3)
	require.Zero(t, s.Bits())
	require.False(t, drain(s))
}

func TestStateIgnoresUnknownTags(t *testing.T) {
	s := NewState()
	s.Engage(NumButtons)
	s.Engage(200)
	require.Zero(t, s.Bits())
	require.False(t, s.Pressed(200))
	require.False(t, drain(s))
}

func TestStateChangesMerge(t *testing.T) {
	s := NewState()
	s.Engage(A1)
	s.Engage(E8)
	require.True(t, drain(s))
	require.False(t, drain(s))
	require.Equal(t, uint64(1)<<A1|uint64(1)<<E8, s.Bits())
}
