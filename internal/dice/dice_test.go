package dice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	require.Equal(t, 0, Roll{false, false, false, false}.Count())
	require.Equal(t, 2, Roll{true, false, true, false}.Count())
	require.Equal(t, 4, Roll{true, true, true, true}.Count())
	require.Equal(t, 0, Roll(nil).Count())
}

func TestRollerSeeded(t *testing.T) {
	a := NewRoller(4, 42)
	b := NewRoller(4, 42)

	for i := 0; i < 20; i++ {
		ra, rb := a.Roll(), b.Roll()
		require.Len(t, ra, 4)
		require.Equal(t, ra, rb)
		require.GreaterOrEqual(t, ra.Count(), 0)
		require.LessOrEqual(t, ra.Count(), 4)
	}
}

func TestRollerCoversBothFaces(t *testing.T) {
	r := NewRoller(4, 7)
	seen := map[bool]bool{}
	for i := 0; i < 50; i++ {
		for _, up := range r.Roll() {
			seen[up] = true
		}
	}
	require.True(t, seen[true])
	require.True(t, seen[false])
}

func TestRollerClockSeed(t *testing.T) {
	require.Len(t, NewRoller(3, 0).Roll(), 3)
}
