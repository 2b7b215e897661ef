package agent

import (
	"testing"

	"github.com/specialistvlad/citytrail/internal/citymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineMap builds cities 0-1-...-(n-1) joined in a line by roads of length 1.
func lineMap(t *testing.T, n int) *citymap.Map {
	t.Helper()
	m := citymap.New(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, m.InsertRoad(i, i+1, 1))
	}
	return m
}

func TestNew(t *testing.T) {
	m := lineMap(t, 3)
	a := New(1, 7, NewStationary(), m, "D1")

	assert.Equal(t, "D1", a.Name())
	assert.Equal(t, 1, a.Location())
	assert.Equal(t, 1, a.StartLocation())
	assert.Equal(t, 7, a.Stamina())
	assert.Equal(t, 7, a.MaxStamina())
	assert.Equal(t, Stationary, a.Strategy().Kind())
	assert.Equal(t, 0, a.Visits(0))
	assert.Equal(t, 1, a.Visits(1))
	assert.Equal(t, 0, a.Visits(2))
	assert.Equal(t, 0, a.Visits(99))
}

func TestNew_InvalidArgumentsPanic(t *testing.T) {
	m := lineMap(t, 3)

	assert.PanicsWithValue(t, "agent: starting city (3) is invalid", func() {
		New(3, 5, NewStationary(), m, "x")
	})
	assert.Panics(t, func() { New(-1, 5, NewStationary(), m, "x") })
	assert.Panics(t, func() { New(0, -1, NewStationary(), m, "x") })
	assert.Panics(t, func() { New(0, 5, nil, m, "x") })
}

func TestApplyMove_Travel(t *testing.T) {
	m := lineMap(t, 3)
	a := New(0, 5, NewStationary(), m, "D1")

	a.ApplyMove(Move{To: 1, StaminaCost: 1})

	assert.Equal(t, 1, a.Location())
	assert.Equal(t, 4, a.Stamina())
	assert.Equal(t, 1, a.Visits(0))
	assert.Equal(t, 1, a.Visits(1))
}

func TestApplyMove_RechargeInPlace(t *testing.T) {
	m := lineMap(t, 3)
	a := New(0, 5, NewStationary(), m, "D1")
	a.ApplyMove(Move{To: 1, StaminaCost: 1})
	a.ApplyMove(Move{To: 2, StaminaCost: 1})
	require.Equal(t, 3, a.Stamina())

	// The cost of a self-move is ignored.
	a.ApplyMove(Move{To: 2, StaminaCost: 4})

	assert.Equal(t, 2, a.Location())
	assert.Equal(t, 5, a.Stamina())
	assert.Equal(t, 2, a.Visits(2))
}

func TestApplyMove_RechargeFromZero(t *testing.T) {
	m := lineMap(t, 2)
	a := New(0, 1, NewStationary(), m, "D1")
	a.ApplyMove(Move{To: 1, StaminaCost: 1})
	require.Equal(t, 0, a.Stamina())

	a.ApplyMove(Move{To: 1})
	assert.Equal(t, 1, a.Stamina())
}

func TestComputeNextMove_DoesNotMutate(t *testing.T) {
	m := lineMap(t, 4)
	for _, s := range []Strategy{NewStationary(), NewCheapestLeastVisited(), NewDepthFirst()} {
		a := New(0, 3, s, m, "D1")
		first := a.ComputeNextMove(m)
		second := a.ComputeNextMove(m)

		assert.Equal(t, first, second, s.Kind().String())
		assert.Equal(t, 0, a.Location())
		assert.Equal(t, 3, a.Stamina())
		assert.Equal(t, 1, a.Visits(0))
	}
}

func TestNotifySighting_IsInert(t *testing.T) {
	m := lineMap(t, 3)
	a := New(0, 3, NewCheapestLeastVisited(), m, "D1")
	before := a.ComputeNextMove(m)

	a.NotifySighting(2)

	assert.Equal(t, before, a.ComputeNextMove(m))
	assert.Equal(t, 0, a.Location())
}

func TestString(t *testing.T) {
	m := lineMap(t, 2)
	a := New(1, 4, NewDepthFirst(), m, "D2")
	assert.Equal(t, "D2 at 1 (stamina 4/4, dfs)", a.String())
}
