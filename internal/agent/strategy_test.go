package agent

import (
	"math/rand/v2"
	"testing"

	"github.com/specialistvlad/citytrail/internal/citymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{
		"stationary":             Stationary,
		"random":                 Random,
		"cheapest_least_visited": CheapestLeastVisited,
		"Cheapest-Least-Visited": CheapestLeastVisited,
		"dfs":                    DepthFirst,
		" depth_first ":          DepthFirst,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKind("teleport")
	assert.ErrorContains(t, err, `unknown strategy "teleport"`)
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range []Kind{Stationary, Random, CheapestLeastVisited, DepthFirst} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestNewStrategy(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, k := range []Kind{Stationary, Random, CheapestLeastVisited, DepthFirst} {
		s := NewStrategy(k, rng)
		require.NotNil(t, s)
		assert.Equal(t, k, s.Kind())
	}

	assert.Panics(t, func() { NewStrategy(Kind(42), rng) })
	assert.Panics(t, func() { NewStrategy(Random, nil) })
}

func TestStationary_NeverMoves(t *testing.T) {
	m := lineMap(t, 3)
	a := New(1, 10, NewStationary(), m, "S")

	for range 5 {
		mv := a.ComputeNextMove(m)
		assert.Equal(t, Move{To: 1, StaminaCost: 0}, mv)
		a.ApplyMove(mv)
	}
	assert.Equal(t, 6, a.Visits(1))
}

// starMap connects city 0 to every other city with the given lengths.
func starMap(t *testing.T, lengths ...int) *citymap.Map {
	t.Helper()
	m := citymap.New(len(lengths) + 1)
	for i, l := range lengths {
		require.NoError(t, m.InsertRoad(0, i+1, l))
	}
	return m
}

func TestRandom_OnlyAffordableRoads(t *testing.T) {
	m := starMap(t, 2, 5, 3, 9, 1)

	for seed := range uint64(200) {
		a := New(0, 3, NewRandom(rand.New(rand.NewPCG(seed, seed))), m, "R")
		mv := a.ComputeNextMove(m)

		require.NotEqual(t, 0, mv.To, "seed %d should find an affordable road", seed)
		length, ok := m.RoadLength(0, mv.To)
		require.True(t, ok)
		assert.Equal(t, length, mv.StaminaCost)
		assert.LessOrEqual(t, mv.StaminaCost, 3)
		assert.Contains(t, []int{1, 3, 5}, mv.To)
	}
}

func TestRandom_ReproducibleWithSeed(t *testing.T) {
	m := starMap(t, 1, 1, 1, 1, 1, 1)

	walk := func() []int {
		s := NewRandom(rand.New(rand.NewPCG(7, 11)))
		a := New(0, 100, s, m, "R")
		var visited []int
		for range 20 {
			mv := a.ComputeNextMove(m)
			a.ApplyMove(mv)
			visited = append(visited, a.Location())
		}
		return visited
	}

	assert.Equal(t, walk(), walk())
}

func TestRandom_CoversAllChoices(t *testing.T) {
	m := starMap(t, 1, 1, 1)
	a := New(0, 1, NewRandom(rand.New(rand.NewPCG(3, 4))), m, "R")

	seen := map[int]bool{}
	for range 200 {
		seen[a.ComputeNextMove(m).To] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
}

func TestRandom_StaysWhenNothingAffordable(t *testing.T) {
	m := starMap(t, 4, 6)
	a := New(0, 3, NewRandom(rand.New(rand.NewPCG(1, 1))), m, "R")

	assert.Equal(t, Move{To: 0, StaminaCost: 0}, a.ComputeNextMove(m))
}

func TestScenarioB_NoRoadMeansStay(t *testing.T) {
	m := citymap.New(2)

	length, ok := m.RoadLength(0, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, length)

	clv := New(0, 10, NewCheapestLeastVisited(), m, "C")
	assert.Equal(t, Move{To: 0, StaminaCost: 0}, clv.ComputeNextMove(m))

	rnd := New(0, 10, NewRandom(rand.New(rand.NewPCG(1, 2))), m, "R")
	assert.Equal(t, Move{To: 0, StaminaCost: 0}, rnd.ComputeNextMove(m))
}

func TestScenarioC_UnaffordableRoad(t *testing.T) {
	m := citymap.New(2)
	require.NoError(t, m.InsertRoad(0, 1, 3))
	a := New(0, 0, NewCheapestLeastVisited(), m, "C")

	assert.Equal(t, Move{To: 0, StaminaCost: 0}, a.ComputeNextMove(m))
}
