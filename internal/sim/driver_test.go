package sim

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/specialistvlad/citytrail/internal/agent"
	"github.com/specialistvlad/citytrail/internal/citymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineMap(t *testing.T, n int) *citymap.Map {
	t.Helper()
	m := citymap.New(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, m.InsertRoad(i, i+1, 1))
	}
	return m
}

func TestRun_DepthFirstLine(t *testing.T) {
	m := lineMap(t, 4)
	a := agent.New(0, 5, agent.NewDepthFirst(), m, "D1")

	trace, err := New(m, []*agent.Agent{a}, 7).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, trace.Steps, 7)
	var to []int
	for _, s := range trace.Steps {
		to = append(to, s.To)
	}
	assert.Equal(t, []int{1, 2, 3, 2, 1, 1, 0}, to)

	recharge := trace.Steps[5]
	assert.True(t, recharge.Recharged())
	assert.Equal(t, 0, recharge.Cost)
	assert.Equal(t, 5, recharge.Stamina)

	assert.NotEmpty(t, trace.RunID)
	assert.Equal(t, []AgentState{{Name: "D1", Location: 0, Stamina: 4}}, trace.Final)
}

func TestTurn_AllAgentsMoveEachTurn(t *testing.T) {
	m := lineMap(t, 3)
	agents := []*agent.Agent{
		agent.New(0, 3, agent.NewCheapestLeastVisited(), m, "C"),
		agent.New(2, 3, agent.NewStationary(), m, "S"),
	}

	steps, err := New(m, agents, 1).Turn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Turn: 1, Agent: "C", From: 0, To: 1, Cost: 1, Stamina: 2},
		{Turn: 1, Agent: "S", From: 2, To: 2, Cost: 0, Stamina: 3},
	}, steps)
}

func TestRun_ReproducibleWithSeed(t *testing.T) {
	m := citymap.New(5)
	for _, r := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 3, 3}, {2, 3, 2}, {3, 4, 1}, {4, 0, 4}} {
		require.NoError(t, m.InsertRoad(r[0], r[1], r[2]))
	}

	run := func() []Step {
		agents := []*agent.Agent{
			agent.New(0, 4, agent.NewRandom(rand.New(rand.NewPCG(9, 0))), m, "R1"),
			agent.New(3, 6, agent.NewRandom(rand.New(rand.NewPCG(9, 1))), m, "R2"),
		}
		trace, err := New(m, agents, 25).Run(context.Background())
		require.NoError(t, err)
		return trace.Steps
	}

	assert.Equal(t, run(), run())
}

func TestRun_NeverOverspends(t *testing.T) {
	m := citymap.New(4)
	for _, r := range [][3]int{{0, 1, 3}, {1, 2, 4}, {2, 3, 2}, {3, 0, 5}} {
		require.NoError(t, m.InsertRoad(r[0], r[1], r[2]))
	}
	agents := []*agent.Agent{
		agent.New(0, 5, agent.NewRandom(rand.New(rand.NewPCG(1, 2))), m, "R"),
		agent.New(1, 5, agent.NewCheapestLeastVisited(), m, "C"),
		agent.New(2, 5, agent.NewDepthFirst(), m, "D"),
	}

	trace, err := New(m, agents, 50).Run(context.Background())
	require.NoError(t, err)
	for _, s := range trace.Steps {
		assert.GreaterOrEqual(t, s.Stamina, 0)
		assert.LessOrEqual(t, s.Stamina, 5)
		if !s.Recharged() {
			assert.True(t, m.ContainsRoad(s.From, s.To), "%s moved %d->%d without a road", s.Agent, s.From, s.To)
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	m := lineMap(t, 2)
	a := agent.New(0, 1, agent.NewStationary(), m, "S")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trace, err := New(m, []*agent.Agent{a}, 3).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, trace.Steps)
}

func TestRun_ZeroTurns(t *testing.T) {
	m := lineMap(t, 2)
	a := agent.New(1, 1, agent.NewStationary(), m, "S")

	trace, err := New(m, []*agent.Agent{a}, 0).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trace.Steps)
	assert.Equal(t, []AgentState{{Name: "S", Location: 1, Stamina: 1}}, trace.Final)
}

func TestWriteText(t *testing.T) {
	m := lineMap(t, 2)
	m.SetName(0, "Sydney")
	trace := &Trace{
		Steps: []Step{
			{Turn: 1, Agent: "D1", From: 0, To: 1, Cost: 1, Stamina: 0},
			{Turn: 2, Agent: "D1", From: 1, To: 1, Cost: 0, Stamina: 1},
		},
		Final: []AgentState{{Name: "D1", Location: 1, Stamina: 1}},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteText(buf, trace, m.Name))

	out := buf.String()
	assert.Contains(t, out, "TURN")
	assert.Contains(t, out, "[0] Sydney")
	assert.Contains(t, out, "[1] unnamed")
	assert.Contains(t, out, "(recharge)")
	assert.Contains(t, out, "D1 finished at [1] unnamed with stamina 1\n")
}

func TestWriteJSON(t *testing.T) {
	trace := &Trace{RunID: "abc", Turns: 1, Steps: []Step{{Turn: 1, Agent: "A", From: 0, To: 1, Cost: 2, Stamina: 3}}}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteJSON(buf, trace))

	var decoded Trace
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc", decoded.RunID)
	assert.Equal(t, trace.Steps, decoded.Steps)
}
