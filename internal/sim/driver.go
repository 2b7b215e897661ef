package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/citytrail/internal/agent"
	"github.com/specialistvlad/citytrail/internal/ctxlog"
)

// ErrUnaffordableMove is returned when a strategy proposes a move the agent
// does not have the stamina for.
var ErrUnaffordableMove = errors.New("move exceeds agent stamina")

// Step records one applied move.
type Step struct {
	Turn    int    `json:"turn"`
	Agent   string `json:"agent"`
	From    int    `json:"from"`
	To      int    `json:"to"`
	Cost    int    `json:"cost"`
	Stamina int    `json:"stamina"`
}

// Recharged reports whether the step was a recharge in place.
func (s Step) Recharged() bool {
	return s.From == s.To
}

// AgentState is an agent's position at the end of a run.
type AgentState struct {
	Name     string `json:"name"`
	Location int    `json:"location"`
	Stamina  int    `json:"stamina"`
}

// Trace is the full record of a run.
type Trace struct {
	RunID string       `json:"run_id"`
	Turns int          `json:"turns"`
	Steps []Step       `json:"steps"`
	Final []AgentState `json:"final"`
}

// Driver runs the turn loop.
type Driver struct {
	graph  agent.Graph
	agents []*agent.Agent
	turns  int
}

// New creates a driver that runs turns turns over g. The driver never
// modifies g.
func New(g agent.Graph, agents []*agent.Agent, turns int) *Driver {
	return &Driver{graph: g, agents: agents, turns: turns}
}

// Run plays every turn and returns the trace. It stops early with the
// context's error if ctx is cancelled between turns.
func (d *Driver) Run(ctx context.Context) (*Trace, error) {
	runID := uuid.NewString()
	ctx = ctxlog.With(ctx, "run_id", runID)
	logger := ctxlog.FromContext(ctx)
	logger.Info("Simulation starting.", "agents", len(d.agents), "turns", d.turns)

	trace := &Trace{RunID: runID, Turns: d.turns}
	for turn := 1; turn <= d.turns; turn++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("Simulation cancelled.", "turn", turn, "error", err)
			return trace, err
		}
		steps, err := d.Turn(ctx, turn)
		trace.Steps = append(trace.Steps, steps...)
		if err != nil {
			return trace, fmt.Errorf("turn %d: %w", turn, err)
		}
	}

	for _, a := range d.agents {
		trace.Final = append(trace.Final, AgentState{Name: a.Name(), Location: a.Location(), Stamina: a.Stamina()})
	}
	logger.Info("Simulation finished.", "steps", len(trace.Steps))
	return trace, nil
}

// Turn computes every agent's move, then applies them all.
func (d *Driver) Turn(ctx context.Context, turn int) ([]Step, error) {
	logger := ctxlog.FromContext(ctx)

	moves := make([]agent.Move, len(d.agents))
	for i, a := range d.agents {
		moves[i] = a.ComputeNextMove(d.graph)
	}

	steps := make([]Step, 0, len(d.agents))
	for i, a := range d.agents {
		mv := moves[i]
		from := a.Location()
		if mv.To != from && mv.StaminaCost > a.Stamina() {
			return steps, fmt.Errorf("agent %s %d->%d costs %d with %d left: %w", a.Name(), from, mv.To, mv.StaminaCost, a.Stamina(), ErrUnaffordableMove)
		}

		a.ApplyMove(mv)
		step := Step{Turn: turn, Agent: a.Name(), From: from, To: mv.To, Cost: mv.StaminaCost, Stamina: a.Stamina()}
		if step.Recharged() {
			step.Cost = 0
		}
		steps = append(steps, step)
		logger.Debug("Agent moved.", "turn", turn, "agent", a.Name(), "from", from, "to", mv.To, "cost", step.Cost, "stamina", a.Stamina())
	}
	return steps, nil
}
