package agent

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Kind names one of the built-in strategies.
type Kind int

const (
	Stationary Kind = iota
	Random
	CheapestLeastVisited
	DepthFirst
)

func (k Kind) String() string {
	switch k {
	case Stationary:
		return "stationary"
	case Random:
		return "random"
	case CheapestLeastVisited:
		return "cheapest_least_visited"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stationary":
		return Stationary, nil
	case "random":
		return Random, nil
	case "cheapest_least_visited", "cheapest-least-visited":
		return CheapestLeastVisited, nil
	case "dfs", "depth_first", "depth-first":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Strategy decides an agent's next move.
type Strategy interface {
	Kind() Kind
	next(a *Agent, g Graph) Move
}

// moveObserver is implemented by strategies that update the agent's
// strategy state once a move has been applied.
type moveObserver interface {
	observe(a *Agent, from int, m Move)
}

// NewStrategy builds a fresh strategy of the given kind. rng is only used by
// Random. It panics on an unknown kind.
func NewStrategy(kind Kind, rng *rand.Rand) Strategy {
	switch kind {
	case Stationary:
		return NewStationary()
	case Random:
		return NewRandom(rng)
	case CheapestLeastVisited:
		return NewCheapestLeastVisited()
	case DepthFirst:
		return NewDepthFirst()
	default:
		panic(fmt.Sprintf("agent: strategy %s not implemented", kind))
	}
}

// StationaryStrategy never moves.
type StationaryStrategy struct{}

func NewStationary() *StationaryStrategy { return &StationaryStrategy{} }

func (*StationaryStrategy) Kind() Kind { return Stationary }

func (*StationaryStrategy) next(a *Agent, _ Graph) Move {
	return a.stay()
}

// RandomStrategy picks uniformly among the roads the agent can afford.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandom returns a random strategy drawing from rng. Seed rng to make
// runs reproducible.
func NewRandom(rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		panic("agent: random strategy requires a random source")
	}
	return &RandomStrategy{rng: rng}
}

func (*RandomStrategy) Kind() Kind { return Random }

func (s *RandomStrategy) next(a *Agent, g Graph) Move {
	legal := a.affordableRoads(g)
	if len(legal) == 0 {
		return a.stay()
	}
	r := legal[s.rng.IntN(len(legal))]
	return Move{To: r.To, StaminaCost: r.Length}
}
