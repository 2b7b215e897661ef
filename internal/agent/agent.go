package agent

import (
	"fmt"

	"github.com/specialistvlad/citytrail/internal/citymap"
)

// Graph is the read-only view of the city map an agent needs.
type Graph interface {
	NumCities() int
	RoadsFrom(city int) []citymap.Road
	RoadLength(a, b int) (int, bool)
}

// Move is a candidate move: travel to To, paying StaminaCost. A move to the
// agent's current location is a recharge.
type Move struct {
	To          int
	StaminaCost int
}

// Agent is the mutable travel state of one entity on the map.
type Agent struct {
	name          string
	startLocation int
	location      int
	maxStamina    int
	stamina       int
	strategy      Strategy
	graph         Graph
	visits        []int
	route         dfsRoute
}

// New creates an agent at start with full stamina. The graph is borrowed,
// not owned. New panics if start is not a city of g, if maxStamina is
// negative or if strategy is nil; these are configuration errors.
func New(start, maxStamina int, strategy Strategy, g Graph, name string) *Agent {
	if start < 0 || start >= g.NumCities() {
		panic(fmt.Sprintf("agent: starting city (%d) is invalid", start))
	}
	if maxStamina < 0 {
		panic(fmt.Sprintf("agent: max stamina (%d) is invalid", maxStamina))
	}
	if strategy == nil {
		panic("agent: strategy is required")
	}

	visits := make([]int, g.NumCities())
	visits[start] = 1

	return &Agent{
		name:          name,
		startLocation: start,
		location:      start,
		maxStamina:    maxStamina,
		stamina:       maxStamina,
		strategy:      strategy,
		graph:         g,
		visits:        visits,
	}
}

func (a *Agent) Name() string       { return a.name }
func (a *Agent) Location() int      { return a.location }
func (a *Agent) StartLocation() int { return a.startLocation }
func (a *Agent) Stamina() int       { return a.stamina }
func (a *Agent) MaxStamina() int    { return a.maxStamina }
func (a *Agent) Strategy() Strategy { return a.strategy }

// Visits returns how many times the agent has occupied city.
func (a *Agent) Visits(city int) int {
	if city < 0 || city >= len(a.visits) {
		return 0
	}
	return a.visits[city]
}

// Route returns a copy of the agent's cached depth-first route and the
// cursor into it. The route is empty until a depth-first move has been
// applied, and after the agent was moved off it.
func (a *Agent) Route() ([]int, int) {
	return append([]int(nil), a.route.cities...), a.route.cursor
}

// ComputeNextMove returns the move the agent's strategy wants to make next.
// It does not change the agent. g should be the graph the agent was created
// with: ApplyMove keeps the depth-first route in step with that graph, and a
// move planned on another graph that leaves its route drops the cache.
func (a *Agent) ComputeNextMove(g Graph) Move {
	return a.strategy.next(a, g)
}

// ApplyMove commits a move. The caller is responsible for only applying
// moves the agent can afford, as returned by ComputeNextMove.
func (a *Agent) ApplyMove(m Move) {
	from := a.location
	if m.To == a.location {
		a.stamina = a.maxStamina
	} else {
		a.stamina -= m.StaminaCost
	}
	a.location = m.To
	a.visits[m.To]++

	if obs, ok := a.strategy.(moveObserver); ok {
		obs.observe(a, from, m)
	}
}

// NotifySighting tells the agent where another entity was last seen.
// Agents do not act on sightings yet.
func (a *Agent) NotifySighting(city int) {}

func (a *Agent) String() string {
	return fmt.Sprintf("%s at %d (stamina %d/%d, %s)", a.name, a.location, a.stamina, a.maxStamina, a.strategy.Kind())
}

func (a *Agent) stay() Move {
	return Move{To: a.location, StaminaCost: 0}
}

// affordableRoads returns the roads from the agent's location it has the
// stamina to travel, in the graph's order.
func (a *Agent) affordableRoads(g Graph) []citymap.Road {
	roads := g.RoadsFrom(a.location)
	legal := make([]citymap.Road, 0, len(roads))
	for _, r := range roads {
		if r.Length <= a.stamina {
			legal = append(legal, r)
		}
	}
	return legal
}
