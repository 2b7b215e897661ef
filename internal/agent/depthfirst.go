package agent

// DepthFirstStrategy walks a depth-first route over the map, backtracking
// along the roads it came by. The route is planned from the agent's location
// when first needed and again each time it is used up. The route and the
// cursor into it are kept on the Agent, so one value can drive any number of
// agents.
type DepthFirstStrategy struct{}

func NewDepthFirst() *DepthFirstStrategy { return &DepthFirstStrategy{} }

func (*DepthFirstStrategy) Kind() Kind { return DepthFirst }

// dfsRoute is an agent's cached depth-first route.
type dfsRoute struct {
	cities []int
	cursor int // index into cities of the next city to travel to
}

// current returns the cached route if an agent at location is still on it
// and has steps left, or a freshly planned one. It never modifies r.
func (r dfsRoute) current(g Graph, location int) dfsRoute {
	if r.cursor > 0 && r.cursor < len(r.cities) && r.cities[r.cursor-1] == location {
		return r
	}
	return dfsRoute{cities: PlanRoute(g, location), cursor: 1}
}

// advance returns the route after a move from from has been applied. A move
// that leaves the route drops it.
func (r dfsRoute) advance(g Graph, from int, m Move) dfsRoute {
	r = r.current(g, from)
	if m.To == from {
		return r
	}
	if r.cursor < len(r.cities) && r.cities[r.cursor] == m.To {
		r.cursor++
		return r
	}
	return dfsRoute{}
}

func (*DepthFirstStrategy) next(a *Agent, g Graph) Move {
	r := a.route.current(g, a.location)
	if r.cursor >= len(r.cities) {
		// Nothing reachable from here.
		return a.stay()
	}

	to := r.cities[r.cursor]
	cost, ok := g.RoadLength(a.location, to)
	if !ok || cost > a.stamina {
		// Recharge and retry the same step next time.
		return a.stay()
	}
	return Move{To: to, StaminaCost: cost}
}

func (*DepthFirstStrategy) observe(a *Agent, from int, m Move) {
	a.route = a.route.advance(a.graph, from, m)
}
