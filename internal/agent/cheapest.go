package agent

// MaxRoadLength is the length the cheapest-least-visited strategy assigns to
// staying put when comparing it against real roads.
const MaxRoadLength = 1000

// CheapestLeastVisitedStrategy moves to the affordable neighbor with the
// fewest visits, then the shortest road, then the lowest id.
type CheapestLeastVisitedStrategy struct{}

func NewCheapestLeastVisited() *CheapestLeastVisitedStrategy {
	return &CheapestLeastVisitedStrategy{}
}

func (*CheapestLeastVisitedStrategy) Kind() Kind { return CheapestLeastVisited }

// candidate orders destinations by (visits, length, city).
type candidate struct {
	visits int
	length int
	city   int
}

func (c candidate) less(o candidate) bool {
	if c.visits != o.visits {
		return c.visits < o.visits
	}
	if c.length != o.length {
		return c.length < o.length
	}
	return c.city < o.city
}

func (*CheapestLeastVisitedStrategy) next(a *Agent, g Graph) Move {
	// Staying is the baseline every road has to beat.
	best := candidate{visits: a.Visits(a.location), length: MaxRoadLength, city: a.location}

	for _, r := range a.affordableRoads(g) {
		c := candidate{visits: a.Visits(r.To), length: r.Length, city: r.To}
		if c.less(best) {
			best = c
		}
	}

	if best.city == a.location {
		return a.stay()
	}
	return Move{To: best.city, StaminaCost: best.length}
}
