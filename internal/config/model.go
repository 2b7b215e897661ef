package config

import (
	"errors"
	"fmt"
)

// MaxCities bounds the size of a map. The map stores a length for every pair
// of cities, so memory grows with the square of this number.
const MaxCities = 4096

// Model is the unified, format-agnostic representation of a scenario.
type Model struct {
	Map        *MapDefinition
	Cities     []*City
	Roads      []*Road
	Agents     []*Agent
	Simulation *Simulation
}

// MapDefinition sizes the city map.
type MapDefinition struct {
	NumCities int
}

// City names one city of the map.
type City struct {
	ID   int
	Name string
}

// Road is an undirected road between two cities.
type Road struct {
	From   int
	To     int
	Length int
}

// Agent describes one agent to place on the map.
type Agent struct {
	Name     string
	Start    int
	Stamina  int
	Strategy string
}

// Simulation holds the driver settings. Nil fields were not set.
type Simulation struct {
	Turns *int
	Seed  *int64
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Merge folds other into m. A map or simulation block may only be defined
// once across all merged files; cities, roads and agents accumulate.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	if other.Map != nil {
		if m.Map != nil {
			return errors.New("map is defined more than once")
		}
		m.Map = other.Map
	}
	if other.Simulation != nil {
		if m.Simulation != nil {
			return errors.New("simulation is defined more than once")
		}
		m.Simulation = other.Simulation
	}
	m.Cities = append(m.Cities, other.Cities...)
	m.Roads = append(m.Roads, other.Roads...)
	m.Agents = append(m.Agents, other.Agents...)
	return nil
}

// Validate checks the references inside the model. Strategy names are
// checked by the caller that knows the set of strategies.
func (m *Model) Validate() error {
	if m.Map == nil {
		return errors.New("no map block found")
	}
	n := m.Map.NumCities
	if n <= 0 {
		return fmt.Errorf("map must have at least one city, got %d", n)
	}
	if n > MaxCities {
		return fmt.Errorf("map has %d cities, more than the maximum of %d", n, MaxCities)
	}

	inRange := func(city int) bool { return city >= 0 && city < n }

	for _, c := range m.Cities {
		if !inRange(c.ID) {
			return fmt.Errorf("city %d is outside the map (0-%d)", c.ID, n-1)
		}
	}
	for _, r := range m.Roads {
		if !inRange(r.From) || !inRange(r.To) {
			return fmt.Errorf("road %d-%d references a city outside the map (0-%d)", r.From, r.To, n-1)
		}
		if r.From == r.To {
			return fmt.Errorf("road %d-%d connects a city to itself", r.From, r.To)
		}
		if r.Length <= 0 {
			return fmt.Errorf("road %d-%d has non-positive length %d", r.From, r.To, r.Length)
		}
	}

	names := make(map[string]struct{}, len(m.Agents))
	for _, a := range m.Agents {
		if a.Name == "" {
			return errors.New("agent name must not be empty")
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("agent %q is defined more than once", a.Name)
		}
		names[a.Name] = struct{}{}

		if !inRange(a.Start) {
			return fmt.Errorf("agent %q: starting city (%d) is invalid", a.Name, a.Start)
		}
		if a.Stamina < 0 {
			return fmt.Errorf("agent %q: stamina must not be negative, got %d", a.Name, a.Stamina)
		}
	}

	if m.Simulation != nil && m.Simulation.Turns != nil && *m.Simulation.Turns < 0 {
		return fmt.Errorf("simulation turns must not be negative, got %d", *m.Simulation.Turns)
	}
	return nil
}
