package citymap

import (
	"errors"
	"fmt"
	"sync"
)

// Unnamed is returned by Name for cities that were never given a name.
const Unnamed = "unnamed"

var (
	// ErrInvalidCity is returned when a city id is outside [0, NumCities).
	ErrInvalidCity = errors.New("city id out of range")
	// ErrInvalidLength is returned when a road length is not positive.
	ErrInvalidLength = errors.New("road length must be positive")
	// ErrSelfRoad is returned when a road would connect a city to itself.
	ErrSelfRoad = errors.New("road must connect two different cities")
)

// Road is one direction of an undirected road.
type Road struct {
	From   int
	To     int
	Length int
}

// Map is a bounds-checked adjacency-matrix store of cities and roads.
type Map struct {
	mu        sync.RWMutex
	numCities int
	numRoads  int
	names     []string
	lengths   []int // numCities*numCities, row-major; 0 means no road
}

// New creates a map with numCities cities, no names and no roads.
// It panics if numCities is negative.
func New(numCities int) *Map {
	if numCities < 0 {
		panic(fmt.Sprintf("citymap: invalid number of cities %d", numCities))
	}
	return &Map{
		numCities: numCities,
		names:     make([]string, numCities),
		lengths:   make([]int, numCities*numCities),
	}
}

// NumCities returns the number of cities in the map.
func (m *Map) NumCities() int {
	return m.numCities
}

// NumRoads returns the number of undirected roads; each road counts once.
func (m *Map) NumRoads() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.numRoads
}

// SetName sets the display name of a city, replacing any previous one.
func (m *Map) SetName(city int, name string) {
	m.mustBeCity(city)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[city] = name
}

// Name returns the display name of a city, or Unnamed.
func (m *Map) Name(city int) string {
	m.mustBeCity(city)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.names[city] == "" {
		return Unnamed
	}
	return m.names[city]
}

// InsertRoad adds a road of the given length between a and b. Inserting a
// road between two cities that are already connected does nothing; the
// existing length is kept.
func (m *Map) InsertRoad(a, b, length int) error {
	if !m.valid(a) || !m.valid(b) {
		return fmt.Errorf("road %d-%d: %w", a, b, ErrInvalidCity)
	}
	if a == b {
		return fmt.Errorf("road %d-%d: %w", a, b, ErrSelfRoad)
	}
	if length <= 0 {
		return fmt.Errorf("road %d-%d length %d: %w", a, b, length, ErrInvalidLength)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lengths[m.index(a, b)] != 0 {
		return nil
	}
	m.lengths[m.index(a, b)] = length
	m.lengths[m.index(b, a)] = length
	m.numRoads++
	return nil
}

// RoadLength returns the length of the road between a and b, and false if
// there is none. Ids out of range simply have no roads.
func (m *Map) RoadLength(a, b int) (int, bool) {
	if !m.valid(a) || !m.valid(b) {
		return 0, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	length := m.lengths[m.index(a, b)]
	return length, length > 0
}

// ContainsRoad reports whether a and b are connected by a road.
func (m *Map) ContainsRoad(a, b int) bool {
	_, ok := m.RoadLength(a, b)
	return ok
}

// RoadsFrom returns every road leaving city, sorted ascending by To. The
// returned slice belongs to the caller.
func (m *Map) RoadsFrom(city int) []Road {
	m.mustBeCity(city)

	m.mu.RLock()
	defer m.mu.RUnlock()

	// Scanning the row in column order yields destinations already sorted.
	row := m.lengths[city*m.numCities : (city+1)*m.numCities]
	roads := make([]Road, 0)
	for to, length := range row {
		if length > 0 {
			roads = append(roads, Road{From: city, To: to, Length: length})
		}
	}
	return roads
}

func (m *Map) valid(city int) bool {
	return city >= 0 && city < m.numCities
}

func (m *Map) mustBeCity(city int) {
	if !m.valid(city) {
		panic(fmt.Sprintf("citymap: city %d out of range [0, %d)", city, m.numCities))
	}
}

func (m *Map) index(from, to int) int {
	return from*m.numCities + to
}
