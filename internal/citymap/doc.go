// Package citymap provides the city graph store shared by every agent.
//
// # Model
//
// A Map holds a fixed number of cities, identified by ids in [0, NumCities),
// each with an optional display name. Cities are joined by undirected roads
// carrying a positive integer length. A length of zero is never stored; it
// is what RoadLength reports (together with false) when no road exists.
//
// # Ordering
//
// RoadsFrom always returns roads sorted ascending by destination id. The
// agent strategies depend on this order for their tie-breaks and for the
// depth-first route, so it is part of the contract, not an implementation
// detail.
//
// # Lifecycle
//
//  1. **Setup:** the owner creates the map and inserts names and roads.
//  2. **Simulation:** agents query it read-only.
//
// # Thread-Safety
//
// All methods are safe for concurrent use. Writes are expected only during
// setup; readers never block each other.
package citymap
