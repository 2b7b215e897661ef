// Package config defines the format-agnostic scenario model: the city map,
// the agents that travel it and the simulation settings, along with the
// Loader interface implemented by the HCL and YAML packages.
//
// The Model is the single source of truth for the app when it builds the
// citymap.Map and the agents. It is validated once, after every file has
// been merged, so loaders only need to report syntax and shape errors.
package config
