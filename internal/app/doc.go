// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load the scenario, build
// the map and agents, drive the simulation, render the trace), decoupled
// from any specific entrypoint like a CLI.
package app
