// Package agent implements the decision engine for a single travelling agent.
//
// An Agent owns its travel state (location, stamina, visit counts) and a
// Strategy that picks its next move over a shared, read-only Graph. Moves
// are made in two phases:
//
//	move := a.ComputeNextMove(g) // reads state, changes nothing
//	a.ApplyMove(move)            // commits the move
//
// The split lets an orchestrator compute every agent's move from the same
// snapshot before any of them is applied.
//
// Applying a move whose destination is the current city recharges the agent
// to full stamina. Every applied move increments the visit count of its
// destination.
//
// # Strategies
//
// Strategy is a closed set: Stationary, Random, CheapestLeastVisited and
// DepthFirst. The interface has an unexported method, so no other package
// can add a variant that the engine would not know how to run.
//
// Strategies hold no per-agent state: the depth-first route and its cursor
// live on the Agent, so agents may share a Strategy value. Random shares its
// random source between the agents it drives.
package agent
