// Package sim drives a group of agents over a shared city map.
//
// Each turn has two phases. First every agent computes its move from the
// same snapshot of the map and of all agents. Only then are the moves
// applied, in agent order. No agent sees another agent's move of the same
// turn, so the order agents are listed in does not bias their decisions.
package sim
