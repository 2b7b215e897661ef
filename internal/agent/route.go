package agent

import "github.com/specialistvlad/citytrail/internal/citymap"

// frame is one level of the depth-first search stack.
type frame struct {
	city  int
	roads []citymap.Road
	next  int
}

// PlanRoute returns the depth-first walk from start, visiting unvisited
// neighbors in ascending id order. The walk includes the backtracking hops,
// so consecutive cities are always joined by a road and the walk ends back
// at start. An isolated start yields just [start].
func PlanRoute(g Graph, start int) []int {
	visited := make([]bool, g.NumCities())
	visited[start] = true
	route := []int{start}
	stack := []frame{{city: start, roads: g.RoadsFrom(start)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.roads) {
			to := top.roads[top.next].To
			top.next++
			if !visited[to] {
				visited[to] = true
				route = append(route, to)
				stack = append(stack, frame{city: to, roads: g.RoadsFrom(to)})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			route = backtrack(route, stack[len(stack)-1].city)
		}
	}
	return route
}

// backtrack records the return hop to parent unless the route already ends
// there.
func backtrack(route []int, parent int) []int {
	if route[len(route)-1] == parent {
		return route
	}
	return append(route, parent)
}
