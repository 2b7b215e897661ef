package citymap

import (
	"fmt"
	"io"
	"strings"
)

// Show writes a human-readable listing of every city and its roads.
func (m *Map) Show(w io.Writer) {
	fmt.Fprintf(w, "Number of cities: %d\n", m.NumCities())
	fmt.Fprintf(w, "Number of roads: %d\n", m.NumRoads())

	for city := 0; city < m.NumCities(); city++ {
		var b strings.Builder
		fmt.Fprintf(&b, "[%d] %s has roads to:", city, m.Name(city))
		for i, road := range m.RoadsFrom(city) {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, " [%d] %s (%d)", road.To, m.Name(road.To), road.Length)
		}
		fmt.Fprintln(w, b.String())
	}
}
