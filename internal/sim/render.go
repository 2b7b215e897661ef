package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// NameFunc resolves a city id to its display name.
type NameFunc func(city int) string

// WriteText writes the trace as an aligned table.
func WriteText(w io.Writer, t *Trace, name NameFunc) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TURN\tAGENT\tFROM\tTO\tCOST\tSTAMINA")
	for _, s := range t.Steps {
		to := fmt.Sprintf("[%d] %s", s.To, name(s.To))
		if s.Recharged() {
			to = "(recharge)"
		}
		fmt.Fprintf(tw, "%d\t%s\t[%d] %s\t%s\t%d\t%d\n", s.Turn, s.Agent, s.From, name(s.From), to, s.Cost, s.Stamina)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, a := range t.Final {
		if _, err := fmt.Fprintf(w, "%s finished at [%d] %s with stamina %d\n", a.Name, a.Location, name(a.Location), a.Stamina); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the trace as indented JSON.
func WriteJSON(w io.Writer, t *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
