package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/citytrail/internal/ctxlog"
	"github.com/specialistvlad/citytrail/internal/sim"
)

// Run drives the simulation and writes the trace to the app's output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ShowMap {
		a.cities.Show(a.outW)
		fmt.Fprintln(a.outW)
	}

	if len(a.agents) == 0 {
		a.logger.Warn("No agents found in scenario, simulation not required.")
		return nil
	}

	trace, err := sim.New(a.cities, a.agents, a.turns).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	switch a.config.Output {
	case "json":
		err = sim.WriteJSON(a.outW, trace)
	default:
		err = sim.WriteText(a.outW, trace, a.cities.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
