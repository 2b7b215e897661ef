package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/citytrail/internal/agent"
	"github.com/specialistvlad/citytrail/internal/config"
	"github.com/specialistvlad/citytrail/internal/ctxlog"
	"github.com/specialistvlad/citytrail/internal/hcl"
	"github.com/specialistvlad/citytrail/internal/yamlconf"
)

// defaultLoaders is the list of scenario formats compiled into the binary.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yamlconf.NewLoader()}
}

// loadModel runs every loader over the paths, merges what they find and
// validates the result.
func loadModel(ctx context.Context, loaders []config.Loader, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := config.NewModel()
	for _, l := range loaders {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(m); err != nil {
			return nil, err
		}
		logger.Debug("Loader finished.", "extensions", l.Extensions(), "agents", len(m.Agents), "roads", len(m.Roads))
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	for _, a := range model.Agents {
		if _, err := agent.ParseKind(a.Strategy); err != nil {
			return nil, fmt.Errorf("invalid scenario: agent %q: %w", a.Name, err)
		}
	}
	return model, nil
}
