package app

import (
	"math/rand/v2"

	"github.com/specialistvlad/citytrail/internal/agent"
	"github.com/specialistvlad/citytrail/internal/citymap"
	"github.com/specialistvlad/citytrail/internal/config"
)

// buildMap creates the city map described by a validated model.
func buildMap(model *config.Model) (*citymap.Map, error) {
	m := citymap.New(model.Map.NumCities)
	for _, c := range model.Cities {
		m.SetName(c.ID, c.Name)
	}
	for _, r := range model.Roads {
		if err := m.InsertRoad(r.From, r.To, r.Length); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// buildAgents creates the agents of a validated model. Each agent draws from
// its own random stream derived from seed and its position in the model.
func buildAgents(model *config.Model, m *citymap.Map, seed int64) []*agent.Agent {
	agents := make([]*agent.Agent, 0, len(model.Agents))
	for i, def := range model.Agents {
		kind, err := agent.ParseKind(def.Strategy)
		if err != nil {
			// loadModel has already checked every strategy name.
			panic(err)
		}
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(i)))
		agents = append(agents, agent.New(def.Start, def.Stamina, agent.NewStrategy(kind, rng), m, def.Name))
	}
	return agents
}
