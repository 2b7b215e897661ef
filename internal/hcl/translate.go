package hcl

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/citytrail/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translate converts the decoded HCL blocks of one file into the agnostic model.
func translate(root *fileRoot) (*config.Model, error) {
	m := config.NewModel()

	switch len(root.Maps) {
	case 0:
	case 1:
		m.Map = &config.MapDefinition{NumCities: root.Maps[0].Cities}
	default:
		return nil, errors.New("map is defined more than once")
	}

	for _, c := range root.Cities {
		id, err := cityID(c.ID)
		if err != nil {
			return nil, err
		}
		m.Cities = append(m.Cities, &config.City{ID: id, Name: c.Name})
	}

	for _, r := range root.Roads {
		m.Roads = append(m.Roads, &config.Road{From: r.From, To: r.To, Length: r.Length})
	}

	for _, a := range root.Agents {
		m.Agents = append(m.Agents, &config.Agent{
			Name:     a.Name,
			Start:    a.Start,
			Stamina:  a.Stamina,
			Strategy: a.Strategy,
		})
	}

	switch len(root.Simulations) {
	case 0:
	case 1:
		s := root.Simulations[0]
		m.Simulation = &config.Simulation{Turns: s.Turns, Seed: s.Seed}
	default:
		return nil, errors.New("simulation is defined more than once")
	}

	return m, nil
}

// cityID converts a city block label such as "3" into its numeric id.
func cityID(label string) (int, error) {
	val, err := convert.Convert(cty.StringVal(label), cty.Number)
	if err != nil {
		return 0, fmt.Errorf("city label %q is not a number", label)
	}
	var id int
	if err := gocty.FromCtyValue(val, &id); err != nil {
		return 0, fmt.Errorf("city label %q is not a whole number: %w", label, err)
	}
	return id, nil
}
