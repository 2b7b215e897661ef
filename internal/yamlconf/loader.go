// Package yamlconf provides the YAML implementation of config.Loader.
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/citytrail/internal/config"
	"github.com/specialistvlad/citytrail/internal/ctxlog"
	"github.com/specialistvlad/citytrail/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a YAML scenario file.
type document struct {
	Map *struct {
		Cities int `yaml:"cities"`
	} `yaml:"map"`
	Cities []struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"cities"`
	Roads []struct {
		From   int `yaml:"from"`
		To     int `yaml:"to"`
		Length int `yaml:"length"`
	} `yaml:"roads"`
	Agents []struct {
		Name     string `yaml:"name"`
		Start    int    `yaml:"start"`
		Stamina  int    `yaml:"stamina"`
		Strategy string `yaml:"strategy"`
	} `yaml:"agents"`
	Simulation *struct {
		Turns *int   `yaml:"turns"`
		Seed  *int64 `yaml:"seed"`
	} `yaml:"simulation"`
}

// Loader reads scenario files written in YAML.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load parses every YAML file under paths and merges them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		fileModel, err := l.LoadSource(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		if err := model.Merge(fileModel); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	return model, nil
}

// LoadSource decodes in-memory YAML. A stream of several documents
// separated by "---" is merged as if each were its own file. Unknown keys are
// rejected.
func (l *Loader) LoadSource(data []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	model := config.NewModel()
	for i := 1; ; i++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return model, nil
			}
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if err := model.Merge(doc.model()); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
}

func (doc *document) model() *config.Model {
	m := config.NewModel()
	if doc.Map != nil {
		m.Map = &config.MapDefinition{NumCities: doc.Map.Cities}
	}
	for _, c := range doc.Cities {
		m.Cities = append(m.Cities, &config.City{ID: c.ID, Name: c.Name})
	}
	for _, r := range doc.Roads {
		m.Roads = append(m.Roads, &config.Road{From: r.From, To: r.To, Length: r.Length})
	}
	for _, a := range doc.Agents {
		m.Agents = append(m.Agents, &config.Agent{
			Name:     a.Name,
			Start:    a.Start,
			Stamina:  a.Stamina,
			Strategy: a.Strategy,
		})
	}
	if doc.Simulation != nil {
		m.Simulation = &config.Simulation{Turns: doc.Simulation.Turns, Seed: doc.Simulation.Seed}
	}
	return m
}
