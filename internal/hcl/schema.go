package hcl

// fileRoot decodes every top-level block a scenario file may contain.
// Unknown blocks and attributes are rejected by the decoder.
type fileRoot struct {
	Maps        []*mapBlock        `hcl:"map,block"`
	Cities      []*cityBlock       `hcl:"city,block"`
	Roads       []*roadBlock       `hcl:"road,block"`
	Agents      []*agentBlock      `hcl:"agent,block"`
	Simulations []*simulationBlock `hcl:"simulation,block"`
}

// mapBlock sizes the map: `map { cities = 4 }`.
type mapBlock struct {
	Cities int `hcl:"cities"`
}

// cityBlock names a city: `city "0" { name = "Sydney" }`.
type cityBlock struct {
	ID   string `hcl:"id,label"`
	Name string `hcl:"name"`
}

// roadBlock is one undirected road.
type roadBlock struct {
	From   int `hcl:"from"`
	To     int `hcl:"to"`
	Length int `hcl:"length"`
}

// agentBlock places an agent: `agent "D1" { ... }`.
type agentBlock struct {
	Name     string `hcl:"name,label"`
	Start    int    `hcl:"start"`
	Stamina  int    `hcl:"stamina"`
	Strategy string `hcl:"strategy"`
}

// simulationBlock holds the driver settings.
type simulationBlock struct {
	Turns *int   `hcl:"turns,optional"`
	Seed  *int64 `hcl:"seed,optional"`
}
