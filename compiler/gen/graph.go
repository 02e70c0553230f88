package gen

import (
	"github.com/syssam/enumext"
	"github.com/syssam/enumext/compiler/load"
)

// Graph holds the resolved enums of one generation run, in declaration order.
type Graph struct {
	*Config
	// Nodes are the resolved enums.
	Nodes []*Enum
}

// NewGraph resolves the given declarations against a shared configuration.
// Resolution stops at the first invalid declaration.
func NewGraph(c *Config, schemas ...*load.Enum) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	g := &Graph{
		Config: c,
		Nodes:  make([]*Enum, 0, len(schemas)),
	}
	seen := make(map[string]bool, len(schemas))
	for _, s := range schemas {
		e, err := NewEnum(c, s)
		if err != nil {
			return nil, err
		}
		// Two enums with the same name would collide on output files.
		if seen[e.Name] {
			return nil, enumext.NewParseError("enums", e.Name, "duplicate enum name")
		}
		seen[e.Name] = true
		g.Nodes = append(g.Nodes, e)
	}
	return g, nil
}

// GraphFromManifest builds the configuration from the manifest and resolves
// its enum declarations.
func GraphFromManifest(m *load.Manifest) (*Graph, error) {
	c, err := ConfigFromManifest(m)
	if err != nil {
		return nil, err
	}
	return NewGraph(c, m.Enums...)
}

// Enum returns the resolved enum with the given name.
func (g *Graph) Enum(name string) (*Enum, bool) {
	for _, e := range g.Nodes {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
