package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Edge is a control-flow edge labelled with the statement executed along it.
// Statements are opaque to the engine and interpreted by the abstract domain.
type Edge struct {
	From      Location
	To        Location
	Statement string
}

// String returns a compact description of the edge.
func (e *Edge) String() string {
	if e == nil {
		return "<summary>"
	}
	if e.Statement == "" {
		return e.From.String() + " -> " + e.To.String()
	}
	return e.From.String() + " -[" + e.Statement + "]-> " + e.To.String()
}

// CFA is the control-flow automaton of a program.
type CFA struct {
	leaving   map[Location][]*Edge
	entering  map[Location][]*Edge
	locations []Location
}

// NewCFA creates an empty CFA.
func NewCFA() *CFA {
	return &CFA{
		leaving:  make(map[Location][]*Edge),
		entering: make(map[Location][]*Edge),
	}
}

// AddEdge adds an edge to the CFA.
// It returns an error if an identical edge already exists.
func (c *CFA) AddEdge(e *Edge) error {
	for _, existing := range c.leaving[e.From] {
		if existing.To == e.To && existing.Statement == e.Statement {
			return zerr.With(ErrDuplicateEdge, "edge", e.String())
		}
	}
	c.track(e.From)
	c.track(e.To)
	c.leaving[e.From] = append(c.leaving[e.From], e)
	c.entering[e.To] = append(c.entering[e.To], e)
	return nil
}

func (c *CFA) track(l Location) {
	if !c.Has(l) {
		c.locations = append(c.locations, l)
	}
}

// Leaving returns the edges leaving l, in insertion order.
func (c *CFA) Leaving(l Location) []*Edge {
	return c.leaving[l]
}

// Entering returns the edges entering l, in insertion order.
func (c *CFA) Entering(l Location) []*Edge {
	return c.entering[l]
}

// Has reports whether l appears on any edge.
func (c *CFA) Has(l Location) bool {
	if _, ok := c.leaving[l]; ok {
		return true
	}
	_, ok := c.entering[l]
	return ok
}

// Locations yields every location in the order it was first seen.
func (c *CFA) Locations() iter.Seq[Location] {
	return slices.Values(c.locations)
}

// EdgeCount returns the number of edges.
func (c *CFA) EdgeCount() int {
	n := 0
	for _, es := range c.leaving {
		n += len(es)
	}
	return n
}
