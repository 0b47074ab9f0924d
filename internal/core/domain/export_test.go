package domain

// LinkForTest adds a raw child link so tests can build malformed graphs.
func LinkForTest(g *Graph, parent, child NodeID) {
	g.link(parent, child, nil)
}
