// Package domain contains the core value types of the block-memoizing
// reachability analysis: control-flow automata, blocks, abstract states and
// the exploration graph.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// NodeID is a handle to a node inside one Graph.
type NodeID int

// NoNode is the NodeID of no node.
const NoNode NodeID = -1

// NodeRef identifies a node across graphs.
type NodeRef struct {
	Graph *Graph
	ID    NodeID
}

// State returns the state held by the referenced node.
func (r NodeRef) State() State {
	return r.Graph.State(r.ID)
}

// Child is a child link labelled with the edge that produced it.
// Children produced by a block summary carry a nil Edge.
type Child struct {
	ID   NodeID
	Edge *Edge
}

type node struct {
	state     State
	precision Precision
	parents   []NodeID
	children  []Child
	coveredBy NodeID
	covering  []NodeID
	target    bool
	removed   bool
	queued    bool
}

// Graph is an exploration graph of abstract states stored in a flat arena.
// Nodes are never moved; removal only marks them dead and severs their links.
type Graph struct {
	nodes      []node
	root       NodeID
	waitlist   []NodeID
	frontier   NodeID
	live       int
	byLocation map[Location][]NodeID
}

// NewGraph creates a graph seeded with a single root node, which is also the
// only waiting node.
func NewGraph(root State, prec Precision) *Graph {
	g := &Graph{
		root:       0,
		frontier:   NoNode,
		byLocation: make(map[Location][]NodeID),
	}
	g.add(root, prec)
	g.Push(g.root)
	return g
}

func (g *Graph) add(s State, p Precision) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{state: s, precision: p, coveredBy: NoNode})
	g.live++
	g.byLocation[s.Location()] = append(g.byLocation[s.Location()], id)
	return id
}

// Root returns the seed node.
func (g *Graph) Root() NodeID {
	return g.root
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return g.live
}

// Contains reports whether id is a live node of g.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && !g.nodes[id].removed
}

// Check returns ErrUnknownNode unless id is a live node of g.
func (g *Graph) Check(id NodeID) error {
	if !g.Contains(id) {
		return Violation(ErrUnknownNode, "node handles refer to live nodes", "node", int(id))
	}
	return nil
}

// State returns the state of id.
func (g *Graph) State(id NodeID) State {
	return g.nodes[id].state
}

// Precision returns the precision of id.
func (g *Graph) Precision(id NodeID) Precision {
	return g.nodes[id].precision
}

// Parents returns the parents of id. The slice must not be modified.
func (g *Graph) Parents(id NodeID) []NodeID {
	return g.nodes[id].parents
}

// Children returns the child links of id. The slice must not be modified.
func (g *Graph) Children(id NodeID) []Child {
	return g.nodes[id].children
}

// IncomingEdge returns the edge on the link from the first parent of id.
func (g *Graph) IncomingEdge(id NodeID) *Edge {
	ps := g.nodes[id].parents
	if len(ps) == 0 {
		return nil
	}
	for _, c := range g.nodes[ps[0]].children {
		if c.ID == id {
			return c.Edge
		}
	}
	return nil
}

// AddChild creates a node for s and links it below parent.
func (g *Graph) AddChild(parent NodeID, s State, p Precision, e *Edge) NodeID {
	id := g.add(s, p)
	g.link(parent, id, e)
	return id
}

func (g *Graph) link(parent, child NodeID, e *Edge) {
	g.nodes[parent].children = append(g.nodes[parent].children, Child{ID: child, Edge: e})
	g.nodes[child].parents = append(g.nodes[child].parents, parent)
}

// Cover records that id is subsumed by by and needs no further exploration.
func (g *Graph) Cover(id, by NodeID) {
	g.nodes[id].coveredBy = by
	g.nodes[by].covering = append(g.nodes[by].covering, id)
}

// CoveredBy returns the node covering id, or NoNode.
func (g *Graph) CoveredBy(id NodeID) NodeID {
	return g.nodes[id].coveredBy
}

// IsCovered reports whether id is covered by another node.
func (g *Graph) IsCovered(id NodeID) bool {
	return g.nodes[id].coveredBy != NoNode
}

// MarkTarget flags id as a target node.
func (g *Graph) MarkTarget(id NodeID) {
	g.nodes[id].target = true
}

// IsTarget reports whether id was flagged as a target node.
func (g *Graph) IsTarget(id NodeID) bool {
	return g.nodes[id].target
}

// Push adds id to the waitlist unless it is already waiting.
func (g *Graph) Push(id NodeID) {
	if g.nodes[id].queued || g.nodes[id].removed {
		return
	}
	g.nodes[id].queued = true
	g.waitlist = append(g.waitlist, id)
}

// Pop removes and returns the most recently pushed live node.
func (g *Graph) Pop() (NodeID, bool) {
	for len(g.waitlist) > 0 {
		id := g.waitlist[len(g.waitlist)-1]
		g.waitlist = g.waitlist[:len(g.waitlist)-1]
		if g.nodes[id].removed {
			continue
		}
		g.nodes[id].queued = false
		return id, true
	}
	return NoNode, false
}

// Peek returns the node Pop would return, without removing it.
func (g *Graph) Peek() NodeID {
	for i := len(g.waitlist) - 1; i >= 0; i-- {
		if id := g.waitlist[i]; !g.nodes[id].removed {
			return id
		}
	}
	return NoNode
}

// Waiting returns the number of waitlist slots, including dead ones.
func (g *Graph) Waiting() int {
	return len(g.waitlist)
}

// SetFrontier records the node at which exploration gave up.
func (g *Graph) SetFrontier(id NodeID) {
	g.frontier = id
}

// Frontier returns the node at which exploration gave up, or NoNode.
func (g *Graph) Frontier() NodeID {
	return g.frontier
}

// ClearFrontier forgets a previous give-up so exploration can resume.
func (g *Graph) ClearFrontier() {
	g.frontier = NoNode
}

// Nodes yields every live node in creation order.
func (g *Graph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range g.nodes {
			if g.nodes[i].removed {
				continue
			}
			if !yield(NodeID(i)) {
				return
			}
		}
	}
}

// NodesAt yields every live node located at l.
func (g *Graph) NodesAt(l Location) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, id := range g.byLocation[l] {
			if g.nodes[id].removed {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// PathToRoot returns the nodes from the root to id following first parents.
func (g *Graph) PathToRoot(id NodeID) []NodeID {
	var path []NodeID
	seen := make(map[NodeID]bool)
	for cur := id; ; {
		if seen[cur] {
			break
		}
		seen[cur] = true
		path = append(path, cur)
		ps := g.nodes[cur].parents
		if len(ps) == 0 {
			break
		}
		cur = ps[0]
	}
	slices.Reverse(path)
	return path
}

// Replace installs a node for s in place of old, which must be a leaf with
// exactly one parent. The new node keeps the parent link and its edge.
func (g *Graph) Replace(old NodeID, s State, p Precision) (NodeID, error) {
	if err := g.Check(old); err != nil {
		return NoNode, err
	}
	n := g.nodes[old]
	if len(n.children) != 0 {
		return NoNode, Violation(ErrMalformedExpansion, "expanded node has no children",
			"node", int(old), "children", len(n.children))
	}
	if len(n.parents) != 1 {
		return NoNode, Violation(ErrMalformedExpansion, "expanded node has exactly one parent",
			"node", int(old), "parents", len(n.parents))
	}
	parent := n.parents[0]
	edge := g.IncomingEdge(old)
	target := n.target
	queued := n.queued

	g.Remove(old)
	id := g.AddChild(parent, s, p, edge)
	g.nodes[id].target = target
	if queued {
		g.Push(id)
	}
	return id, nil
}

// Remove detaches a single node from all its links.
func (g *Graph) Remove(id NodeID) {
	n := &g.nodes[id]
	if n.removed {
		return
	}
	for _, p := range n.parents {
		g.nodes[p].children = slices.DeleteFunc(g.nodes[p].children, func(c Child) bool { return c.ID == id })
	}
	for _, c := range n.children {
		g.nodes[c.ID].parents = slices.DeleteFunc(g.nodes[c.ID].parents, func(p NodeID) bool { return p == id })
	}
	if n.coveredBy != NoNode {
		by := &g.nodes[n.coveredBy]
		by.covering = slices.DeleteFunc(by.covering, func(c NodeID) bool { return c == id })
	}
	for _, c := range n.covering {
		g.nodes[c].coveredBy = NoNode
	}
	n.parents, n.children, n.covering = nil, nil, nil
	n.coveredBy = NoNode
	n.removed = true
	n.queued = false
	g.live--
	if g.frontier == id {
		g.frontier = NoNode
	}
}

// Subtree returns id and every node reachable from it along child links.
func (g *Graph) Subtree(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	out := []NodeID{id}
	for i := 0; i < len(out); i++ {
		for _, c := range g.nodes[out[i]].children {
			if !seen[c.ID] {
				seen[c.ID] = true
				out = append(out, c.ID)
			}
		}
	}
	return out
}

// RemoveSubtree removes id and its descendants. Nodes outside the subtree
// that were covered by a removed node, and the parents of id, go back onto
// the waitlist so exploration can redo the affected part.
//
// A requeued parent recomputes all of its successors, not only the edge that
// led to id. The copies of kept siblings this produces are left to coverage:
// each is subsumed by the sibling it duplicates and is never expanded.
func (g *Graph) RemoveSubtree(id NodeID) []NodeID {
	sub := g.Subtree(id)
	in := make(map[NodeID]bool, len(sub))
	for _, n := range sub {
		in[n] = true
	}

	var requeue []NodeID
	for _, n := range sub {
		for _, c := range g.nodes[n].covering {
			if !in[c] {
				requeue = append(requeue, c)
			}
		}
	}
	for _, p := range g.nodes[id].parents {
		if !in[p] {
			requeue = append(requeue, p)
		}
	}

	for _, n := range sub {
		g.Remove(n)
	}
	for _, n := range requeue {
		g.Push(n)
	}
	return sub
}

// Clone returns a deep copy of g with identical node ids.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes:      make([]node, len(g.nodes)),
		root:       g.root,
		waitlist:   slices.Clone(g.waitlist),
		frontier:   g.frontier,
		live:       g.live,
		byLocation: make(map[Location][]NodeID, len(g.byLocation)),
	}
	for i, n := range g.nodes {
		n.parents = slices.Clone(n.parents)
		n.children = slices.Clone(n.children)
		n.covering = slices.Clone(n.covering)
		c.nodes[i] = n
	}
	for l, ids := range g.byLocation {
		c.byLocation[l] = slices.Clone(ids)
	}
	return c
}

// Validate checks that child links form no cycle.
func (g *Graph) Validate() error {
	visited := make(map[NodeID]int) // 0: unvisited, 1: visiting, 2: visited
	var path []NodeID

	var visit func(u NodeID) error
	visit = func(u NodeID) error {
		visited[u] = 1
		path = append(path, u)

		for _, c := range g.nodes[u].children {
			if visited[c.ID] == 1 {
				return g.buildCycleError(path, c.ID)
			}
			if visited[c.ID] == 0 {
				if err := visit(c.ID); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for id := range g.Nodes() {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []NodeID, to NodeID) error {
	cyclePath := ""
	startIdx := slices.Index(path, to)
	for i := startIdx; i < len(path); i++ {
		cyclePath += g.nodes[path[i]].state.String() + " -> "
	}
	cyclePath += g.nodes[to].state.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}
