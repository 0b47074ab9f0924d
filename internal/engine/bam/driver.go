package bam

import (
	"context"

	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
)

// step is how the driver treats a node, decided once per node.
type step int

const (
	// stepForward computes plain successors inside the current block.
	stepForward step = iota
	// stepContinue is the entry node of a block analysis that already started.
	stepContinue
	// stepEnter starts a nested block analysis.
	stepEnter
)

// driver is the transfer relation of one block analysis. A nil block is the
// program outside every block.
type driver struct {
	actx  *AnalysisContext
	block *domain.Block
}

var _ ports.TransferRelation = (*driver)(nil)

func (d *driver) classify(g *domain.Graph, n domain.NodeID) (step, *domain.Block) {
	l := g.State(n).Location()
	b := d.actx.program.Blocks.BlockForCallLocation(l)
	switch {
	case b == nil:
		return stepForward, nil
	case len(g.Parents(n)) == 0:
		return stepContinue, b
	default:
		return stepEnter, b
	}
}

// Successors attaches the children of n to g.
func (d *driver) Successors(ctx context.Context, g *domain.Graph, n domain.NodeID) ([]domain.NodeID, error) {
	kind, b := d.classify(g, n)
	if kind == stepEnter {
		return d.enter(ctx, g, n, b)
	}
	return d.forward(ctx, g, n)
}

// forwardEdges returns the edges leaving l that an analysis of block may
// follow. Edges leaving block are dropped unless they enter another block
// from a location that is not an exit of block. Edges into the interior of a
// block nested in block are dropped too.
func (a *AnalysisContext) forwardEdges(block *domain.Block, l domain.Location) []*domain.Edge {
	blocks := a.program.Blocks
	var out []*domain.Edge
	for _, e := range a.program.CFA.Leaving(l) {
		if block != nil && !block.Contains(e.To) && (block.IsReturnLocation(l) || !blocks.IsCallLocation(e.To)) {
			continue
		}
		if blocks.InNestedInterior(block, e.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (d *driver) forward(ctx context.Context, g *domain.Graph, n domain.NodeID) ([]domain.NodeID, error) {
	s, p := g.State(n), g.Precision(n)
	var children []domain.NodeID
	for _, e := range d.actx.forwardEdges(d.block, s.Location()) {
		succ, err := d.actx.domain.Successors(ctx, s, p, e)
		if err != nil {
			for _, c := range children {
				g.Remove(c)
			}
			g.Push(n)
			return nil, err
		}
		for _, next := range succ {
			children = append(children, g.AddChild(n, next, p, e))
		}
	}
	return children, nil
}

func (d *driver) enter(ctx context.Context, g *domain.Graph, n domain.NodeID, b *domain.Block) ([]domain.NodeID, error) {
	a := d.actx
	if err := ctx.Err(); err != nil {
		g.Push(n)
		return nil, domain.Cancelled(err)
	}
	if limit := a.opts.MaxRecursionDepth; limit > 0 && len(a.stack) >= limit {
		return nil, domain.Violation(domain.ErrRecursionDepthExceeded,
			"nested block analyses stay within the recursion depth limit",
			"block", b.ID, "depth", len(a.stack))
	}

	s, p := g.State(n), g.Precision(n)
	rs, rp := a.reducer.Reduce(s, p, b, s.Location())
	key := CacheKey{State: rs, Precision: rp, Block: b}

	if a.guarded(key) {
		d.skip(ctx, g, n, key)
		return nil, nil
	}

	a.push(key)
	defer a.pop()
	return d.analyse(ctx, g, n, key)
}

// skip records a call that is not analysed because it repeats a stacked analysis.
func (d *driver) skip(ctx context.Context, g *domain.Graph, n domain.NodeID, key CacheKey) {
	a := d.actx
	a.records.of(g).guarded.Add(n)
	a.stats.GuardTrips++
	a.logger.Debug("recursion guard tripped", "block", key.Block.ID, "depth", len(a.stack), "state", key.State.String())
	if v := ports.VertexFromContext(ctx); v != nil {
		v.Log(domain.LogLevelDebug, "skipped recursive entry of block "+key.Block.ID)
	}
}

// analyse looks key up in the cache, runs the nested analysis when needed and
// expands the result below the call node n.
func (d *driver) analyse(ctx context.Context, g *domain.Graph, n domain.NodeID, key CacheKey) ([]domain.NodeID, error) {
	a := d.actx
	b := key.Block
	entry := a.cache.Lookup(key)

	switch {
	case entry != nil && entry.complete:
		a.stats.CacheHits++
		a.logger.Debug("cache hit", "block", b.ID, "exits", len(entry.exits))
		_, v := a.telemetry.Record(ctx, "block "+b.ID, ports.WithDigest(Digest(key)))
		v.Cached()
		return d.expandExits(g, n, entry)
	case entry != nil && entry.Target != domain.NoNode && entry.Reached.Contains(entry.Target):
		a.stats.CacheHits++
		a.logger.Debug("cache hit on target", "block", b.ID)
		_, v := a.telemetry.Record(ctx, "block "+b.ID, ports.WithDigest(Digest(key)))
		v.Cached()
		return d.expandTarget(g, n, entry)
	case entry != nil && entry.running:
		d.skip(ctx, g, n, key)
		return nil, nil
	case entry != nil:
		a.stats.PartialResumes++
		a.logger.Debug("resuming partial block analysis", "block", b.ID, "nodes", entry.Reached.Len())
		entry.Reached.ClearFrontier()
	default:
		a.stats.CacheMisses++
		a.logger.Debug("cache miss", "block", b.ID, "state", key.State.String())
		entry = a.cache.Seed(key)
		a.records.track(entry.Reached, b)
	}

	vctx, v := a.telemetry.Record(ctx, "block "+b.ID, ports.WithDigest(Digest(key)))
	outcome, err := d.run(vctx, entry)
	if err != nil {
		v.Complete(err)
		if !domain.IsFatal(err) {
			g.Push(n)
		}
		return nil, err
	}
	v.Complete(nil)

	switch outcome.Kind {
	case domain.OutcomeAborted:
		a.aborted = true
		a.logger.Warn("block analysis did not converge", "block", b.ID, "frontier", int(outcome.Frontier))
		g.Push(n)
		g.SetFrontier(n)
		return nil, nil
	case domain.OutcomeTarget:
		entry.Target = outcome.Target
		a.logger.Debug("target reached in block", "block", b.ID)
		return d.expandTarget(g, n, entry)
	}

	entry.exits = exitNodes(entry.Reached, b)
	entry.complete = true
	if a.opts.ProduceProofs {
		entry.Proof = a.snapshotProof(entry)
	}
	a.logger.Debug("block analysis converged", "block", b.ID, "exits", len(entry.exits), "nodes", entry.Reached.Len())
	return d.expandExits(g, n, entry)
}

func (d *driver) run(ctx context.Context, entry *CacheEntry) (domain.RunOutcome, error) {
	a := d.actx
	entry.running = true
	defer func() { entry.running = false }()

	a.stats.RunnerInvocations++
	return a.runner.Run(ctx, entry.Reached, &driver{actx: a, block: entry.Key.Block})
}

// exitNodes returns the final visits of the return locations of b: nodes
// there without children that are neither covered nor targets.
func exitNodes(g *domain.Graph, b *domain.Block) []domain.NodeID {
	var out []domain.NodeID
	for id := range g.Nodes() {
		if !b.IsReturnLocation(g.State(id).Location()) {
			continue
		}
		if len(g.Children(id)) == 0 && !g.IsCovered(id) && !g.IsTarget(id) {
			out = append(out, id)
		}
	}
	return out
}

func (d *driver) expandExits(g *domain.Graph, n domain.NodeID, entry *CacheEntry) ([]domain.NodeID, error) {
	a := d.actx
	b := entry.Key.Block
	call := domain.NodeRef{Graph: g, ID: n}
	a.records.enter(call, entry)

	callState, callPrec := g.State(n), g.Precision(n)
	children := make([]domain.NodeID, 0, len(entry.exits))
	for _, x := range entry.exits {
		s := a.reducer.Expand(callState, b, entry.Reached.State(x))
		p := a.reducer.ExpandPrecision(callPrec, b, entry.Reached.Precision(x))
		id := g.AddChild(n, s, p, nil)
		a.stats.Expansions++

		if b.NeedsRebuild() {
			var err error
			if id, err = d.rebuild(g, n, id); err != nil {
				return nil, err
			}
		}
		a.records.of(g).expansions[id] = expansion{entry: entry, reduced: x, call: n}
		children = append(children, id)
	}
	return children, nil
}

func (d *driver) expandTarget(g *domain.Graph, n domain.NodeID, entry *CacheEntry) ([]domain.NodeID, error) {
	a := d.actx
	b := entry.Key.Block
	a.records.enter(domain.NodeRef{Graph: g, ID: n}, entry)

	s := a.reducer.Expand(g.State(n), b, entry.Reached.State(entry.Target))
	p := a.reducer.ExpandPrecision(g.Precision(n), b, entry.Reached.Precision(entry.Target))
	id := g.AddChild(n, s, p, nil)
	g.MarkTarget(id)
	a.stats.Expansions++
	a.records.of(g).expansions[id] = expansion{entry: entry, reduced: entry.Target, call: n}
	return []domain.NodeID{id}, nil
}

// rebuild replaces the expanded node id below call node n with the state
// rebuilt against the call site.
func (d *driver) rebuild(g *domain.Graph, n, id domain.NodeID) (domain.NodeID, error) {
	a := d.actx
	parents := g.Parents(n)
	if len(parents) != 1 {
		return domain.NoNode, domain.Violation(domain.ErrMalformedExpansion,
			"call node has exactly one call-site parent",
			"node", int(n), "parents", len(parents))
	}
	rebuilt := a.reducer.Rebuild(g.State(parents[0]), g.State(n), g.State(id))
	a.stats.Rebuilds++
	return g.Replace(id, rebuilt, g.Precision(id))
}
