package bam

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/bam/internal/core/domain"
)

// Proof is the retained derivation of one converged block analysis.
type Proof struct {
	Block *domain.Block
	Graph *domain.Graph
	Exits []domain.NodeID
	// Nested holds the proofs of the blocks entered from call nodes of Graph.
	// A nil proof means the nested block had none recorded.
	Nested map[domain.NodeID]*Proof
	// Skipped holds the call nodes the recursion guard did not analyse.
	Skipped mapset.Set[domain.NodeID]
}

type proofKey struct {
	root  *domain.Graph
	block string
}

func (a *AnalysisContext) snapshotProof(e *CacheEntry) *Proof {
	p := &Proof{
		Block:   e.Key.Block,
		Graph:   e.Reached.Clone(),
		Exits:   e.Exits(),
		Nested:  make(map[domain.NodeID]*Proof),
		Skipped: mapset.NewThreadUnsafeSet[domain.NodeID](),
	}
	if gr := a.records.of(e.Reached); gr != nil {
		for id, nested := range gr.entered {
			p.Nested[id] = nested.Proof
		}
		p.Skipped = gr.guarded.Clone()
	}
	return p
}

// CheckClaimedSuccessors reports whether claimed justifies the successors of
// ref, without exploring anything again. A non-nil e restricts the check of a
// plain node to that edge. Call nodes are checked against the retained proof
// of the block they entered; a call node without one is a fatal error.
func (a *AnalysisContext) CheckClaimedSuccessors(ctx context.Context, ref domain.NodeRef, e *domain.Edge, claimed []domain.State) (bool, error) {
	g, n := ref.Graph, ref.ID
	if err := g.Check(n); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, domain.Cancelled(err)
	}
	gr := a.records.of(g)
	if gr == nil {
		return false, domain.Violation(domain.ErrUnknownNode, "checked nodes belong to an analysed graph", "node", int(n))
	}

	s, p := g.State(n), g.Precision(n)
	b := a.program.Blocks.BlockForCallLocation(s.Location())
	if b == nil || len(g.Parents(n)) == 0 {
		return a.checkForward(ctx, gr.block, s, p, e, claimed)
	}
	if gr.guarded.Contains(n) {
		return true, nil
	}

	entry, ok := gr.entered[n]
	if !ok || entry.Proof == nil {
		return false, domain.Violation(domain.ErrMissingProof,
			"analysed block entries have a recorded proof",
			"block", b.ID, "node", s.String())
	}
	return a.checkCall(ctx, s, g.State(g.Parents(n)[0]), b, entry.Proof, claimed)
}

// CheckProof checks every explored node of the program graph.
func (a *AnalysisContext) CheckProof(ctx context.Context) (bool, error) {
	g := a.graph
	if g == nil {
		return false, nil
	}
	for id := range g.Nodes() {
		if g.IsTarget(id) {
			return false, nil
		}
		if by := g.CoveredBy(id); by != domain.NoNode {
			if !a.domain.Covers(g.State(id), g.State(by)) {
				return false, nil
			}
			continue
		}
		ok, err := a.CheckClaimedSuccessors(ctx, domain.NodeRef{Graph: g, ID: id}, nil, childStates(g, id))
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func childStates(g *domain.Graph, id domain.NodeID) []domain.State {
	children := g.Children(id)
	out := make([]domain.State, len(children))
	for i, c := range children {
		out[i] = g.State(c.ID)
	}
	return out
}

func (a *AnalysisContext) checkForward(ctx context.Context, block *domain.Block, s domain.State, p domain.Precision,
	only *domain.Edge, claimed []domain.State,
) (bool, error) {
	for _, e := range a.forwardEdges(block, s.Location()) {
		if only != nil && e != only {
			continue
		}
		var along []domain.State
		for _, c := range claimed {
			if c.Location() == e.To {
				along = append(along, c)
			}
		}
		ok, err := a.checker.CheckSuccessors(ctx, s, p, e, along)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// checkCall checks that the expanded exits of proof and claimed cover each other.
func (a *AnalysisContext) checkCall(ctx context.Context, call, root domain.State, b *domain.Block, proof *Proof,
	claimed []domain.State,
) (bool, error) {
	if proof == nil {
		return false, domain.Violation(domain.ErrMissingProof,
			"analysed block entries have a recorded proof",
			"block", b.ID, "node", call.String())
	}
	ok, err := a.checkBlockProof(ctx, proof)
	if err != nil || !ok {
		return false, err
	}

	expanded := make([]domain.State, 0, len(proof.Exits))
	for _, x := range proof.Exits {
		s := a.reducer.Expand(call, b, proof.Graph.State(x))
		if b.NeedsRebuild() && root != nil {
			s = a.reducer.Rebuild(root, call, s)
		}
		expanded = append(expanded, s)
	}
	return a.coveredBy(expanded, claimed) && a.coveredBy(claimed, expanded), nil
}

func (a *AnalysisContext) coveredBy(xs, ys []domain.State) bool {
	for _, x := range xs {
		covered := false
		for _, y := range ys {
			if a.domain.Covers(x, y) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func (a *AnalysisContext) checkBlockProof(ctx context.Context, proof *Proof) (bool, error) {
	key := proofKey{root: proof.Graph, block: proof.Block.ID}
	if ok, hit := a.proofs.Get(key); hit {
		return ok, nil
	}
	ok, err := a.verifyProof(ctx, proof)
	if err != nil {
		return false, err
	}
	a.proofs.Add(key, ok)
	return ok, nil
}

// verifyProof checks that proof is a tree of justified steps: coverings
// subsume, every node is reached exactly once along child links and the
// children of every explored node are justified.
func (a *AnalysisContext) verifyProof(ctx context.Context, proof *Proof) (bool, error) {
	g := proof.Graph
	if err := g.Validate(); err != nil {
		return false, nil //nolint:nilerr // a cyclic proof is rejected, not an analysis failure
	}

	seen := map[domain.NodeID]bool{g.Root(): true}
	work := []domain.NodeID{g.Root()}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		for _, c := range g.Children(id) {
			if seen[c.ID] {
				return false, nil
			}
			seen[c.ID] = true
			work = append(work, c.ID)
		}
	}
	if len(seen) != g.Len() {
		return false, nil
	}

	for id := range g.Nodes() {
		if err := ctx.Err(); err != nil {
			return false, domain.Cancelled(err)
		}
		if g.IsTarget(id) {
			return false, nil
		}
		if by := g.CoveredBy(id); by != domain.NoNode {
			if !g.Contains(by) || !a.domain.Covers(g.State(id), g.State(by)) {
				return false, nil
			}
			continue
		}

		s, children := g.State(id), childStates(g, id)
		var (
			ok  bool
			err error
		)
		switch nested, isCall := proof.Nested[id]; {
		case isCall:
			var root domain.State
			if ps := g.Parents(id); len(ps) == 1 {
				root = g.State(ps[0])
			}
			b := a.program.Blocks.BlockForCallLocation(s.Location())
			ok, err = a.checkCall(ctx, s, root, b, nested, children)
		case proof.Skipped.Contains(id):
			ok = len(children) == 0
		default:
			ok, err = a.checkForward(ctx, proof.Block, s, g.Precision(id), nil, children)
		}
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
