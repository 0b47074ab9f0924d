// Package fixpoint implements a waitlist-driven fixpoint runner over an
// exploration graph.
package fixpoint

import (
	"context"

	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
)

// Runner explores a graph depth first until its waitlist is empty, a target
// is reached, or the iteration budget runs out.
type Runner struct {
	domain        ports.AbstractDomain
	maxIterations int
}

// New creates a Runner. maxIterations bounds every call to Run; 0 means unbounded.
func New(d ports.AbstractDomain, maxIterations int) *Runner {
	return &Runner{
		domain:        d,
		maxIterations: maxIterations,
	}
}

// Run explores g in place.
//
// A context error is returned wrapped so that it matches
// domain.ErrAnalysisCancelled; nodes not yet explored stay on the waitlist.
func (r *Runner) Run(ctx context.Context, g *domain.Graph, t ports.TransferRelation) (domain.RunOutcome, error) {
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return domain.RunOutcome{}, domain.Cancelled(err)
		}
		if r.maxIterations > 0 && i >= r.maxIterations {
			if next := g.Peek(); next != domain.NoNode {
				return domain.Aborted(next), nil
			}
		}

		n, ok := g.Pop()
		if !ok {
			return domain.Converged(), nil
		}
		if g.IsCovered(n) {
			continue
		}

		children, err := t.Successors(ctx, g, n)
		if err != nil {
			return domain.RunOutcome{}, err
		}
		if frontier := g.Frontier(); frontier != domain.NoNode {
			return domain.Aborted(frontier), nil
		}

		for _, c := range children {
			if g.IsTarget(c) || r.domain.IsTarget(g.State(c)) {
				g.MarkTarget(c)
				return domain.TargetReached(c), nil
			}
			if by := r.coveringNode(g, c); by != domain.NoNode {
				g.Cover(c, by)
				continue
			}
			g.Push(c)
		}
	}
}

// coveringNode returns an uncovered node at the location of c whose state
// subsumes the state of c, or NoNode.
func (r *Runner) coveringNode(g *domain.Graph, c domain.NodeID) domain.NodeID {
	s := g.State(c)
	for other := range g.NodesAt(s.Location()) {
		if other == c || g.IsCovered(other) || g.IsTarget(other) {
			continue
		}
		if r.domain.Covers(s, g.State(other)) {
			return other
		}
	}
	return domain.NoNode
}
