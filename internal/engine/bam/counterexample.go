package bam

import (
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/zerr"
)

// Counterexample reconstructs a path from the program entry to target in
// which every expanded node is replaced by the path inside the cached block
// analysis it came from. Intermediate block states are shown in the caller
// context.
func (a *AnalysisContext) Counterexample(target domain.NodeRef) (*domain.DerivationTree, error) {
	if err := target.Graph.Check(target.ID); err != nil {
		return nil, err
	}
	if !target.Graph.IsTarget(target.ID) {
		return nil, zerr.With(domain.ErrNotATarget, "node", target.Graph.State(target.ID).String())
	}

	steps, err := a.derivation(target.Graph, target.ID, func(s domain.State) domain.State { return s })
	if err != nil {
		return nil, err
	}
	return domain.NewDerivationPath(steps), nil
}

func (a *AnalysisContext) derivation(g *domain.Graph, id domain.NodeID, lift func(domain.State) domain.State) ([]*domain.DerivationNode, error) {
	var steps []*domain.DerivationNode
	for _, n := range g.PathToRoot(id) {
		x, ok := a.records.expansion(domain.NodeRef{Graph: g, ID: n})
		if !ok {
			steps = append(steps, &domain.DerivationNode{State: lift(g.State(n)), Edge: g.IncomingEdge(n)})
			continue
		}

		b := x.entry.Key.Block
		if !a.cache.Contains(x.entry) || !x.entry.Reached.Contains(x.reduced) {
			return nil, domain.Violation(domain.ErrCacheEntryEvicted,
				"expanded nodes refer to cached block summaries",
				"block", b.ID, "node", g.State(n).String())
		}

		callState := g.State(x.call)
		inner, err := a.derivation(x.entry.Reached, x.reduced, func(s domain.State) domain.State {
			return lift(a.reducer.Expand(callState, b, s))
		})
		if err != nil {
			return nil, err
		}

		// The inner root is the call node itself.
		inner = inner[1:]
		if len(inner) == 0 {
			steps = append(steps, &domain.DerivationNode{State: lift(g.State(n))})
			continue
		}
		inner[len(inner)-1].State = lift(g.State(n))
		steps = append(steps, inner...)
	}
	return steps, nil
}
