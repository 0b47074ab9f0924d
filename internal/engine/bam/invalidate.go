package bam

import "go.trai.ch/bam/internal/core/domain"

// Invalidate discards ref and its descendants. Every block summary expanded
// somewhere in the discarded subtree is evicted as a whole, together with
// nested summaries that no remaining analysis uses. Parents of ref and nodes
// covered by discarded nodes are queued again.
func (a *AnalysisContext) Invalidate(ref domain.NodeRef) error {
	g := ref.Graph
	if err := g.Check(ref.ID); err != nil {
		return err
	}

	name := g.State(ref.ID).String()
	for _, id := range g.Subtree(ref.ID) {
		node := domain.NodeRef{Graph: g, ID: id}
		if x, ok := a.records.expansion(node); ok {
			a.evict(x.entry)
		}
		a.records.release(node)
	}
	removed := g.RemoveSubtree(ref.ID)
	a.logger.Debug("invalidated subtree", "node", name, "removed", len(removed))
	return nil
}

func (a *AnalysisContext) evict(e *CacheEntry) {
	if !a.cache.Evict(e) {
		return
	}
	a.stats.Evictions++
	a.logger.Debug("evicted block summary", "block", e.Key.Block.ID, "state", e.Key.State.String())

	for _, nested := range a.records.drop(e.Reached) {
		if nested.users.Cardinality() == 0 {
			a.evict(nested)
		}
	}
}
