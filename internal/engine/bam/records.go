package bam

import (
	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/bam/internal/core/domain"
)

// expansion links an expanded node back to the reduced node it came from.
type expansion struct {
	entry   *CacheEntry
	reduced domain.NodeID
	call    domain.NodeID
}

// graphRecords are the bookkeeping of one exploration graph.
type graphRecords struct {
	block      *domain.Block
	expansions map[domain.NodeID]expansion
	entered    map[domain.NodeID]*CacheEntry
	guarded    mapset.Set[domain.NodeID]
}

// records maps nodes of every live graph to the block analyses they took part in.
type records struct {
	graphs map[*domain.Graph]*graphRecords
}

func newRecords() *records {
	return &records{graphs: make(map[*domain.Graph]*graphRecords)}
}

// track registers g as the graph of an analysis of b; b is nil for the
// whole program.
func (r *records) track(g *domain.Graph, b *domain.Block) *graphRecords {
	if gr, ok := r.graphs[g]; ok {
		return gr
	}
	gr := &graphRecords{
		block:      b,
		expansions: make(map[domain.NodeID]expansion),
		entered:    make(map[domain.NodeID]*CacheEntry),
		guarded:    mapset.NewThreadUnsafeSet[domain.NodeID](),
	}
	r.graphs[g] = gr
	return gr
}

func (r *records) of(g *domain.Graph) *graphRecords {
	return r.graphs[g]
}

func (r *records) expansion(ref domain.NodeRef) (expansion, bool) {
	gr := r.graphs[ref.Graph]
	if gr == nil {
		return expansion{}, false
	}
	x, ok := gr.expansions[ref.ID]
	return x, ok
}

func (r *records) enter(call domain.NodeRef, e *CacheEntry) {
	r.graphs[call.Graph].entered[call.ID] = e
	e.users.Add(call)
}

// release forgets everything recorded about ref and returns the entry it had
// entered, if any.
func (r *records) release(ref domain.NodeRef) *CacheEntry {
	gr := r.graphs[ref.Graph]
	if gr == nil {
		return nil
	}
	delete(gr.expansions, ref.ID)
	gr.guarded.Remove(ref.ID)
	e, ok := gr.entered[ref.ID]
	if !ok {
		return nil
	}
	delete(gr.entered, ref.ID)
	e.users.Remove(ref)
	return e
}

// drop forgets g and returns the entries its call nodes had entered.
func (r *records) drop(g *domain.Graph) []*CacheEntry {
	gr := r.graphs[g]
	if gr == nil {
		return nil
	}
	var released []*CacheEntry
	for id, e := range gr.entered {
		e.users.Remove(domain.NodeRef{Graph: g, ID: id})
		released = append(released, e)
	}
	delete(r.graphs, g)
	return released
}
