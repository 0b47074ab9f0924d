package bam

import "go.trai.ch/bam/internal/core/domain"

// ForwardEdgesForTest exposes the edge filter of plain successor computation.
func ForwardEdgesForTest(a *AnalysisContext, b *domain.Block, l domain.Location) []*domain.Edge {
	return a.forwardEdges(b, l)
}

// RebuildForTest runs the rebuild step of a recursive block exit.
func RebuildForTest(a *AnalysisContext, g *domain.Graph, call, expanded domain.NodeID) (domain.NodeID, error) {
	d := &driver{actx: a}
	return d.rebuild(g, call, expanded)
}
