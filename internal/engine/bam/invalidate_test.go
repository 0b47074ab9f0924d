package bam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bam/internal/core/domain"
)

func TestInvalidate_EvictsOnlyAffectedSummaries(t *testing.T) {
	f := newFixture(t, sharedProgram(t), nil, domain.AnalysisOptions{}, nil)

	res := f.analyse(t)
	require.Equal(t, domain.StatusSafe, res.Status)
	require.Equal(t, 4, f.actx.Cache().Len())
	assert.Equal(t, 4, f.actx.Stats().CacheMisses)
	assert.Equal(t, 1, f.actx.Stats().CacheHits)

	g := entryFor(f.actx.Cache(), "g")
	s := entryFor(f.actx.Cache(), "s")
	require.NotNil(t, g)
	require.NotNil(t, s)
	gExits := g.ExitStates()

	calls := nodesAt(res.Graph, "f0")
	require.Len(t, calls, 1)
	parent := res.Graph.Parents(calls[0])[0]

	require.NoError(t, f.actx.Invalidate(domain.NodeRef{Graph: res.Graph, ID: calls[0]}))

	assert.Equal(t, 2, f.actx.Stats().Evictions)
	assert.Equal(t, 2, f.actx.Cache().Len())
	assert.Nil(t, entryFor(f.actx.Cache(), "f"))
	assert.Nil(t, entryFor(f.actx.Cache(), "h"))
	assert.True(t, f.actx.Cache().Contains(g))
	assert.True(t, f.actx.Cache().Contains(s))
	assert.True(t, g.Complete())
	assert.Equal(t, gExits, g.ExitStates())

	assert.False(t, res.Graph.Contains(calls[0]))
	assert.Empty(t, nodesAt(res.Graph, "ra"))
	assert.Equal(t, parent, res.Graph.Peek())

	again := f.analyse(t)
	assert.Equal(t, domain.StatusSafe, again.Status)
	assert.Equal(t, 4, f.actx.Cache().Len())
	assert.Equal(t, 6, f.actx.Stats().CacheMisses)
	assert.Equal(t, 2, f.actx.Stats().CacheHits)
	assert.Len(t, nodesAt(again.Graph, "ra"), 1)
}

func TestInvalidate_UnknownNode(t *testing.T) {
	f := newFixture(t, twiceProgram(t), nil, domain.AnalysisOptions{}, nil)
	res := f.analyse(t)

	err := f.actx.Invalidate(domain.NodeRef{Graph: res.Graph, ID: domain.NodeID(4242)})
	require.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestCounterexample_FailsOnEvictedSummary(t *testing.T) {
	f := newFixture(t, branchingTargetProgram(t), []string{"err"}, domain.AnalysisOptions{}, nil)

	res := f.analyse(t)
	require.Equal(t, domain.StatusUnsafe, res.Status)
	target := domain.NodeRef{Graph: res.Graph, ID: res.Target}

	tree, err := f.actx.Counterexample(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"m0", "a1", "f0", "f9", "ra", "err"}, pathLocations(tree))
	requireValidPath(t, f.analysis, tree)

	// Invalidating the other branch evicts the summary both branches share.
	other := domain.NoNode
	for _, id := range nodesAt(res.Graph, "f0") {
		if res.Graph.State(res.Graph.Parents(id)[0]).Location().String() == "b1" {
			other = id
		}
	}
	require.NotEqual(t, domain.NoNode, other)
	require.NoError(t, f.actx.Invalidate(domain.NodeRef{Graph: res.Graph, ID: other}))

	_, err = f.actx.Counterexample(target)
	require.ErrorIs(t, err, domain.ErrCacheEntryEvicted)
	assert.True(t, domain.IsFatal(err))
}
