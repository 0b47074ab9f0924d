package bam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bam/internal/adapters/zeroness"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/engine/bam"
)

func TestAnalyse_SelfRecursionTerminates(t *testing.T) {
	f := newFixture(t, selfRecursiveProgram(t), nil, domain.AnalysisOptions{}, nil)

	res := f.analyse(t)
	assert.Equal(t, domain.StatusSafe, res.Status)

	stats := f.actx.Stats()
	assert.Equal(t, 1, stats.GuardTrips)
	assert.Equal(t, 1, stats.MaxStackDepth)
	assert.Equal(t, 1, stats.CacheMisses)
	assert.Equal(t, 1, stats.Rebuilds)
	assert.Equal(t, 2, stats.RunnerInvocations)

	// The exit carries the caller's frame-local value of n, not the callee's.
	exits := nodesAt(res.Graph, "f9")
	require.Len(t, exits, 1)
	s := res.Graph.State(exits[0]).(*zeroness.State)
	assert.Equal(t, zeroness.Top, s.Get("n"))
	assert.Len(t, nodesAt(res.Graph, "r0"), 1)
}

func TestAnalyse_GuardOnlyMatchesSubsumingEntries(t *testing.T) {
	f := newFixture(t, widenedRecursionProgram(t), nil, domain.AnalysisOptions{}, nil)

	res := f.analyse(t)
	assert.Equal(t, domain.StatusSafe, res.Status)

	// Entering with n unknown below an entry with n zero is analysed, not
	// skipped; only the third, equal entry trips the guard.
	stats := f.actx.Stats()
	assert.Equal(t, 2, stats.MaxStackDepth)
	assert.Equal(t, 1, stats.GuardTrips)
	assert.Equal(t, 2, stats.CacheMisses)
	assert.Equal(t, 3, stats.RunnerInvocations)
	assert.Equal(t, 3, stats.Rebuilds)
	assert.Equal(t, 2, f.actx.Cache().Len())

	for _, id := range nodesAt(res.Graph, "f9") {
		s := res.Graph.State(id).(*zeroness.State)
		assert.Equal(t, zeroness.Zero, s.Get("n"), "rebuild restores the caller frame")
	}
}

func TestAnalyse_RecursionDepthLimit(t *testing.T) {
	f := newFixture(t, widenedRecursionProgram(t), nil, domain.AnalysisOptions{MaxRecursionDepth: 1}, nil)

	_, err := f.actx.Analyse(context.Background())
	require.ErrorIs(t, err, domain.ErrRecursionDepthExceeded)
	assert.True(t, domain.IsFatal(err))
	assert.Equal(t, 0, f.actx.StackDepth())
}

func TestRebuild_RejectsMalformedShapes(t *testing.T) {
	f := newFixture(t, selfRecursiveProgram(t), nil, domain.AnalysisOptions{}, nil)
	prec := zeroness.TrackAll()

	t.Run("call without parent", func(t *testing.T) {
		g := domain.NewGraph(zeroness.NewState(loc("f0"), nil, loc("r0")), prec)
		x := g.AddChild(g.Root(), zeroness.NewState(loc("f9"), nil, loc("r0")), prec, nil)

		_, err := bam.RebuildForTest(f.actx, g, g.Root(), x)
		require.ErrorIs(t, err, domain.ErrMalformedExpansion)
		assert.True(t, domain.IsFatal(err))
	})

	t.Run("expanded node with children", func(t *testing.T) {
		g := domain.NewGraph(zeroness.NewState(loc("m0"), nil), prec)
		call := g.AddChild(g.Root(), zeroness.NewState(loc("f0"), nil, loc("r0")), prec, nil)
		x := g.AddChild(call, zeroness.NewState(loc("f9"), nil, loc("r0")), prec, nil)
		g.AddChild(x, zeroness.NewState(loc("r0"), nil), prec, nil)

		_, err := bam.RebuildForTest(f.actx, g, call, x)
		require.ErrorIs(t, err, domain.ErrMalformedExpansion)
	})

	t.Run("well formed", func(t *testing.T) {
		g := domain.NewGraph(zeroness.NewState(loc("m0"), map[string]zeroness.Value{"n": zeroness.Zero}), prec)
		call := g.AddChild(g.Root(), zeroness.NewState(loc("f0"), map[string]zeroness.Value{"n": zeroness.Zero}, loc("r0")), prec, nil)
		x := g.AddChild(call, zeroness.NewState(loc("f9"), map[string]zeroness.Value{"n": zeroness.NonZero}, loc("r0")), prec, nil)

		id, err := bam.RebuildForTest(f.actx, g, call, x)
		require.NoError(t, err)
		assert.False(t, g.Contains(x))
		assert.Equal(t, zeroness.Zero, g.State(id).(*zeroness.State).Get("n"))
		assert.Equal(t, []domain.NodeID{call}, g.Parents(id))
	})
}
