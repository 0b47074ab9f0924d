package bam_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/bam/internal/adapters/logger"
	"go.trai.ch/bam/internal/adapters/telemetry"
	"go.trai.ch/bam/internal/adapters/zeroness"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
	"go.trai.ch/bam/internal/engine/bam"
	"go.trai.ch/bam/internal/engine/fixpoint"
)

type edge struct {
	from, to, stmt string
}

func loc(name string) domain.Location {
	return domain.NewLocation(name)
}

func block(id, call, ret string, locations, variables []string) domain.BlockSpec {
	return domain.BlockSpec{
		ID:        id,
		Calls:     domain.NewLocations(call),
		Returns:   domain.NewLocations(ret),
		Locations: domain.NewLocations(locations...),
		Variables: variables,
	}
}

func loopBlock(id, head, exit string, locations, variables []string) domain.BlockSpec {
	spec := block(id, head, exit, locations, variables)
	spec.Kind = domain.BlockLoop
	return spec
}

func recursive(spec domain.BlockSpec, locals ...string) domain.BlockSpec {
	spec.Recursive = true
	spec.Locals = locals
	return spec
}

func buildProgram(t *testing.T, entry string, edges []edge, blocks ...domain.BlockSpec) *domain.Program {
	t.Helper()
	cfa := domain.NewCFA()
	for _, e := range edges {
		require.NoError(t, cfa.AddEdge(&domain.Edge{From: loc(e.from), To: loc(e.to), Statement: e.stmt}))
	}
	bs := make([]*domain.Block, 0, len(blocks))
	for _, spec := range blocks {
		b, err := domain.NewBlock(spec)
		require.NoError(t, err)
		bs = append(bs, b)
	}
	p, err := domain.NewPartitioning(bs...)
	require.NoError(t, err)
	return &domain.Program{Name: t.Name(), CFA: cfa, Blocks: p, Entry: loc(entry)}
}

type fixture struct {
	program  *domain.Program
	analysis *ports.Analysis
	actx     *bam.AnalysisContext
}

type runnerFactory func(an *ports.Analysis, real *fixpoint.Runner) ports.FixpointRunner

func newFixture(t *testing.T, prog *domain.Program, targets []string, opts domain.AnalysisOptions, wrap runnerFactory) *fixture {
	t.Helper()
	an, err := zeroness.NewFactory().NewAnalysis(&domain.ProgramSpec{
		Program: prog,
		Targets: domain.NewLocations(targets...),
	})
	require.NoError(t, err)

	real := fixpoint.New(an.Domain, opts.MaxIterations)
	var runner ports.FixpointRunner = real
	if wrap != nil {
		runner = wrap(an, real)
	}

	lg := logger.New()
	lg.SetOutput(io.Discard)

	actx, err := bam.New(prog, an, runner, lg, telemetry.NewNoOpTelemetry(), opts)
	require.NoError(t, err)
	return &fixture{program: prog, analysis: an, actx: actx}
}

func (f *fixture) analyse(t *testing.T) *bam.Result {
	t.Helper()
	res, err := f.actx.Analyse(context.Background())
	require.NoError(t, err)
	return res
}

// nodesAt returns the live nodes of g at the named location.
func nodesAt(g *domain.Graph, name string) []domain.NodeID {
	var out []domain.NodeID
	for id := range g.NodesAt(loc(name)) {
		out = append(out, id)
	}
	return out
}

func entryFor(c *bam.Cache, blockID string) *bam.CacheEntry {
	for e := range c.Entries() {
		if e.Key.Block.ID == blockID {
			return e
		}
	}
	return nil
}

func pathLocations(tree *domain.DerivationTree) []string {
	var out []string
	for _, n := range tree.Path() {
		out = append(out, n.State.Location().String())
	}
	return out
}

// requireValidPath checks that consecutive steps of tree are successor steps
// of the domain along the recorded edges.
func requireValidPath(t *testing.T, an *ports.Analysis, tree *domain.DerivationTree) {
	t.Helper()
	path := tree.Path()
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		require.NotNil(t, cur.Edge, "step %d has no edge", i)
		succ, err := an.Domain.Successors(context.Background(), prev.State, an.Precision, cur.Edge)
		require.NoError(t, err)

		found := false
		for _, s := range succ {
			if an.Domain.Equal(s, cur.State) {
				found = true
				break
			}
		}
		require.True(t, found, "step %d: %s does not follow from %s along %s", i, cur.State, prev.State, cur.Edge)
	}
}
