// Package bam implements block-memoizing reachability analysis: block entries
// are reduced, analysed once per equivalent reduced entry and their exits
// expanded back into the caller.
package bam

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultProofCacheSize = 1024

// Result is the outcome of analysing the whole program.
type Result struct {
	Status domain.AnalysisStatus
	// Graph is the exploration graph of the whole program.
	Graph *domain.Graph
	// Target is the target node for StatusUnsafe, or NoNode.
	Target domain.NodeID
	// Frontier is the node where exploration gave up for StatusIncomplete, or NoNode.
	Frontier domain.NodeID
}

// AnalysisContext bundles the block summary cache, the exploration graph
// records and the recursion stack of one program analysis.
// It is not safe for concurrent use.
type AnalysisContext struct {
	program   *domain.Program
	domain    ports.AbstractDomain
	checker   ports.SuccessorChecker
	reducer   ports.Reducer
	runner    ports.FixpointRunner
	logger    ports.Logger
	telemetry ports.Telemetry
	opts      domain.AnalysisOptions

	initial   domain.State
	precision domain.Precision

	cache   *Cache
	records *records
	stack   []CacheKey
	stats   domain.Statistics
	aborted bool
	graph   *domain.Graph
	proofs  *lru.Cache[proofKey, bool]
}

// New creates an AnalysisContext for program using the domain instance analysis.
func New(
	program *domain.Program,
	analysis *ports.Analysis,
	runner ports.FixpointRunner,
	logger ports.Logger,
	telemetry ports.Telemetry,
	opts domain.AnalysisOptions,
) (*AnalysisContext, error) {
	size := opts.ProofCacheSize
	if size <= 0 {
		size = defaultProofCacheSize
	}
	proofs, err := lru.New[proofKey, bool](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create proof cache")
	}

	return &AnalysisContext{
		program:   program,
		domain:    analysis.Domain,
		checker:   analysis.Checker,
		reducer:   analysis.Reducer,
		runner:    runner,
		logger:    logger,
		telemetry: telemetry,
		opts:      opts,
		initial:   analysis.Initial,
		precision: analysis.Precision,
		cache:     NewCache(analysis.Domain),
		records:   newRecords(),
		proofs:    proofs,
	}, nil
}

// Analyse explores the program from its entry, or resumes a previous
// exploration that was cancelled, aborted or invalidated.
func (a *AnalysisContext) Analyse(ctx context.Context) (*Result, error) {
	if a.graph == nil {
		a.graph = domain.NewGraph(a.initial, a.precision)
		a.records.track(a.graph, a.program.EntryBlock())
	}
	a.graph.ClearFrontier()
	a.aborted = false

	d := &driver{actx: a, block: a.program.EntryBlock()}
	a.stats.RunnerInvocations++
	outcome, err := a.runner.Run(ctx, a.graph, d)
	if err != nil {
		return nil, err
	}

	res := &Result{Graph: a.graph, Target: domain.NoNode, Frontier: domain.NoNode}
	switch outcome.Kind {
	case domain.OutcomeTarget:
		res.Status = domain.StatusUnsafe
		res.Target = outcome.Target
	case domain.OutcomeAborted:
		res.Status = domain.StatusIncomplete
		res.Frontier = outcome.Frontier
	default:
		res.Status = domain.StatusSafe
		if a.aborted {
			res.Status = domain.StatusIncomplete
		}
	}
	return res, nil
}

// Graph returns the exploration graph of the whole program, or nil before
// the first call to Analyse.
func (a *AnalysisContext) Graph() *domain.Graph {
	return a.graph
}

// Cache returns the block summary cache.
func (a *AnalysisContext) Cache() *Cache {
	return a.cache
}

// Stats returns what the engine did so far.
func (a *AnalysisContext) Stats() domain.Statistics {
	return a.stats
}

// Aborted reports whether some block analysis of the last run did not converge.
func (a *AnalysisContext) Aborted() bool {
	return a.aborted
}

// StackDepth returns the number of block analyses currently in progress.
func (a *AnalysisContext) StackDepth() int {
	return len(a.stack)
}

// ClearCaches drops every block summary, every record and the exploration
// graph, so the next Analyse starts from scratch.
func (a *AnalysisContext) ClearCaches() {
	a.cache.Clear()
	a.records = newRecords()
	a.proofs.Purge()
	a.graph = nil
	a.aborted = false
}

func (a *AnalysisContext) push(k CacheKey) {
	a.stack = append(a.stack, k)
	if len(a.stack) > a.stats.MaxStackDepth {
		a.stats.MaxStackDepth = len(a.stack)
	}
}

func (a *AnalysisContext) pop() {
	a.stack = a.stack[:len(a.stack)-1]
}

// guarded reports whether entering k would repeat a stacked analysis: some
// level analyses the same block with an equal precision and a state that
// subsumes the state of k. The reverse direction is deliberately not checked.
func (a *AnalysisContext) guarded(k CacheKey) bool {
	for _, level := range a.stack {
		if level.Block != k.Block || !a.domain.EqualPrecision(level.Precision, k.Precision) {
			continue
		}
		if a.domain.Covers(k.State, level.State) {
			return true
		}
	}
	return false
}
