// Package app implements the application layer for bam.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
	"go.trai.ch/bam/internal/engine/bam"
	"go.trai.ch/bam/internal/engine/fixpoint"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProgramLoader
	factory   ports.DomainFactory
	store     ports.ReportStore
	logger    ports.Logger
	telemetry ports.Telemetry

	out         io.Writer
	styles      styles
	now         func() time.Time
	parallelism int
}

// New creates a new App instance.
func New(
	loader ports.ProgramLoader,
	factory ports.DomainFactory,
	store ports.ReportStore,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:      loader,
		factory:     factory,
		store:       store,
		logger:      log,
		telemetry:   telemetry,
		out:         os.Stdout,
		styles:      newStyles(os.Stdout),
		now:         time.Now,
		parallelism: runtime.NumCPU(),
	}
}

// WithOutput redirects the verdict listing to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	a.styles = newStyles(w)
	return a
}

// WithClock replaces the clock used to timestamp reports.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithParallelism bounds the number of programs analysed at once.
func (a *App) WithParallelism(n int) *App {
	if n > 0 {
		a.parallelism = n
	}
	return a
}

// RunOptions configuration for the Run method. Nil fields keep the value
// from the program file.
type RunOptions struct {
	ProduceProofs     *bool
	CheckProofs       *bool
	MaxRecursionDepth *int
	MaxIterations     *int
	// ReportDir is where reports are stored; empty disables reports.
	ReportDir string
	// LogLevel is applied to loggers that support levels; empty keeps the current level.
	LogLevel string
}

func (o RunOptions) apply(opts domain.AnalysisOptions) domain.AnalysisOptions {
	if o.ProduceProofs != nil {
		opts.ProduceProofs = *o.ProduceProofs
	}
	if o.CheckProofs != nil {
		opts.CheckProofs = *o.CheckProofs
	}
	if o.MaxRecursionDepth != nil {
		opts.MaxRecursionDepth = *o.MaxRecursionDepth
	}
	if o.MaxIterations != nil {
		opts.MaxIterations = *o.MaxIterations
	}
	if opts.CheckProofs {
		opts.ProduceProofs = true
	}
	return opts
}

// Verdict is the outcome of analysing one program.
type Verdict struct {
	Report         domain.AnalysisReport
	Counterexample *domain.DerivationTree
	Err            error
}

type levelSetter interface {
	SetLevel(domain.LogLevel)
}

// Run analyses the programs at paths concurrently and prints one verdict per
// program in argument order. It fails with domain.ErrAnalysisFailed when any
// program could not be analysed; the other programs are still reported.
func (a *App) Run(ctx context.Context, paths []string, opts RunOptions) ([]Verdict, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoProgramsSpecified
	}
	if opts.LogLevel != "" {
		if l, ok := a.logger.(levelSetter); ok {
			l.SetLevel(domain.ParseLogLevel(opts.LogLevel))
		}
	}

	verdicts := make([]Verdict, len(paths))
	var g errgroup.Group
	g.SetLimit(a.parallelism)
	for i, path := range paths {
		g.Go(func() error {
			verdicts[i] = a.analyse(ctx, path, opts)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, v := range verdicts {
		a.print(v)
		if v.Err != nil {
			a.logger.Error(v.Err)
			errs = append(errs, v.Err)
		}
	}
	if len(errs) > 0 {
		return verdicts, errors.Join(append([]error{domain.ErrAnalysisFailed}, errs...)...)
	}
	return verdicts, nil
}

func (a *App) analyse(ctx context.Context, path string, opts RunOptions) (verdict Verdict) {
	report := &verdict.Report
	report.Program = path
	report.Status = domain.StatusFailed

	spec, err := a.loader.Load(path)
	if err != nil {
		verdict.Err = zerr.Wrap(err, "failed to load program")
		return verdict
	}
	name := spec.Program.Name
	report.Program = name

	ctx, v := a.telemetry.Record(ctx, "program "+name)
	defer func() { v.Complete(verdict.Err) }()

	tree, err := a.check(ctx, spec, opts.apply(spec.Options), report)
	report.Timestamp = a.now()
	verdict.Counterexample = tree
	if err != nil {
		verdict.Err = zerr.With(err, "program", name)
		report.Status = domain.StatusFailed
	}

	if opts.ReportDir != "" {
		if err := a.persist(opts.ReportDir, *report); err != nil && verdict.Err == nil {
			verdict.Err = err
		}
	}

	a.logger.Info("analysis finished",
		"program", name,
		"status", string(report.Status),
		"cache_hits", report.Statistics.CacheHits,
		"cache_misses", report.Statistics.CacheMisses,
		"guard_trips", report.Statistics.GuardTrips,
	)
	return verdict
}

// check runs the engine on spec and fills report.
func (a *App) check(ctx context.Context, spec *domain.ProgramSpec, options domain.AnalysisOptions,
	report *domain.AnalysisReport,
) (*domain.DerivationTree, error) {
	analysis, err := a.factory.NewAnalysis(spec)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to instantiate domain")
	}

	runner := fixpoint.New(analysis.Domain, options.MaxIterations)
	actx, err := bam.New(spec.Program, analysis, runner, a.logger, a.telemetry, options)
	if err != nil {
		return nil, err
	}

	res, err := actx.Analyse(ctx)
	report.Statistics = actx.Stats()
	if err != nil {
		return nil, err
	}
	report.Status = res.Status

	switch res.Status {
	case domain.StatusUnsafe:
		tree, err := actx.Counterexample(domain.NodeRef{Graph: res.Graph, ID: res.Target})
		if err != nil {
			return nil, zerr.Wrap(err, "failed to reconstruct counterexample")
		}
		for _, n := range tree.Path() {
			report.Counterexample = append(report.Counterexample, n.State.Location().String())
		}
		return tree, nil
	case domain.StatusIncomplete:
		a.logger.Warn("analysis incomplete", "program", spec.Program.Name,
			"frontier", res.Graph.State(frontierOf(res)).String())
	case domain.StatusSafe:
		if options.CheckProofs {
			ok, err := actx.CheckProof(ctx)
			if err != nil {
				return nil, zerr.Wrap(err, "proof check failed")
			}
			report.ProofChecked = ok
			if !ok {
				a.logger.Warn("proof rejected", "program", spec.Program.Name)
			}
		}
	}
	return nil, nil
}

func frontierOf(res *bam.Result) domain.NodeID {
	if res.Frontier != domain.NoNode {
		return res.Frontier
	}
	return res.Graph.Root()
}

func (a *App) persist(dir string, report domain.AnalysisReport) error {
	prev, err := a.store.Get(dir, report.Program)
	if err != nil {
		return err
	}
	if prev != nil && prev.Status != report.Status {
		a.logger.Info("verdict changed", "program", report.Program,
			"from", string(prev.Status), "to", string(report.Status))
	}
	return a.store.Put(dir, report)
}

func (a *App) print(v Verdict) {
	r := v.Report
	st := a.styles
	_, _ = fmt.Fprintf(a.out, "%s: %s\n", st.program.Render(r.Program),
		st.verdict(r.Status, strings.ToUpper(string(r.Status))))
	if v.Err != nil {
		return
	}
	s := r.Statistics
	_, _ = fmt.Fprintln(a.out, "  "+st.detail.Render(fmt.Sprintf(
		"runs=%d hits=%d misses=%d resumes=%d guard=%d expansions=%d rebuilds=%d depth=%d",
		s.RunnerInvocations, s.CacheHits, s.CacheMisses, s.PartialResumes, s.GuardTrips,
		s.Expansions, s.Rebuilds, s.MaxStackDepth)))
	if r.ProofChecked {
		_, _ = fmt.Fprintln(a.out, "  "+st.proofCheck.Render("proof checked"))
	}
	if v.Counterexample != nil {
		_, _ = fmt.Fprintln(a.out, "  counterexample:")
		_, _ = fmt.Fprintln(a.out, st.trace.Render(strings.TrimSuffix(v.Counterexample.String(), "\n")))
	}
}
