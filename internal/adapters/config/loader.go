// Package config provides the program loader for bam.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileExtension is the suffix of program description files.
const FileExtension = ".bam.yaml"

// Loader implements ports.ProgramLoader using YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the program description at path.
func (l *Loader) Load(path string) (*domain.ProgramSpec, error) {
	spec, err := Load(path)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	l.logger.Debug("loaded program",
		"program", spec.Program.Name,
		"edges", spec.Program.CFA.EdgeCount(),
		"blocks", spec.Program.Blocks.Len(),
	)
	return spec, nil
}

// Load reads a program file from the given path and returns its spec.
func Load(path string) (*domain.ProgramSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read program file")
	}

	var file ProgramFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse program file")
	}
	if file.Name == "" {
		file.Name = defaultName(path)
	}
	return file.toSpec()
}

func defaultName(path string) string {
	base := filepath.Base(path)
	if name, ok := strings.CutSuffix(base, FileExtension); ok {
		return name
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (f *ProgramFile) toSpec() (*domain.ProgramSpec, error) {
	if f.Entry == "" {
		return nil, zerr.With(domain.ErrInvalidProgram, "reason", "no entry location")
	}
	if len(f.Edges) == 0 {
		return nil, zerr.With(domain.ErrInvalidProgram, "reason", "no edges")
	}

	cfa := domain.NewCFA()
	for _, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, zerr.With(zerr.With(domain.ErrInvalidProgram, "reason", "edge without endpoint"),
				"edge", e.From+" -> "+e.To)
		}
		edge := &domain.Edge{
			From:      domain.NewLocation(e.From),
			To:        domain.NewLocation(e.To),
			Statement: strings.TrimSpace(e.Stmt),
		}
		if err := cfa.AddEdge(edge); err != nil {
			return nil, err
		}
	}

	entry := domain.NewLocation(f.Entry)
	if !cfa.Has(entry) {
		return nil, zerr.With(domain.ErrUnknownLocation, "location", f.Entry)
	}

	blocks, err := f.partitioning(cfa)
	if err != nil {
		return nil, err
	}

	targets := domain.NewLocations(f.Targets...)
	for _, t := range targets {
		if !cfa.Has(t) {
			return nil, zerr.With(zerr.With(domain.ErrUnknownLocation, "location", t.String()), "reason", "target")
		}
	}

	return &domain.ProgramSpec{
		Program: &domain.Program{
			Name:   f.Name,
			CFA:    cfa,
			Blocks: blocks,
			Entry:  entry,
		},
		Targets:   targets,
		Initial:   f.Initial,
		Precision: f.Precision,
		Options:   f.Analysis.options(),
	}, nil
}

// partitioning builds the blocks in id order so errors are reproducible.
func (f *ProgramFile) partitioning(cfa *domain.CFA) (*domain.Partitioning, error) {
	blocks := make([]*domain.Block, 0, len(f.Blocks))
	for _, id := range slices.Sorted(maps.Keys(f.Blocks)) {
		dto := f.Blocks[id]
		b, err := domain.NewBlock(domain.BlockSpec{
			ID:        id,
			Kind:      domain.BlockKind(dto.Kind),
			Recursive: dto.Recursive,
			Calls:     domain.NewLocations(dto.Entry...),
			Returns:   domain.NewLocations(dto.Exit...),
			Locations: domain.NewLocations(dto.Locations...),
			Variables: dto.Variables,
			Locals:    dto.Locals,
		})
		if err != nil {
			return nil, err
		}
		for _, l := range slices.Concat(dto.Entry, dto.Exit, dto.Locations) {
			if !cfa.Has(domain.NewLocation(l)) {
				return nil, zerr.With(zerr.With(domain.ErrUnknownLocation, "location", l), "block", id)
			}
		}
		for _, v := range dto.Locals {
			if !slices.Contains(dto.Variables, v) {
				return nil, zerr.With(zerr.With(domain.ErrInvalidBlock, "reason", "local "+v+" is not in scope"), "block", id)
			}
		}
		blocks = append(blocks, b)
	}
	return domain.NewPartitioning(blocks...)
}

func (a AnalysisDTO) options() domain.AnalysisOptions {
	opts := domain.DefaultAnalysisOptions()
	if a.ProduceProofs != nil {
		opts.ProduceProofs = *a.ProduceProofs
	}
	if a.CheckProofs != nil {
		opts.CheckProofs = *a.CheckProofs
	}
	if a.MaxRecursionDepth != nil {
		opts.MaxRecursionDepth = *a.MaxRecursionDepth
	}
	if a.MaxIterations != nil {
		opts.MaxIterations = *a.MaxIterations
	}
	if a.ProofCacheSize != nil {
		opts.ProofCacheSize = *a.ProofCacheSize
	}
	// Checking needs something to check.
	if opts.CheckProofs {
		opts.ProduceProofs = true
	}
	return opts
}
