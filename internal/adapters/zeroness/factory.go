package zeroness

import (
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory instantiates the zero-ness domain for loaded programs.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewAnalysis builds the domain, reducer, initial state and precision of spec.
func (f *Factory) NewAnalysis(spec *domain.ProgramSpec) (*ports.Analysis, error) {
	d, err := NewDomain(spec.Program.CFA, spec.Targets)
	if err != nil {
		return nil, zerr.With(err, "program", spec.Program.Name)
	}

	prec := TrackAll()
	if spec.Precision != nil {
		prec = Track(spec.Precision...)
	}

	vals := make(map[string]Value, len(spec.Initial))
	for v, raw := range spec.Initial {
		val, err := ParseValue(raw)
		if err != nil {
			return nil, zerr.With(err, "variable", v)
		}
		if prec.Tracks(v) {
			vals[v] = val
		}
	}

	return &ports.Analysis{
		Domain:    d,
		Checker:   d,
		Reducer:   NewScopeReducer(spec.Program.Blocks),
		Initial:   NewState(spec.Program.Entry, vals),
		Precision: prec,
	}, nil
}
