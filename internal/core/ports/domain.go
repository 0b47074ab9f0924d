// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bam/internal/core/domain"
)

// AbstractDomain is the wrapped abstract domain the engine analyses with.
//
//go:generate go run go.uber.org/mock/mockgen -source=domain.go -destination=mocks/mock_domain.go -package=mocks
type AbstractDomain interface {
	// Successors returns the states reached from s along e. A nil edge is
	// the block-internal entry step and yields s itself in the block context.
	Successors(ctx context.Context, s domain.State, p domain.Precision, e *domain.Edge) ([]domain.State, error)

	// Covers reports whether a is subsumed by b.
	Covers(a, b domain.State) bool

	// Equal reports whether a and b are the same abstract value.
	Equal(a, b domain.State) bool

	// EqualPrecision reports whether a and b are the same precision.
	EqualPrecision(a, b domain.Precision) bool

	// IsTarget reports whether s is an error state.
	IsTarget(s domain.State) bool
}

// SuccessorChecker verifies claimed successors without recomputing a fixpoint.
type SuccessorChecker interface {
	// CheckSuccessors reports whether claimed justifies every successor of s along e.
	CheckSuccessors(ctx context.Context, s domain.State, p domain.Precision, e *domain.Edge,
		claimed []domain.State) (bool, error)
}

// Analysis is a domain instantiated for one program.
type Analysis struct {
	Domain    AbstractDomain
	Checker   SuccessorChecker
	Reducer   Reducer
	Initial   domain.State
	Precision domain.Precision
}

// DomainFactory instantiates the abstract domain for a loaded program.
type DomainFactory interface {
	// NewAnalysis builds the domain, reducer and initial state for spec.
	NewAnalysis(spec *domain.ProgramSpec) (*Analysis, error)
}
