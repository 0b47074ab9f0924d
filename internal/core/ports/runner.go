package ports

import (
	"context"

	"go.trai.ch/bam/internal/core/domain"
)

// TransferRelation computes the children of a graph node.
type TransferRelation interface {
	// Successors attaches the children of n to g and returns them.
	// A transfer relation that gives up sets g's frontier instead of failing.
	Successors(ctx context.Context, g *domain.Graph, n domain.NodeID) ([]domain.NodeID, error)
}

// FixpointRunner drives a waitlist of an exploration graph to convergence.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type FixpointRunner interface {
	// Run explores g in place, starting from its waiting nodes.
	Run(ctx context.Context, g *domain.Graph, t TransferRelation) (domain.RunOutcome, error)
}
