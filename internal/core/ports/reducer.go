package ports

import "go.trai.ch/bam/internal/core/domain"

// Reducer translates states between a caller context and a block context.
// Implementations must be pure.
//
//go:generate go run go.uber.org/mock/mockgen -source=reducer.go -destination=mocks/mock_reducer.go -package=mocks
type Reducer interface {
	// Reduce drops the caller context of (s, p) when entering b at entry.
	// Reduce must be idempotent.
	Reduce(s domain.State, p domain.Precision, b *domain.Block, entry domain.Location) (domain.State, domain.Precision)

	// Expand rebuilds the caller view of reducedExit right after leaving b.
	Expand(caller domain.State, b *domain.Block, reducedExit domain.State) domain.State

	// ExpandPrecision is the precision counterpart of Expand.
	ExpandPrecision(caller domain.Precision, b *domain.Block, reducedExit domain.Precision) domain.Precision

	// Rebuild combines the call-site state root, the block entry state and
	// the expanded exit state after a recursive call.
	Rebuild(root, entry, expanded domain.State) domain.State
}
