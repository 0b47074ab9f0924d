package zeroness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bam/internal/core/ports"
)

// NodeID is the unique identifier for the zero-ness domain Graft node.
const NodeID graft.ID = "adapter.domain"

func init() {
	graft.Register(graft.Node[ports.DomainFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DomainFactory, error) {
			return NewFactory(), nil
		},
	})
}
