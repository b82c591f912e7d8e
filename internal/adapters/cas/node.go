package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repoutil/internal/core/ports"
)

// NodeID is the unique identifier for the reference cache Graft node.
const NodeID graft.ID = "adapter.reference_cache"

func init() {
	graft.Register(graft.Node[ports.ReferenceCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReferenceCache, error) {
			return NewStore(), nil
		},
	})
}
