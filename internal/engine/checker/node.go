package checker

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the checker Graft node.
const NodeID graft.ID = "engine.checker"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Checker, error) {
			return New(), nil
		},
	})
}
