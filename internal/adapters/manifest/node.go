package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repoutil/internal/adapters/cas"
	"go.trai.ch/repoutil/internal/adapters/logger"
	"go.trai.ch/repoutil/internal/core/ports"
)

// NodeID is the unique identifier for the manifest source Graft node.
const NodeID graft.ID = "adapter.manifest_source"

func init() {
	graft.Register(graft.Node[ports.ManifestSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestSource, error) {
			cache, err := graft.Dep[ports.ReferenceCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(NewWalker(), cache, log), nil
		},
	})
}
