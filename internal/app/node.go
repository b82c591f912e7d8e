package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repoutil/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/repoutil/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/repoutil/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/repoutil/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/repoutil/internal/engine/checker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			checker.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	source, err := graft.Dep[ports.ManifestSource](ctx)
	if err != nil {
		return nil, err
	}
	chk, err := graft.Dep[*checker.Checker](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, source, chk, log, w), nil
}
