// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/repoutil/internal/adapters/cas"
	_ "go.trai.ch/repoutil/internal/adapters/config"
	_ "go.trai.ch/repoutil/internal/adapters/logger"
	_ "go.trai.ch/repoutil/internal/adapters/manifest"
	_ "go.trai.ch/repoutil/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/repoutil/internal/app"
	_ "go.trai.ch/repoutil/internal/engine/checker"
)
