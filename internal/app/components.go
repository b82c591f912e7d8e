package app

import "go.trai.ch/repoutil/internal/core/ports"

// Components holds the resolved application dependencies needed by the
// command line entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}
