// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scan/internal/adapters/config"
	_ "go.trai.ch/scan/internal/adapters/detector"
	_ "go.trai.ch/scan/internal/adapters/fs"
	_ "go.trai.ch/scan/internal/adapters/logger"
	_ "go.trai.ch/scan/internal/adapters/project"
	// Register app nodes.
	_ "go.trai.ch/scan/internal/app"
)
