// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/predex/internal/adapters/cas"
	_ "go.trai.ch/predex/internal/adapters/config"
	_ "go.trai.ch/predex/internal/adapters/fs"
	_ "go.trai.ch/predex/internal/adapters/logger"
	_ "go.trai.ch/predex/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/predex/internal/app"
)
