// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tally/internal/adapters/cas"
	_ "go.trai.ch/tally/internal/adapters/config"
	_ "go.trai.ch/tally/internal/adapters/logger"
	_ "go.trai.ch/tally/internal/adapters/shell"
	_ "go.trai.ch/tally/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/tally/internal/app"
)
