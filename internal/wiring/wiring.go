// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bam/internal/adapters/cas"
	_ "go.trai.ch/bam/internal/adapters/config"
	_ "go.trai.ch/bam/internal/adapters/logger"
	_ "go.trai.ch/bam/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/bam/internal/adapters/zeroness"
	// Register app nodes.
	_ "go.trai.ch/bam/internal/app"
)
