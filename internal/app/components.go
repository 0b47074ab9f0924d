package app

import "go.trai.ch/bam/internal/core/ports"

// Components holds the resolved dependencies the command line needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
