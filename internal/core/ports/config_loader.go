package ports

import "go.trai.ch/bam/internal/core/domain"

// ProgramLoader defines the interface for loading analysed programs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProgramLoader interface {
	// Load reads the program description at path.
	Load(path string) (*domain.ProgramSpec, error)
}
