package ports

import "go.trai.ch/bam/internal/core/domain"

// ReportStore defines the interface for storing and retrieving analysis reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report for a given program name below root.
	// Returns nil, nil if not found.
	Get(root, program string) (*domain.AnalysisReport, error)

	// Put stores the report below root.
	Put(root string, report domain.AnalysisReport) error
}
