// Package cas implements file storage of analysis reports.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore using a file-per-program strategy.
type Store struct{}

// NewStore creates a new report store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the report for a given program name.
func (s *Store) Get(root, program string) (*domain.AnalysisReport, error) {
	filename := s.filename(root, program)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "program", program)
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "program", program)
	}
	return &report, nil
}

// Put stores the report.
func (s *Store) Put(root string, report domain.AnalysisReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}

	filename := s.filename(root, report.Program)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "program", report.Program)
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "program", report.Program)
	}
	return nil
}

func (s *Store) filename(root, program string) string {
	hash := sha256.Sum256([]byte(program))
	return filepath.Join(root, hex.EncodeToString(hash[:])+".json")
}
