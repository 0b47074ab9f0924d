package domain

import "time"

// Statistics counts what the engine did while analysing one program.
type Statistics struct {
	RunnerInvocations int `json:"runner_invocations,omitzero"`
	CacheHits         int `json:"cache_hits,omitzero"`
	CacheMisses       int `json:"cache_misses,omitzero"`
	PartialResumes    int `json:"partial_resumes,omitzero"`
	GuardTrips        int `json:"guard_trips,omitzero"`
	Expansions        int `json:"expansions,omitzero"`
	Rebuilds          int `json:"rebuilds,omitzero"`
	Evictions         int `json:"evictions,omitzero"`
	MaxStackDepth     int `json:"max_stack_depth,omitzero"`
}

// AnalysisReport is the persisted summary of analysing one program.
type AnalysisReport struct {
	Program        string         `json:"program,omitzero"`
	Status         AnalysisStatus `json:"status,omitzero"`
	Statistics     Statistics     `json:"statistics,omitzero"`
	Counterexample []string       `json:"counterexample,omitzero"`
	ProofChecked   bool           `json:"proof_checked,omitzero"`
	Timestamp      time.Time      `json:"timestamp,omitzero"`
}

const (
	// DirPerm is the permission of directories created for reports.
	DirPerm = 0o750
	// FilePerm is the permission of report files.
	FilePerm = 0o644
)

// DefaultReportPath returns the report directory relative to the workspace root.
func DefaultReportPath() string {
	return ".bam/reports"
}
