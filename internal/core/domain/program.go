package domain

// Program bundles everything the engine needs to analyse one program.
type Program struct {
	Name   string
	CFA    *CFA
	Blocks *Partitioning
	Entry  Location
}

// EntryBlock returns the block entered at the program entry, or nil when the
// entry is not a block entry.
func (p *Program) EntryBlock() *Block {
	return p.Blocks.BlockForCallLocation(p.Entry)
}

// AnalysisOptions configures the engine for one program.
type AnalysisOptions struct {
	// ProduceProofs retains a copy of every converged block graph.
	ProduceProofs bool
	// CheckProofs verifies the retained proofs after the analysis.
	CheckProofs bool
	// MaxRecursionDepth bounds nested block analyses; 0 means unbounded.
	MaxRecursionDepth int
	// MaxIterations bounds each fixpoint run; 0 means unbounded.
	MaxIterations int
	// ProofCacheSize bounds the number of memoized proof checks.
	ProofCacheSize int
}

// DefaultAnalysisOptions returns the options used when a program sets none.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		MaxRecursionDepth: 512,
		ProofCacheSize:    1024,
	}
}

// ProgramSpec is a loaded program together with what to check on it.
type ProgramSpec struct {
	Program *Program
	// Targets are the error locations.
	Targets []Location
	// Initial maps variables to their abstract value at the entry.
	Initial map[string]string
	// Precision lists the tracked variables; nil tracks every variable.
	Precision []string
	Options   AnalysisOptions
}
