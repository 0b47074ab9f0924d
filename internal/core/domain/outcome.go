package domain

// OutcomeKind classifies how a fixpoint run ended.
type OutcomeKind int

const (
	// OutcomeConverged means the waitlist emptied without reaching a target.
	OutcomeConverged OutcomeKind = iota
	// OutcomeTarget means a target node was reached; exploration stopped there.
	OutcomeTarget
	// OutcomeAborted means the runner gave up before converging.
	OutcomeAborted
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeConverged:
		return "converged"
	case OutcomeTarget:
		return "target"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RunOutcome is the result of running the fixpoint runner on one graph.
type RunOutcome struct {
	Kind OutcomeKind
	// Target is the target node for OutcomeTarget.
	Target NodeID
	// Frontier is the first unexplored node for OutcomeAborted.
	Frontier NodeID
}

// Converged returns the outcome of a clean run.
func Converged() RunOutcome {
	return RunOutcome{Kind: OutcomeConverged, Target: NoNode, Frontier: NoNode}
}

// TargetReached returns the outcome of a run that stopped at target.
func TargetReached(target NodeID) RunOutcome {
	return RunOutcome{Kind: OutcomeTarget, Target: target, Frontier: NoNode}
}

// Aborted returns the outcome of a run that gave up at frontier.
func Aborted(frontier NodeID) RunOutcome {
	return RunOutcome{Kind: OutcomeAborted, Target: NoNode, Frontier: frontier}
}
