package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrDuplicateEdge is returned when the same edge is added to a CFA twice.
	ErrDuplicateEdge = zerr.New("duplicate edge")

	// ErrDuplicateBlock is returned when two blocks share an id.
	ErrDuplicateBlock = zerr.New("duplicate block")

	// ErrAmbiguousCallLocation is returned when a location is the entry of more than one block.
	ErrAmbiguousCallLocation = zerr.New("location is the entry of more than one block")

	// ErrAmbiguousReturnLocation is returned when a location is the exit of more than one block.
	ErrAmbiguousReturnLocation = zerr.New("location is the exit of more than one block")

	// ErrInvalidBlock is returned when a block descriptor is malformed.
	ErrInvalidBlock = zerr.New("invalid block")

	// ErrInvalidProgram is returned when a program description is incomplete or inconsistent.
	ErrInvalidProgram = zerr.New("invalid program")

	// ErrUnknownLocation is returned when a program refers to a location without edges.
	ErrUnknownLocation = zerr.New("unknown location")

	// ErrUnknownNode is returned when a node handle does not belong to a live node of its graph.
	ErrUnknownNode = zerr.New("unknown node")

	// ErrCycleDetected is returned when a derivation graph contains a cycle along child links.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMalformedExpansion is returned when a rebuild finds an expanded node
	// with children or with other than exactly one parent.
	ErrMalformedExpansion = zerr.New("malformed expansion")

	// ErrCacheEntryEvicted is returned when a counterexample crosses an
	// expansion whose block summary is no longer cached.
	ErrCacheEntryEvicted = zerr.New("cache entry evicted")

	// ErrMissingProof is returned when proof checking reaches an analysed
	// block without a recorded proof.
	ErrMissingProof = zerr.New("missing block proof")

	// ErrRecursionDepthExceeded is returned when nested block analyses exceed the configured depth.
	ErrRecursionDepthExceeded = zerr.New("recursion depth exceeded")

	// ErrAnalysisCancelled is returned when the analysis context is cancelled.
	ErrAnalysisCancelled = zerr.New("analysis cancelled")

	// ErrNotATarget is returned when a counterexample is requested for a non-target node.
	ErrNotATarget = zerr.New("node is not a target")

	// ErrStoreReadFailed is returned when a stored report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read report")

	// ErrStoreWriteFailed is returned when a report cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write report")

	// ErrStoreUnmarshalFailed is returned when a stored report is not valid JSON.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal report")

	// ErrNoProgramsSpecified is returned when the CLI is invoked without program files.
	ErrNoProgramsSpecified = zerr.New("no programs specified")

	// ErrAnalysisFailed is returned when at least one program could not be analysed.
	ErrAnalysisFailed = zerr.New("analysis failed")
)

var fatal = []error{
	ErrMalformedExpansion,
	ErrCacheEntryEvicted,
	ErrMissingProof,
	ErrRecursionDepthExceeded,
	ErrUnknownNode,
}

// IsFatal reports whether err is an internal-consistency violation that must
// stop the analysis.
func IsFatal(err error) bool {
	for _, f := range fatal {
		if errors.Is(err, f) {
			return true
		}
	}
	return false
}

// Violation reports a broken internal invariant. The result matches sentinel
// under errors.Is and carries the invariant and kv pairs as zerr metadata.
func Violation(sentinel error, invariant string, kv ...any) error {
	detail := zerr.With(zerr.New(invariant), "invariant", invariant)
	for i := 0; i+1 < len(kv); i += 2 {
		detail = zerr.With(detail, fmt.Sprint(kv[i]), kv[i+1])
	}
	return errors.Join(sentinel, detail)
}

// Cancelled wraps a context error so that it matches ErrAnalysisCancelled.
func Cancelled(cause error) error {
	return errors.Join(ErrAnalysisCancelled, cause)
}
