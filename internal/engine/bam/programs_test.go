package bam_test

import (
	"testing"

	"go.trai.ch/bam/internal/core/domain"
)

// twiceProgram calls f twice with arguments that reduce to the same entry.
func twiceProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "m1", "p = 5"},
		{"m1", "f0", "call r1"},
		{"f0", "f1", "assume p != 0"},
		{"f1", "f9", "p = 0"},
		{"f9", "r1", "return r1"},
		{"r1", "m2", "p = 1"},
		{"m2", "f0", "call r2"},
		{"f9", "r2", "return r2"},
		{"r2", "m3", "skip"},
	}, block("f", "f0", "f9", []string{"f1"}, []string{"p"}))
}

// targetProgram reaches the error location ferr inside f.
func targetProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "m1", "p = 0"},
		{"m1", "f0", "call r1"},
		{"f0", "ferr", "assume p == 0"},
		{"f0", "f9", "assume p != 0"},
		{"f9", "r1", "return r1"},
	}, block("f", "f0", "f9", []string{"ferr"}, []string{"p"}))
}

// nestedTargetProgram reaches ferr in f, called from g, called from main.
func nestedTargetProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "m1", "p = 0"},
		{"m1", "g0", "call r1"},
		{"g0", "g1", "skip"},
		{"g1", "f0", "call rg"},
		{"f0", "ferr", "assume p == 0"},
		{"f0", "f9", "assume p != 0"},
		{"f9", "rg", "return rg"},
		{"rg", "g9", "skip"},
		{"g9", "r1", "return r1"},
	},
		block("g", "g0", "g9", []string{"g1", "rg"}, []string{"p"}),
		block("f", "f0", "f9", []string{"ferr"}, []string{"p"}),
	)
}

// selfRecursiveProgram recurses into f with an entry equal to the first one.
func selfRecursiveProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "f0", "call r0"},
		{"f0", "f9", "assume n == 0"},
		{"f0", "f1", "assume n != 0"},
		{"f1", "f2", "n = *"},
		{"f2", "f0", "call r"},
		{"f9", "r", "return r"},
		{"r", "f9", "skip"},
		{"f9", "r0", "return r0"},
	}, recursive(block("f", "f0", "f9", []string{"f1", "f2", "r"}, []string{"n"}), "n"))
}

// widenedRecursionProgram enters f with n zero and recurses with n unknown,
// a state that subsumes the first entry without being subsumed by it.
func widenedRecursionProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "m1", "n = 0"},
		{"m1", "f0", "call r0"},
		{"f0", "f9", "skip"},
		{"f0", "f2", "n = *"},
		{"f2", "f0", "call r"},
		{"f9", "r", "return r"},
		{"r", "f9", "skip"},
		{"f9", "r0", "return r0"},
	}, recursive(block("f", "f0", "f9", []string{"f2", "r"}, []string{"n"}), "n"))
}

// longBlockProgram needs five iterations to converge inside f.
func longBlockProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "m1", "p = 5"},
		{"m1", "f0", "call r1"},
		{"f0", "f1", "skip"},
		{"f1", "f2", "skip"},
		{"f2", "f3", "skip"},
		{"f3", "f9", "skip"},
		{"f9", "r1", "return r1"},
	}, block("f", "f0", "f9", []string{"f1", "f2", "f3"}, []string{"p"}))
}

// sharedProgram branches into f and g. f calls h and s, g calls s.
func sharedProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "a1", "assume x == 0"},
		{"a1", "f0", "call ra"},
		{"m0", "b1", "assume x != 0"},
		{"b1", "g0", "call rb"},
		{"f0", "h0", "call fh"},
		{"h0", "h9", "y = 0"},
		{"h9", "fh", "return fh"},
		{"fh", "s0", "call fs"},
		{"s0", "s9", "z = 0"},
		{"s9", "fs", "return fs"},
		{"fs", "f9", "skip"},
		{"f9", "ra", "return ra"},
		{"g0", "s0", "call gs"},
		{"s9", "gs", "return gs"},
		{"gs", "g9", "skip"},
		{"g9", "rb", "return rb"},
	},
		block("f", "f0", "f9", []string{"fh", "fs"}, []string{"y", "z"}),
		block("g", "g0", "g9", []string{"gs"}, []string{"z"}),
		block("h", "h0", "h9", nil, []string{"y"}),
		block("s", "s0", "s9", nil, []string{"z"}),
	)
}

// branchingTargetProgram calls f on two branches; only one leads to err.
func branchingTargetProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "a1", "assume x == 0"},
		{"a1", "f0", "call ra"},
		{"ra", "err", "skip"},
		{"m0", "b1", "assume x != 0"},
		{"b1", "f0", "call rb"},
		{"rb", "m9", "skip"},
		{"f0", "f9", "skip"},
		{"f9", "ra", "return ra"},
		{"f9", "rb", "return rb"},
	}, block("f", "f0", "f9", nil, nil))
}

// safeLoopProgram keeps n non-zero around the loop L, so err is unreachable.
func safeLoopProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "L0", "n = 5"},
		{"L0", "L1", "assume n != 0"},
		{"L1", "L0", "n = 5"},
		{"L0", "L9", "skip"},
		{"L9", "err", "assume n == 0"},
	}, loopBlock("L", "L0", "L9", []string{"L1"}, []string{"n"}))
}

// unsafeLoopProgram clears n in the body of L and reaches Lerr on the second
// pass through the head.
func unsafeLoopProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "L0", "n = 5"},
		{"L0", "L1", "skip"},
		{"L1", "L0", "n = 0"},
		{"L0", "Lerr", "assume n == 0"},
		{"L0", "L9", "skip"},
		{"L9", "done", "skip"},
	}, loopBlock("L", "L0", "L9", []string{"L1", "Lerr"}, []string{"n"}))
}

// loopThenCallProgram leaves the loop L straight into a call of f.
func loopThenCallProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "L0", "n = 0"},
		{"L0", "L1", "skip"},
		{"L1", "L9", "skip"},
		{"L9", "f0", "call r1"},
		{"f0", "f9", "skip"},
		{"f9", "r1", "return r1"},
		{"r1", "err", "assume n == 0"},
	},
		loopBlock("L", "L0", "L9", []string{"L1"}, []string{"n"}),
		block("f", "f0", "f9", nil, nil),
	)
}

// growingLoopProgram havocs n in the body of L, so the head is entered once
// with n zero and once with n unknown.
func growingLoopProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "m0", []edge{
		{"m0", "L0", "n = 0"},
		{"L0", "L1", "skip"},
		{"L1", "L0", "n = *"},
		{"L0", "L9", "skip"},
		{"L9", "err", "assume n != 0"},
	}, loopBlock("L", "L0", "L9", []string{"L1"}, []string{"n"}))
}
