package bam_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/engine/bam"
)

// nestedLoopProgram has a loop block L around a loop block K and a function
// block f outside both.
func nestedLoopProgram(t *testing.T) *domain.Program {
	return buildProgram(t, "h", []edge{
		{"h", "a", "skip"},
		{"a", "k0", "skip"},
		{"a", "k1", "skip"},
		{"a", "out", "skip"},
		{"a", "f0", "skip"},
		{"a", "b", "skip"},
		{"k0", "k1", "skip"},
		{"k1", "k9", "skip"},
		{"k9", "b", "skip"},
		{"b", "x", "skip"},
		{"x", "out", "skip"},
		{"x", "f0", "skip"},
		{"f0", "f9", "skip"},
	},
		loopBlock("L", "h", "x", []string{"a", "k0", "k1", "k9", "b"}, nil),
		loopBlock("K", "k0", "k9", []string{"k1"}, nil),
		block("f", "f0", "f9", nil, nil),
	)
}

func TestForwardEdges(t *testing.T) {
	prog := nestedLoopProgram(t)
	f := newFixture(t, prog, nil, domain.AnalysisOptions{}, nil)

	tests := []struct {
		name  string
		block string
		from  string
		want  []string
	}{
		{
			name:  "inside the outer loop",
			block: "L",
			from:  "a",
			want:  []string{"k0", "f0", "b"},
		},
		{
			name: "whole program",
			from: "a",
			want: []string{"k0", "out", "f0"},
		},
		{
			name:  "inside the inner loop",
			block: "K",
			from:  "k1",
			want:  []string{"k9"},
		},
		{
			name:  "leaving the inner loop",
			block: "K",
			from:  "k9",
			want:  nil,
		},
		{
			name:  "exit of the outer loop toward a call",
			block: "L",
			from:  "x",
			want:  nil,
		},
		{
			name: "exit of the outer loop at top level",
			from: "x",
			want: []string{"out", "f0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b *domain.Block
			if tt.block != "" {
				b = prog.Blocks.Block(tt.block)
			}
			var got []string
			for _, e := range bam.ForwardEdgesForTest(f.actx, b, loc(tt.from)) {
				got = append(got, e.To.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("forward edges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
