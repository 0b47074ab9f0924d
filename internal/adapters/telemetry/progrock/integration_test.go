package progrock_test

import (
	"context"
	"testing"

	"go.trai.ch/bam/internal/adapters/telemetry/progrock"
	"go.trai.ch/bam/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "block main")

	if _, err := vertex.Stdout().Write([]byte("exploring\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}

	vertex.Log(domain.LogLevelDebug, "skipped recursive entry of block f")
	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
