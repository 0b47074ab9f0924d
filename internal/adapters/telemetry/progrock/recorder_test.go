package progrock_test

import (
	"context"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/bam/internal/adapters/telemetry/progrock"
	"go.trai.ch/bam/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordCarriesVertex(t *testing.T) {
	recorder := progrock.New()

	ctx, v := recorder.Record(context.Background(), "block f", ports.WithDigest("f@f0{}/*"))
	assert.Same(t, v, ports.VertexFromContext(ctx))

	v.Cached()
	assert.NoError(t, recorder.Close())
}

func TestVertexDigest(t *testing.T) {
	key := ports.WithDigest("f@f0{p:0}/*")

	assert.Equal(t, digest.FromString("program main"), progrock.VertexDigest("program main", nil))
	assert.Equal(t,
		progrock.VertexDigest("block f", []ports.VertexOption{key}),
		progrock.VertexDigest("block f again", []ports.VertexOption{key}),
		"a cache hit shares the vertex of the original analysis")
	assert.NotEqual(t,
		progrock.VertexDigest("block f", []ports.VertexOption{key}),
		progrock.VertexDigest("block f", nil))
}
