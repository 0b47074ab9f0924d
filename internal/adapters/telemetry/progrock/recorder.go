// Package progrock records analysis progress on a progrock tape.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/bam/internal/core/ports"
)

// Recorder writes one progrock vertex per program run and per block
// analysis. A block vertex is keyed by the digest of its cache key, so a
// summary reused from the cache marks the vertex of the analysis that
// produced it instead of adding a new one.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New returns a Recorder on an in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder returns a Recorder writing vertices to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record opens the vertex for name and returns it together with a context
// carrying it. Without WithDigest the name is the digest source.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(vertexDigest(name, opts), name)}
	return ports.ContextWithVertex(ctx, v), v
}

func vertexDigest(name string, opts []ports.VertexOption) digest.Digest {
	cfg := ports.VertexConfig{Digest: name}
	for _, opt := range opts {
		opt(&cfg)
	}
	return digest.FromString(cfg.Digest)
}

// Close closes the tape if it can be closed.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
