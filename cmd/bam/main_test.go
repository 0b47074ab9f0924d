package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bam/internal/app"
)

const program = `
name: guarded
entry: m0
edges:
  - {from: m0, to: m1, stmt: "n = 5"}
  - {from: m1, to: err, stmt: "assume n == 0"}
targets: [err]
`

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guarded.bam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(program), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name:         "safe program",
			args:         []string{"analyze", "--no-report", path},
			expectedExit: 0,
			expectedOut:  "guarded: SAFE",
		},
		{
			name:         "missing program",
			args:         []string{"analyze", "--no-report", filepath.Join(t.TempDir(), "missing.bam.yaml")},
			expectedExit: 1,
			expectedOut:  "FAILED",
		},
		{
			name:         "unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			exitCode := run(context.Background(), tt.args, new(bytes.Buffer), func(a *app.App) {
				a.WithOutput(out)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.expectedOut != "" {
				assert.True(t, strings.Contains(out.String(), tt.expectedOut), out.String())
			}
		})
	}
}
