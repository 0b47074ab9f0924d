package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bam/internal/core/domain"
)

func TestAnalysisStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.AnalysisStatus
		isTerminal bool
	}{
		{"Pending", domain.StatusPending, false},
		{"Safe", domain.StatusSafe, true},
		{"Unsafe", domain.StatusUnsafe, true},
		{"Incomplete", domain.StatusIncomplete, true},
		{"Failed", domain.StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestNormalizeAnalysisStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.AnalysisStatus
	}{
		{"safe", domain.StatusSafe},
		{"UNSAFE", domain.StatusUnsafe},
		{"incomplete", domain.StatusIncomplete},
		{"failed", domain.StatusFailed},
		{"unknown", domain.StatusPending},
		{"", domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeAnalysisStatus(tt.input))
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.LogLevel
		name     string
	}{
		{"debug", domain.LogLevelDebug, "DEBUG"},
		{"info", domain.LogLevelInfo, "INFO"},
		{"warning", domain.LogLevelWarn, "WARN"},
		{"ERROR", domain.LogLevelError, "ERROR"},
		{"bogus", domain.LogLevelInfo, "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl := domain.ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, lvl)
			assert.Equal(t, tt.name, lvl.String())
		})
	}
}
