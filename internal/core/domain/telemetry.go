package domain

import "strings"

// AnalysisStatus is the verdict of analysing one program.
type AnalysisStatus string

const (
	// StatusPending indicates the analysis has not finished yet.
	StatusPending AnalysisStatus = "pending"
	// StatusSafe indicates the exploration converged without reaching a target.
	StatusSafe AnalysisStatus = "safe"
	// StatusUnsafe indicates a target was reached.
	StatusUnsafe AnalysisStatus = "unsafe"
	// StatusIncomplete indicates some block analysis did not converge.
	StatusIncomplete AnalysisStatus = "incomplete"
	// StatusFailed indicates the analysis stopped with an error.
	StatusFailed AnalysisStatus = "failed"
)

// IsTerminal reports whether s is a final verdict.
func (s AnalysisStatus) IsTerminal() bool {
	switch s {
	case StatusSafe, StatusUnsafe, StatusIncomplete, StatusFailed:
		return true
	default:
		return false
	}
}

// NormalizeAnalysisStatus converts a string to an AnalysisStatus, defaulting to pending if unknown.
func NormalizeAnalysisStatus(s string) AnalysisStatus {
	switch strings.ToLower(s) {
	case string(StatusSafe):
		return StatusSafe
	case string(StatusUnsafe):
		return StatusUnsafe
	case string(StatusIncomplete):
		return StatusIncomplete
	case string(StatusFailed):
		return StatusFailed
	default:
		return StatusPending
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel parses a level name, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}
