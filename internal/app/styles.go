package app

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bam/internal/core/domain"
)

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorGreen = lipgloss.Color("42")
	colorRed   = lipgloss.Color("196")
	colorAmber = lipgloss.Color("214")
)

// styles renders the verdict listing. The renderer detects the color profile
// of the output, so plain writers get plain text.
type styles struct {
	program    lipgloss.Style
	detail     lipgloss.Style
	status     map[domain.AnalysisStatus]lipgloss.Style
	fallback   lipgloss.Style
	trace      lipgloss.Style
	proofCheck lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		program: r.NewStyle().Bold(true),
		detail:  r.NewStyle().Foreground(colorSlate),
		status: map[domain.AnalysisStatus]lipgloss.Style{
			domain.StatusSafe:       r.NewStyle().Foreground(colorGreen).Bold(true),
			domain.StatusUnsafe:     r.NewStyle().Foreground(colorRed).Bold(true),
			domain.StatusIncomplete: r.NewStyle().Foreground(colorAmber).Bold(true),
			domain.StatusFailed:     r.NewStyle().Foreground(colorRed).Faint(true),
		},
		fallback:   r.NewStyle().Foreground(colorSlate),
		trace:      r.NewStyle().PaddingLeft(4),
		proofCheck: r.NewStyle().Foreground(colorIris),
	}
}

func (s styles) verdict(status domain.AnalysisStatus, label string) string {
	st, ok := s.status[status]
	if !ok {
		st = s.fallback
	}
	return st.Render(label)
}
