package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// 색상 정의
var Error = lipgloss.Color("#FF5F56")

// Diagnostic styles for one output stream. Colors are dropped when the
// stream is not a terminal.
type Diagnostic struct {
	label lipgloss.Style
}

func NewDiagnostic(w io.Writer) *Diagnostic {
	r := lipgloss.NewRenderer(w)
	return &Diagnostic{
		label: r.NewStyle().Bold(true).Foreground(Error),
	}
}

// Line "<label> <detail>"
func (d *Diagnostic) Line(label, detail string) string {
	return d.label.Render(label) + " " + detail
}

