// Package console renders the bootstrap status lines for a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Step lipgloss.Style
	OK   lipgloss.Style
	URL  lipgloss.Style
	Hint lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Step: lipgloss.NewStyle().Faint(true),
		OK:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		URL:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Hint: lipgloss.NewStyle().Faint(true),
	}
}

// Reporter writes the fixed status lines of a run. It implements
// ports.StatusReporter.
type Reporter struct {
	out    io.Writer
	styles Styles
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out, styles: DefaultStyles()}
}

func (r *Reporter) Creating(envDir string) {
	fmt.Fprintln(r.out, r.styles.Step.Render(fmt.Sprintf("Creating virtual environment in %s and installing dependencies...", envDir)))
}

func (r *Reporter) Ready() {
	fmt.Fprintln(r.out, r.styles.OK.Render("Dependencies ready."))
}

func (r *Reporter) Serving(url string) {
	fmt.Fprintln(r.out, "The app will be available at "+r.styles.URL.Render(url))
	fmt.Fprintln(r.out, r.styles.Hint.Render("Press Ctrl+C to stop the server."))
}
