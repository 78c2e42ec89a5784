// Writer implementation rendering styled reports for human review.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"scenforge/internal/export"
	"scenforge/internal/validate"
)

const defaultWidth = 80

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	optionalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// ConsoleWriter renders scenarios and validation results as styled text.
type ConsoleWriter struct {
	out   io.Writer
	width int
}

// NewConsoleWriter creates a ConsoleWriter for os.Stdout, sized to the
// terminal when one is attached.
func NewConsoleWriter() *ConsoleWriter {
	width := defaultWidth
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	return &ConsoleWriter{out: os.Stdout, width: width}
}

// WriteScenario renders a scenario card.
func (w *ConsoleWriter) WriteScenario(doc export.Document) error {
	s := doc.Scenario
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s | %s | doom %d", s.VictoryType, s.Difficulty, s.StartDoom)))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(s.Briefing, w.width))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Objectives"))
	b.WriteString("\n")
	for _, o := range s.Objectives {
		marker := "*"
		line := fmt.Sprintf("  %s %s", marker, o.Description)
		if o.Optional {
			line = optionalStyle.Render(line + " (optional)")
		}
		if o.Hidden {
			line += dimStyle.Render(" [hidden]")
		}
		b.WriteString(wordwrap.String(line, w.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Doom Events"))
	b.WriteString("\n")
	for _, ev := range s.DoomEvents {
		b.WriteString(fmt.Sprintf("  at %2d: %s\n", ev.Threshold, ev.Message))
	}

	if len(doc.Triggers) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Reveals"))
		b.WriteString("\n")
		for _, tr := range doc.Triggers {
			b.WriteString(fmt.Sprintf("  %s -> %s\n", tr.Source, tr.Reveals))
		}
	}

	fmt.Fprint(w.out, b.String())
	return nil
}

// WriteResult renders a validation report grouped by severity.
func (w *ConsoleWriter) WriteResult(res validate.Result) error {
	var b strings.Builder

	verdict := errorStyle.Render("INVALID")
	if res.Valid {
		verdict = infoStyle.Render("VALID")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", sectionStyle.Render("Validation:"), verdict))
	b.WriteString(dimStyle.Render(fmt.Sprintf("tiles=%d connected=%d connections=%d monsters=%d items=%d",
		res.Stats.TotalTiles, res.Stats.ConnectedTiles, res.Stats.Connections,
		res.Stats.Monsters, res.Stats.Items)))
	b.WriteString("\n")

	for _, sev := range []validate.Severity{validate.SeverityError, validate.SeverityWarning, validate.SeverityInfo} {
		for _, issue := range res.Issues {
			if issue.Severity != sev {
				continue
			}
			b.WriteString(w.renderIssue(issue))
			b.WriteString("\n")
		}
	}

	fmt.Fprint(w.out, b.String())
	return nil
}

func (w *ConsoleWriter) renderIssue(issue validate.Issue) string {
	var style lipgloss.Style
	switch issue.Severity {
	case validate.SeverityError:
		style = errorStyle
	case validate.SeverityWarning:
		style = warningStyle
	default:
		style = infoStyle
	}
	label := style.Render(fmt.Sprintf("[%s]", strings.ToUpper(string(issue.Severity))))
	line := fmt.Sprintf("  %s %s: %s", label, issue.Category, issue.Message)
	if issue.TileID != "" {
		line += dimStyle.Render(fmt.Sprintf(" tile=%s", issue.TileID))
	}
	if issue.ObjectiveID != "" {
		line += dimStyle.Render(fmt.Sprintf(" objective=%s", issue.ObjectiveID))
	}
	if issue.Details != "" {
		line += dimStyle.Render(fmt.Sprintf(" (%s)", issue.Details))
	}
	return wordwrap.String(line, w.width)
}
