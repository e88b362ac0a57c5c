package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	ColorCyan       = lipgloss.Color("14")
	ColorYellow     = lipgloss.Color("220")
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (module names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome such as file list bullets.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeading styles section headings ("Next steps:").
	StyleHeading = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles warning lines.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// Summary is what a generator run reports back to the user.
type Summary struct {
	Kind      string // "css module", "project", ...
	OutputDir string
	Files     []string
	Warnings  []string
	NextSteps []string
	DryRun    bool
}

// WriteSummary prints a generation summary to w.
func WriteSummary(w io.Writer, s Summary) {
	verb := "Created"
	if s.DryRun {
		verb = "Would create"
	}
	fmt.Fprintln(w, FormatCheckmark(fmt.Sprintf("%s %s at %s", verb, s.Kind, StyleNoun.Render(strings.TrimSuffix(s.OutputDir, "/")+"/"))))
	for _, f := range s.Files {
		fmt.Fprintf(w, "  %s %s\n", StyleDim.Render("-"), f)
	}

	if len(s.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleHeading.Render("Warnings:"))
		for _, msg := range s.Warnings {
			fmt.Fprintf(w, "  %s\n", StyleWarning.Render("! "+msg))
		}
	}

	if len(s.NextSteps) > 0 && !s.DryRun {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleHeading.Render("Next steps:"))
		for i, step := range s.NextSteps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}
}
