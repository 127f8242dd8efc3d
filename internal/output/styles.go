package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: package names, file paths, targets.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the completion checkmark and success summaries.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for skipped packages and degraded-to-guard dependencies.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (package names, paths, targets).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleSkip styles skip notices.
	StyleSkip = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (separators, counts).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// IsTTY reports whether stdout is a terminal. Styled summary output is only
// rendered on a terminal; piped output stays plain.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Noun renders s with StyleNoun when stdout is a terminal.
func Noun(s string) string {
	if !IsTTY() {
		return s
	}
	return StyleNoun.Render(s)
}

// Summary renders s with StyleSummary when stdout is a terminal.
func Summary(s string) string {
	if !IsTTY() {
		return s
	}
	return StyleSummary.Render(s)
}

// Skip renders s with StyleSkip when stdout is a terminal.
func Skip(s string) string {
	if !IsTTY() {
		return s
	}
	return StyleSkip.Render(s)
}
