package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func printStyled(w io.Writer, style lipgloss.Style, icon, plainPrefix, message string) {
	if isTerminal(w) {
		fmt.Fprintf(w, "%s %s\n", style.Render(icon), message)
	} else {
		fmt.Fprintf(w, "%s%s\n", plainPrefix, message)
	}
}

// PrintSuccess prints a success message to w
func PrintSuccess(w io.Writer, message string) {
	printStyled(w, successStyle, "✓", "", message)
}

// PrintError prints an error message to w
func PrintError(w io.Writer, message string) {
	printStyled(w, errorStyle, "✗", "ERROR: ", message)
}

// PrintInfo prints an info message to w
func PrintInfo(w io.Writer, message string) {
	printStyled(w, progressStyle, "ℹ", "", message)
}

// PrintWarning prints a warning message to w
func PrintWarning(w io.Writer, message string) {
	printStyled(w, warningStyle, "⚠", "WARNING: ", message)
}
