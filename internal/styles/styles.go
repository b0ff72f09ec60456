// Package styles holds the terminal styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	OK      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	Warn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // yellow
	Fail    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	Label   = lipgloss.NewStyle().Bold(true)
	Heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).MarginBottom(1) // cyan
)

// Tags for doctor-style check lines.
func OKTag() string   { return OK.Render("[OK]") }
func WarnTag() string { return Warn.Render("[WARN]") }
func FailTag() string { return Fail.Render("[FAIL]") }

// Enabled renders an autostart status word.
func Enabled(enabled bool) string {
	if enabled {
		return OK.Render("enabled")
	}
	return Dim.Render("disabled")
}

// KeyValue renders "key: value" with an aligned, bold key.
func KeyValue(key, value string, width int) string {
	return Label.Width(width).Render(key+":") + " " + value
}
