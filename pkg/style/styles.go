// Package style holds the terminal palette shared by projbuild's renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Entry styles
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(DirectoryColor).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(FileColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// Warning banner shown before destructive actions
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Foreground(WarningColor).
			Bold(true).
			Padding(0, 1)
)

// DisableColor switches every style to plain output
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Entry renders name in the directory or file style
func Entry(name string, isDir bool) string {
	if isDir {
		return DirectoryStyle.Render(name)
	}
	return FileStyle.Render(name)
}
