package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the palette.
type Styles struct {
	App          lipgloss.Style
	Prompt       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Detail       lipgloss.Style
	KindTag      lipgloss.Style
	Shortcut     lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Spinner      lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Detail: lipgloss.NewStyle().
			Foreground(subtle),

		KindTag: lipgloss.NewStyle().
			Foreground(accent),

		Shortcut: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Spinner: lipgloss.NewStyle().
			Foreground(accent),
	}
}
