package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	StatusBar lipgloss.Style
	FileName  lipgloss.Style

	Help lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bar := lipgloss.NewStyle().
		Background(lipgloss.Color("#282828")).
		Foreground(lipgloss.Color("#D2D2D2"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		StatusBar:     bar,
		FileName:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD255")).Bold(true),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// ThemedStyle builds the default style with the status line colors replaced
// by the given #RRGGBB values.
func ThemedStyle(statusBG, statusFG, highlight string) Style {
	st := DefaultStyle()
	st.StatusBar = lipgloss.NewStyle().
		Background(lipgloss.Color(statusBG)).
		Foreground(lipgloss.Color(statusFG))
	st.FileName = lipgloss.NewStyle().Foreground(lipgloss.Color(highlight)).Bold(true)
	return st
}
