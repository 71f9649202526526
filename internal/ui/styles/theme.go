package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand colors, blended across the title
	Primary   lipgloss.Color // Violet - focused items, current track
	Secondary lipgloss.Color // Pink - gradient end, progress

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Current lipgloss.Style // Current queue entry
	Cursor  lipgloss.Style // Cursor background highlight
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#8b5cf6"),
	Secondary: lipgloss.Color("#ec4899"),

	FgBase:   lipgloss.Color("#d4d4d8"),
	FgMuted:  lipgloss.Color("#8a8a93"),
	FgSubtle: lipgloss.Color("#5a5a63"),

	BgCursor: lipgloss.Color("#2e2a3d"),

	Border:      lipgloss.Color("#4a4a55"),
	BorderFocus: lipgloss.Color("#8b5cf6"),

	Error:   lipgloss.Color("#f87171"),
	Warning: lipgloss.Color("#fbbf24"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Current: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Brand renders text with the theme's primary-to-secondary gradient.
func (t *Theme) Brand(text string) string {
	return ApplyBoldGradient(text, t.Primary, t.Secondary)
}
