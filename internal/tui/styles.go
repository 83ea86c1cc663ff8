package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lchandle/internal/tui/theme"
)

// labelWidth is the fixed width of the field label column.
const labelWidth = 12

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color
	colorDerived lipgloss.Color
	colorRule    lipgloss.Color
	colorWarning lipgloss.Color
	colorBorder  lipgloss.Color
	colorCursor  lipgloss.Color

	AppStyle     lipgloss.Style
	TitleStyle   lipgloss.Style
	BadgeStyle   lipgloss.Style // Text drawn on the accent color
	LabelStyle   lipgloss.Style
	ValueStyle   lipgloss.Style
	DerivedStyle lipgloss.Style
	RuleStyle    lipgloss.Style
	RuleIdxStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Input boxes
	InputFocusedStyle lipgloss.Style
	InputBlurredStyle lipgloss.Style

	// Text input internals
	InputTextStyle        lipgloss.Style
	InputPlaceholderStyle lipgloss.Style
	InputCursorStyle      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:      theme.Color(t.Bg),
		colorFg:      theme.Color(t.Fg),
		colorFgMuted: theme.Color(t.FgMuted),
		colorAccent:  theme.Color(t.Accent),
		colorDerived: theme.Color(t.Derived),
		colorRule:    theme.Color(t.Rule),
		colorWarning: theme.Color(t.Warning),
		colorBorder:  theme.Color(t.Border),
		colorCursor:  theme.Color(t.InputCursor),
	}

	s.AppStyle = lipgloss.NewStyle().
		Padding(1, 2).
		Foreground(s.colorFg)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)

	s.BadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(s.colorBg).
		Background(s.colorAccent)

	s.LabelStyle = lipgloss.NewStyle().
		Width(labelWidth).
		Foreground(s.colorFgMuted)

	s.ValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.DerivedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorDerived)

	s.RuleStyle = lipgloss.NewStyle().
		Foreground(s.colorRule)

	s.RuleIdxStyle = lipgloss.NewStyle().
		Width(4).
		Align(lipgloss.Right).
		Foreground(s.colorFgMuted)

	s.MutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorWarning)

	s.InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)

	s.InputBlurredStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBorder).
		Padding(0, 1)

	s.InputTextStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.InputPlaceholderStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.InputCursorStyle = lipgloss.NewStyle().Foreground(s.colorCursor)

	return s
}

// applyInput styles a text input with the theme colors.
func (s *Styles) applyInput(in *textinput.Model) {
	in.PlaceholderStyle = s.InputPlaceholderStyle
	in.TextStyle = s.InputTextStyle
	in.PromptStyle = s.InputTextStyle
	in.Cursor.Style = s.InputCursorStyle
	in.Cursor.TextStyle = s.InputTextStyle
}
