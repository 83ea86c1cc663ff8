package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lchandle/internal/tui/theme"
)

func TestNewStyles_UsesThemeColors(t *testing.T) {
	palette := &theme.Theme{
		Bg:          "#101010",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Derived:     "#00ff00",
		Rule:        "#0000ff",
		Warning:     "#ff00ff",
		Border:      "#333333",
		InputCursor: "#ffff00",
	}
	styles := NewStyles(palette)

	assertFg := func(t *testing.T, name string, style lipgloss.Style, want string) {
		t.Helper()
		fg, ok := style.GetForeground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s foreground type = %T, want lipgloss.Color", name, style.GetForeground())
		}
		if fg != lipgloss.Color(want) {
			t.Fatalf("%s foreground = %q, want %q", name, fg, want)
		}
	}

	assertFg(t, "TitleStyle", styles.TitleStyle, palette.Accent)
	assertFg(t, "LabelStyle", styles.LabelStyle, palette.FgMuted)
	assertFg(t, "DerivedStyle", styles.DerivedStyle, palette.Derived)
	assertFg(t, "RuleStyle", styles.RuleStyle, palette.Rule)
	assertFg(t, "ErrorStyle", styles.ErrorStyle, palette.Warning)
	assertFg(t, "InputCursorStyle", styles.InputCursorStyle, palette.InputCursor)

	bg, ok := styles.BadgeStyle.GetForeground().(lipgloss.Color)
	if !ok || bg != lipgloss.Color(palette.Bg) {
		t.Fatalf("BadgeStyle foreground = %v, want %q", styles.BadgeStyle.GetForeground(), palette.Bg)
	}

	border, ok := styles.InputBlurredStyle.GetBorderTopForeground().(lipgloss.Color)
	if !ok || border != lipgloss.Color(palette.Border) {
		t.Fatalf("InputBlurredStyle border = %v, want %q", styles.InputBlurredStyle.GetBorderTopForeground(), palette.Border)
	}
}

func TestApplyInput(t *testing.T) {
	th, err := theme.Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) unexpected error: %v", err)
	}
	styles := NewStyles(th)

	in := textinput.New()
	styles.applyInput(&in)

	fg, ok := in.TextStyle.GetForeground().(lipgloss.Color)
	if !ok || fg != lipgloss.Color(th.Fg) {
		t.Errorf("TextStyle foreground = %v, want %q", in.TextStyle.GetForeground(), th.Fg)
	}
}
