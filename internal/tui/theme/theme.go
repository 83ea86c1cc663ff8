// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name    string `toml:"name"`
	Bg      string `toml:"bg"`       // Base background
	Fg      string `toml:"fg"`       // Primary foreground
	FgMuted string `toml:"fg_muted"` // Labels, help text
	Accent  string `toml:"accent"`   // Title, focused input border
	Derived string `toml:"derived"`  // Computed values (lowercased handle)
	Rule    string `toml:"rule"`     // Rule list entries
	Warning string `toml:"warning"`  // Errors on the status line

	// Optional overrides
	Border      string `toml:"border"`       // Unfocused input border
	InputCursor string `toml:"input_cursor"` // Text input cursor
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.Border == "" {
		t.Border = t.FgMuted
	}
	if t.InputCursor == "" {
		t.InputCursor = coalesce(t.Accent, t.Fg)
	}
	if t.Derived == "" {
		t.Derived = t.Accent
	}
	if t.Rule == "" {
		t.Rule = t.Fg
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
