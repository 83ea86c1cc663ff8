package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lchandle/internal/casefold"
	"github.com/javiermolinar/lchandle/internal/config"
	"github.com/javiermolinar/lchandle/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var initOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.
With --init, only creates the file and prints it, without prompting.

Example:
  lchandle config
  lchandle config --init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfig(initOnly)
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Write defaults if no config file exists, print the config, and exit")

	return cmd
}

func (a *App) runConfig(initOnly bool) error {
	configPath := a.configFilePath()
	fmt.Fprintf(a.out, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	exists, err := config.Exists(configPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.out, "Created %s\n\n", configPath)
	}

	printConfig(a.out, cfg)
	if initOnly {
		return nil
	}

	reader := bufio.NewReader(a.in)
	if !promptYesNo(a.out, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.UI.Theme = promptTheme(a.out, reader, cfg.UI.Theme)
	cfg.Text.Locale = promptLocale(a.out, reader, cfg.Text.Locale)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	a.config = cfg

	fmt.Fprintln(a.out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	locale := cfg.Text.Locale
	if locale == "" {
		locale = "(language-neutral)"
	}
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[ui]")
	fmt.Fprintf(w, "  theme  = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[text]")
	fmt.Fprintf(w, "  locale = %s\n", locale)
}

func promptYesNo(w io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// promptValue reads one line, returning current when the line is empty.
// ok is false once input is exhausted.
func promptValue(w io.Writer, reader *bufio.Reader, label, current string) (value string, ok bool) {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, err := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current, err == nil
	}
	return input, true
}

func promptTheme(w io.Writer, reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value, ok := promptValue(w, reader, label, current)
		value = strings.ToLower(value)
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
		if !ok {
			return current
		}
	}
}

func promptLocale(w io.Writer, reader *bufio.Reader, current string) string {
	for {
		value, ok := promptValue(w, reader, "Locale (BCP 47, '-' for none)", current)
		if value == "-" {
			return ""
		}
		if casefold.ValidLocale(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid locale %q\n", value)
		if !ok {
			return current
		}
	}
}
