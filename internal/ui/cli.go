// Package ui provides the command-line interface for lchandle.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lchandle/internal/config"
	"github.com/javiermolinar/lchandle/internal/tui"
	"github.com/javiermolinar/lchandle/internal/viewmodel"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string // --config override
	root       *cobra.Command
	debug      bool // Enable debug logging
	out        io.Writer
	in         io.Reader
}

// NewApp creates a new CLI application with the given config.
// A nil config is loaded from the default path on first use.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, out: os.Stdout, in: os.Stdin}

	a.root = &cobra.Command{
		Use:   "lchandle",
		Short: "Type a handle, see it lowercased",
		Long: `lchandle binds a small view model to your terminal.

Type a handle and watch its lowercased form update as you go,
browse and extend the list of rules, and copy the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			vm, err := a.newViewModel()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(vm, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default "+config.DefaultConfigPath()+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.lowerCmd())

	return a
}

// SetOutput redirects command output.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetInput redirects interactive input.
func (a *App) SetInput(r io.Reader) {
	a.in = r
	a.root.SetIn(r)
}

// SetArgs sets the command-line arguments, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		// Needs no config, so a broken config file cannot block it.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "lchandle %s (commit: %s)\n", Version, Commit)
		},
	}
}

// configFilePath returns the config file in effect.
func (a *App) configFilePath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the config when none was supplied or --config is set.
func (a *App) loadConfig() error {
	if a.config != nil && a.configPath == "" {
		return nil
	}
	cfg, err := config.LoadFrom(a.configFilePath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg
	return nil
}

// newViewModel creates a view model that folds with the configured locale.
func (a *App) newViewModel() (*viewmodel.ViewModel, error) {
	fold, err := a.config.Folder()
	if err != nil {
		return nil, err
	}
	return viewmodel.New(viewmodel.WithFolder(fold)), nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
