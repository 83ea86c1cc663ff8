// Package tui provides the terminal user interface for lchandle.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lchandle/internal/casefold"
	"github.com/javiermolinar/lchandle/internal/config"
	"github.com/javiermolinar/lchandle/internal/tui/commands"
	"github.com/javiermolinar/lchandle/internal/tui/theme"
	"github.com/javiermolinar/lchandle/internal/viewmodel"
)

// Focus identifies which input receives keystrokes.
type Focus int

const (
	FocusHandle Focus = iota
	FocusRule
)

func (f Focus) String() string {
	switch f {
	case FocusHandle:
		return "Handle"
	case FocusRule:
		return "Rule"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// changeLog records view-model notifications. It lives behind a pointer so
// the observer keeps writing to the same place as the Model is copied.
type changeLog struct {
	count int
	last  viewmodel.Field
}

// Model is the main TUI model. It binds a ViewModel to two text inputs.
type Model struct {
	// Dependencies
	vm             *viewmodel.ViewModel
	config         *config.Config
	writeClipboard commands.ClipboardWriter

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	handleInput textinput.Model
	ruleInput   textinput.Model
	focus       Focus

	// View-model subscription
	changes     *changeLog
	unsubscribe func()

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg   string    // Temporary status/error message
	statusTime  time.Time // When to clear message
	statusIsErr bool
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithViewModel binds the TUI to an existing view model.
func WithViewModel(vm *viewmodel.ViewModel) ModelOption {
	return func(m *Model) {
		if vm != nil {
			m.vm = vm
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		if write != nil {
			m.writeClipboard = write
		}
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	handleInput := textinput.New()
	handleInput.Placeholder = "Type a handle"
	handleInput.Prompt = ""
	handleInput.CharLimit = 256
	handleInput.Width = 40
	styles.applyInput(&handleInput)

	ruleInput := textinput.New()
	ruleInput.Placeholder = "Add a rule"
	ruleInput.Prompt = ""
	ruleInput.CharLimit = 128
	ruleInput.Width = 40
	styles.applyInput(&ruleInput)

	m := &Model{
		config:         cfg,
		writeClipboard: clipboard.WriteAll,
		theme:          t,
		styles:         styles,
		handleInput:    handleInput,
		ruleInput:      ruleInput,
		focus:          FocusHandle,
		changes:        &changeLog{},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.vm == nil {
		fold, err := cfg.Folder()
		if err != nil {
			LogError("locale", err)
			fold = casefold.Lower
		}
		m.vm = viewmodel.New(viewmodel.WithFolder(fold))
	}

	m.handleInput.SetValue(m.vm.Handle())
	m.handleInput.Focus()

	vm, changes := m.vm, m.changes
	m.unsubscribe = vm.Subscribe(func(c viewmodel.Change) {
		changes.count++
		changes.last = c.Field
		LogViewModelChange(c, vm)
	})

	return m
}

// ViewModel returns the bound view model.
func (m Model) ViewModel() *viewmodel.ViewModel {
	return m.vm
}

// Close removes the model's view-model subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI.
func Run(vm *viewmodel.ViewModel, cfg *config.Config) error {
	return RunWithDebug(vm, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(vm *viewmodel.ViewModel, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg, WithViewModel(vm))
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
