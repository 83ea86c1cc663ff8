package tui

import (
	"errors"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lchandle/internal/tui/commands"
)

func TestHandleInput_BindsHandle(t *testing.T) {
	m := *New(nil)

	m = typeText(t, m, "MAESTRO")

	vm := m.ViewModel()
	if vm.Handle() != "MAESTRO" {
		t.Errorf("handle = %q, want MAESTRO", vm.Handle())
	}
	if vm.LowercasedHandle() != "maestro" {
		t.Errorf("lowercased = %q, want maestro", vm.LowercasedHandle())
	}
	if m.changes.count != 1 || m.changes.last.String() != "handle" {
		t.Errorf("changes = %+v, want one handle change", *m.changes)
	}
}

func TestHandleInput_Backspace(t *testing.T) {
	m := *New(nil)
	m = typeText(t, m, "Fish")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	if got := m.ViewModel().Handle(); got != "Fis" {
		t.Errorf("handle = %q, want Fis", got)
	}
	if got := m.ViewModel().LowercasedHandle(); got != "fis" {
		t.Errorf("lowercased = %q, want fis", got)
	}
}

func TestToggleFocus(t *testing.T) {
	m := *New(nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusRule {
		t.Fatalf("focus = %v, want Rule", m.focus)
	}
	if m.handleInput.Focused() || !m.ruleInput.Focused() {
		t.Error("expected rule input focused and handle input blurred")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != FocusHandle {
		t.Fatalf("focus = %v, want Handle", m.focus)
	}
}

func TestRuleInput_DoesNotTouchHandle(t *testing.T) {
	m := *New(nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "EAGLE")

	if got := m.ViewModel().Handle(); got != "" {
		t.Errorf("handle = %q, want empty", got)
	}
	if got := m.ruleInput.Value(); got != "EAGLE" {
		t.Errorf("rule input = %q, want EAGLE", got)
	}
}

func TestSubmitRule(t *testing.T) {
	m := *New(nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "  eagle ")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	want := []string{"lion", "tiger", "Maestro", "fish", "eagle"}
	if got := m.ViewModel().Rules(); !slices.Equal(got, want) {
		t.Errorf("rules = %v, want %v", got, want)
	}
	if m.ruleInput.Value() != "" {
		t.Errorf("rule input = %q, want cleared", m.ruleInput.Value())
	}
	if m.statusMsg != "Added rule eagle" {
		t.Errorf("status = %q", m.statusMsg)
	}
	if cmd == nil {
		t.Error("expected status expiry command")
	}
}

func TestSubmitRule_Empty(t *testing.T) {
	m := *New(nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "   ")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := len(m.ViewModel().Rules()); got != 4 {
		t.Errorf("rules len = %d, want 4", got)
	}
	if !m.statusIsErr || m.statusMsg != "Rule is empty" {
		t.Errorf("status = %q (err=%t)", m.statusMsg, m.statusIsErr)
	}
}

func TestEnterOnHandleIsIgnored(t *testing.T) {
	m := *New(nil)
	m = typeText(t, m, "x")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("expected no command")
	}
	if len(m.ViewModel().Rules()) != 4 {
		t.Error("enter on handle input must not add a rule")
	}
}

func TestCopyLowercasedHandle(t *testing.T) {
	var copied string
	m := *New(nil, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	m = typeText(t, m, "MAESTRO")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg := cmd()
	if copied != "maestro" {
		t.Errorf("clipboard = %q, want maestro", copied)
	}

	m, _ = send(t, m, msg)
	if m.statusMsg != `Copied "maestro"` {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestCopyLowercasedHandle_Empty(t *testing.T) {
	called := false
	m := *New(nil, WithClipboard(func(string) error {
		called = true
		return nil
	}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if called {
		t.Error("clipboard should not be written for an empty handle")
	}
	if m.statusMsg != "Nothing to copy" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestCopyLowercasedHandle_Error(t *testing.T) {
	m := *New(nil, WithClipboard(func(string) error {
		return errors.New("no display")
	}))
	m = typeText(t, m, "A")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	msg := cmd()
	if _, ok := msg.(commands.ErrMsg); !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}

	m, _ = send(t, m, msg)
	if !m.statusIsErr {
		t.Error("expected error status")
	}
	if m.statusMsg != "Error: copying to clipboard: no display" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := *New(nil)
		_, cmd := send(t, m, tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected QuitMsg", key)
		}
	}
}

func TestSubmitRule_SlashCommands(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		check  func(t *testing.T, m Model)
		status string
		isErr  bool
	}{
		{
			name:  "set characters",
			input: "/chars 9",
			check: func(t *testing.T, m Model) {
				if got := m.ViewModel().Characters(); got != 9 {
					t.Errorf("characters = %d, want 9", got)
				}
			},
			status: "characters = 9",
		},
		{
			name:  "set class name",
			input: "/class bluey",
			check: func(t *testing.T, m Model) {
				if got := m.ViewModel().ClassName(); got != "bluey" {
					t.Errorf("className = %q, want bluey", got)
				}
			},
			status: "className = bluey",
		},
		{
			name:  "clear rules",
			input: "/clear",
			check: func(t *testing.T, m Model) {
				if got := m.ViewModel().Rules(); len(got) != 0 {
					t.Errorf("rules = %v, want empty", got)
				}
			},
			status: "Cleared rules",
		},
		{
			name:  "replace rules",
			input: "/rules owl, cat",
			check: func(t *testing.T, m Model) {
				if got := m.ViewModel().Rules(); !slices.Equal(got, []string{"owl", "cat"}) {
					t.Errorf("rules = %v, want [owl cat]", got)
				}
			},
			status: "Replaced rules (2)",
		},
		{
			name:  "bad argument keeps input",
			input: "/chars many",
			check: func(t *testing.T, m Model) {
				if got := m.ViewModel().Characters(); got != 5 {
					t.Errorf("characters = %d, want 5", got)
				}
				if m.ruleInput.Value() != "/chars many" {
					t.Errorf("rule input = %q, want it kept for editing", m.ruleInput.Value())
				}
			},
			status: `/chars needs a number, got "many"`,
			isErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := *New(nil)
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
			m = typeText(t, m, tt.input)
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			tt.check(t, m)
			if m.statusMsg != tt.status {
				t.Errorf("status = %q, want %q", m.statusMsg, tt.status)
			}
			if m.statusIsErr != tt.isErr {
				t.Errorf("statusIsErr = %t, want %t", m.statusIsErr, tt.isErr)
			}
		})
	}
}

func TestTabAutocompletesCommand(t *testing.T) {
	m := *New(nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "/cha")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.focus != FocusRule {
		t.Fatalf("focus = %v, want Rule", m.focus)
	}
	if got := m.ruleInput.Value(); got != "/chars " {
		t.Errorf("rule input = %q, want %q", got, "/chars ")
	}

	m = typeText(t, m, "3")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.ViewModel().Characters(); got != 3 {
		t.Errorf("characters = %d, want 3", got)
	}
}
