package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lchandle/internal/tui/commands"
	"github.com/javiermolinar/lchandle/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		if m.focus == FocusRule {
			if completed, ok := input.PromptAutocomplete(m.ruleInput.Value(), input.Commands); ok {
				m.ruleInput.SetValue(completed)
				m.ruleInput.CursorEnd()
				return m, nil
			}
		}
		return m.toggleFocus(), nil

	case "shift+tab":
		return m.toggleFocus(), nil

	case "ctrl+y":
		return m.copyLowercasedHandle()

	case "enter":
		if m.focus == FocusRule {
			return m.submitRule()
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// toggleFocus moves focus to the other input.
func (m Model) toggleFocus() Model {
	from := m.focus
	if m.focus == FocusHandle {
		m.focus = FocusRule
		m.handleInput.Blur()
		m.ruleInput.Focus()
	} else {
		m.focus = FocusHandle
		m.ruleInput.Blur()
		m.handleInput.Focus()
	}
	LogFocusChange(from, m.focus)
	return m
}

// submitRule appends the rule input's value to the view model, or runs it
// as a slash command.
func (m Model) submitRule() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.ruleInput.Value())
	if value == "" {
		return m.setStatus("Rule is empty", true)
	}

	cmd, err := input.Parse(value)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.ruleInput.Reset()

	switch cmd.Kind {
	case input.KindCharacters:
		m.vm.SetCharacters(cmd.Characters)
		return m.setStatus(fmt.Sprintf("characters = %d", cmd.Characters), false)
	case input.KindClassName:
		m.vm.SetClassName(cmd.ClassName)
		return m.setStatus("className = "+cmd.ClassName, false)
	case input.KindClearRules:
		m.vm.SetRules(nil)
		return m.setStatus("Cleared rules", false)
	case input.KindSetRules:
		m.vm.SetRules(cmd.Rules)
		return m.setStatus(fmt.Sprintf("Replaced rules (%d)", len(cmd.Rules)), false)
	default:
		m.vm.AppendRule(value)
		return m.setStatus("Added rule "+value, false)
	}
}

// copyLowercasedHandle copies the derived handle to the clipboard.
func (m Model) copyLowercasedHandle() (tea.Model, tea.Cmd) {
	lc := m.vm.LowercasedHandle()
	if lc == "" {
		return m.setStatus("Nothing to copy", true)
	}
	return m, commands.Copy(m.writeClipboard, lc)
}
