package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lchandle/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case commands.CopiedMsg:
		return m.setStatus(fmt.Sprintf("Copied %q", msg.Text), false)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusIsErr = true
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, commands.ClearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusIsErr = false
		}
		return m, nil
	}

	// Forward everything else (cursor blink) to the focused input.
	return m.updateFocusedInput(msg)
}

// setStatus shows a temporary status message.
func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusMsg = text
	m.statusIsErr = isErr
	m.statusTime = time.Now().Add(commands.StatusTTL)
	return m, commands.ClearStatusAfter(commands.StatusTTL)
}

// resizeInputs fits both inputs to the terminal width.
func (m *Model) resizeInputs() {
	// padding (4) + label column + input border and padding (4) + cursor
	w := m.width - 4 - labelWidth - 4 - 1
	if w < 10 {
		w = 10
	}
	m.handleInput.Width = w
	m.ruleInput.Width = w
}

// updateFocusedInput forwards msg to the focused input and pushes the
// handle input's value into the view model.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusHandle:
		m.handleInput, cmd = m.handleInput.Update(msg)
		m.vm.SetHandle(m.handleInput.Value())
	case FocusRule:
		m.ruleInput, cmd = m.ruleInput.Update(msg)
	}
	return m, cmd
}
