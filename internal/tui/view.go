package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lchandle/internal/tui/input"
)

const helpText = "tab focus • enter add rule • /cmd edit fields • ctrl+y copy lowercased • esc quit"

// View renders the bound view model.
func (m Model) View() string {
	s := m.styles
	state := m.vm.Snapshot()

	sections := []string{
		m.renderTitle(),
		"",
		m.renderInputRow("Handle", m.handleInput.View(), m.focus == FocusHandle),
		m.renderField("Lowercased", s.DerivedStyle.Render(state.LowercasedHandle)),
		m.renderField("Characters", s.ValueStyle.Render(strconv.Itoa(state.Characters))),
		m.renderField("Class name", s.ValueStyle.Render(state.ClassName)),
		"",
		s.LabelStyle.Render("Rules"),
		m.renderRules(state.Rules),
		"",
		m.renderInputRow("New rule", m.ruleInput.View(), m.focus == FocusRule),
		m.renderSuggestions(),
		m.renderStatus(),
		m.renderFooter(),
	}

	return s.AppStyle.Render(m.fit(lipgloss.JoinVertical(lipgloss.Left, sections...)))
}

func (m Model) renderTitle() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.BadgeStyle.Render("lchandle"),
		" ",
		m.styles.MutedStyle.Render(m.theme.Name),
	)
}

func (m Model) renderField(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.LabelStyle.Render(label), value)
}

func (m Model) renderInputRow(label, input string, focused bool) string {
	box := m.styles.InputBlurredStyle
	if focused {
		box = m.styles.InputFocusedStyle
	}
	// Align the label with the input's text line, inside the border.
	return lipgloss.JoinHorizontal(lipgloss.Center, m.styles.LabelStyle.Render(label), box.Render(input))
}

func (m Model) renderRules(rules []string) string {
	if len(rules) == 0 {
		return m.styles.MutedStyle.Render("  (none)")
	}
	lines := make([]string, len(rules))
	for i, r := range rules {
		idx := m.styles.RuleIdxStyle.Render(strconv.Itoa(i+1) + ".")
		lines[i] = idx + " " + m.styles.RuleStyle.Render(r)
	}
	return strings.Join(lines, "\n")
}

// renderSuggestions lists slash commands matching the rule input.
func (m Model) renderSuggestions() string {
	if m.focus != FocusRule {
		return ""
	}
	matches := input.PromptMatchingCommands(m.ruleInput.Value(), input.Commands)
	if len(matches) == 0 {
		return ""
	}
	lines := make([]string, len(matches))
	for i, c := range matches {
		lines[i] = strings.Repeat(" ", labelWidth) + m.styles.RuleStyle.Render(c.Name) + "  " + m.styles.MutedStyle.Render(c.Description)
	}
	return strings.Join(lines, "\n")
}

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

func (m Model) renderStatus() string {
	if m.statusIsErr {
		return m.styles.ErrorStyle.Render(m.statusMsgOrDefault())
	}
	return m.styles.StatusStyle.Render(m.statusMsgOrDefault())
}

func (m Model) renderFooter() string {
	changes := fmt.Sprintf("changes: %d", m.changes.count)
	if m.changes.count > 0 {
		changes += " (last: " + m.changes.last.String() + ")"
	}
	return m.styles.MutedStyle.Render(helpText + "  │  " + changes)
}

// fit truncates each line to the terminal's inner width.
func (m Model) fit(content string) string {
	inner := m.width - m.styles.AppStyle.GetHorizontalFrameSize()
	if m.width <= 0 || inner <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > inner {
			lines[i] = ansi.Truncate(line, inner, "…")
		}
	}
	return strings.Join(lines, "\n")
}
