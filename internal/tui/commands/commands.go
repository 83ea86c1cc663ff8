// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusTTL is how long a status message stays on screen.
const StatusTTL = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent when text was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// ClipboardWriter writes text to a clipboard.
type ClipboardWriter func(string) error

// Copy writes text with the given clipboard writer.
func Copy(write ClipboardWriter, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Text: text}
	}
}

// ClearStatusAfter emits ClearStatusMsg once d has elapsed.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
