package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lchandle/internal/viewmodel"
)

// DebugLogger logs keystrokes, focus changes, and view-model changes to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "lchandle-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	logPath := DebugLogPath
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": logPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogFocusChange logs a focus change between inputs.
func LogFocusChange(from, to Focus) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FOCUS_CHANGE", map[string]any{
		"from": from.String(),
		"to":   to.String(),
	})
}

// LogViewModelChange logs a view-model change notification with the new state.
func LogViewModelChange(c viewmodel.Change, vm *viewmodel.ViewModel) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{
		"field": c.Field.String(),
	}
	switch c.Field {
	case viewmodel.FieldHandle:
		data["handle"] = truncateStr(vm.Handle(), 40)
		data["lowercased"] = truncateStr(vm.LowercasedHandle(), 40)
	case viewmodel.FieldRules:
		data["rules"] = len(vm.Rules())
	case viewmodel.FieldCharacters:
		data["characters"] = vm.Characters()
	case viewmodel.FieldClassName:
		data["class_name"] = vm.ClassName()
	}
	debugLog.log("VM_CHANGE", data)
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// truncateStr truncates a string to max runes.
func truncateStr(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
