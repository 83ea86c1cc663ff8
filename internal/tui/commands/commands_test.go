package commands

import (
	"errors"
	"testing"
)

func TestCopy(t *testing.T) {
	var written string
	cmd := Copy(func(s string) error {
		written = s
		return nil
	}, "maestro")

	msg := cmd()
	copied, ok := msg.(CopiedMsg)
	if !ok {
		t.Fatalf("expected CopiedMsg, got %T", msg)
	}
	if copied.Text != "maestro" {
		t.Errorf("CopiedMsg.Text = %q, want maestro", copied.Text)
	}
	if written != "maestro" {
		t.Errorf("clipboard got %q, want maestro", written)
	}
}

func TestCopy_Error(t *testing.T) {
	boom := errors.New("no clipboard")
	cmd := Copy(func(string) error { return boom }, "x")

	msg := cmd()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Errorf("expected wrapped clipboard error, got %v", errMsg.Err)
	}
}
