// Package input parses slash commands typed into the TUI's rule input.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

// Commands lists the slash commands understood by Parse.
var Commands = []PromptCommand{
	{Name: "/chars", Description: "Set characters, e.g. /chars 7"},
	{Name: "/class", Description: "Set className, e.g. /class bluey"},
	{Name: "/clear", Description: "Remove all rules"},
	{Name: "/rules", Description: "Replace rules, e.g. /rules lion, owl"},
}

// Kind identifies a parsed command.
type Kind int

const (
	KindNone Kind = iota // Not a command; plain rule text
	KindCharacters
	KindClassName
	KindClearRules
	KindSetRules
)

// Command is a parsed slash command.
type Command struct {
	Kind       Kind
	Characters int
	ClassName  string
	Rules      []string
}

// ErrUnknownCommand is returned for a slash command that is not in Commands.
var ErrUnknownCommand = errors.New("unknown command")

// IsCommand reports whether input starts a slash command.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// Parse parses input. Text that is not a slash command returns KindNone.
func Parse(input string) (Command, error) {
	input = strings.TrimSpace(input)
	if !IsCommand(input) {
		return Command{Kind: KindNone}, nil
	}

	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "/chars":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("/chars needs a number, got %q", arg)
		}
		return Command{Kind: KindCharacters, Characters: n}, nil
	case "/class":
		if arg == "" {
			return Command{}, errors.New("/class needs a name")
		}
		return Command{Kind: KindClassName, ClassName: arg}, nil
	case "/clear":
		return Command{Kind: KindClearRules}, nil
	case "/rules":
		return Command{Kind: KindSetRules, Rules: splitList(arg)}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !IsCommand(input) {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}
