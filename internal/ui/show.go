package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lchandle/internal/viewmodel"
)

// showLabelWidth pads field labels so values line up.
const showLabelWidth = 12

func (a *App) showCmd() *cobra.Command {
	var (
		handle  string
		rules   []string
		noColor bool
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the view model",
		Long: `Print every field of the view model, including the lowercased handle.

Flags are applied to a fresh view model before printing.`,
		Example: `  lchandle show
  lchandle show --handle=MAESTRO
  lchandle show --handle=Fish --rule=eagle --rule=owl --trace`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			vm, err := a.newViewModel()
			if err != nil {
				return err
			}

			if trace {
				cancel := vm.Subscribe(func(c viewmodel.Change) {
					fmt.Fprintf(a.out, "%s %s\n", formatMuted("changed"), c.Field)
				})
				defer cancel()
			}

			if cmd.Flags().Changed("handle") {
				vm.SetHandle(handle)
			}
			for _, r := range rules {
				vm.AppendRule(r)
			}

			printState(a, vm.Snapshot(), termWidth(a.out))
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "Handle to set before printing")
	cmd.Flags().StringArrayVar(&rules, "rule", nil, "Rule to append (repeatable)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print each change notification")

	return cmd
}

// printState writes a view-model snapshot as aligned label/value lines.
func printState(a *App, s viewmodel.State, width int) {
	row := func(label, value string) {
		pad := strings.Repeat(" ", max(showLabelWidth-len(label), 1))
		fmt.Fprintf(a.out, "%s%s%s\n", formatHeader(label), pad, value)
	}

	handle := s.Handle
	if handle == "" {
		handle = formatMuted(`""`)
	}
	lowered := formatDerived(s.LowercasedHandle)
	if s.LowercasedHandle == "" {
		lowered = formatMuted(`""`)
	}

	row("handle", handle)
	row("lowercased", lowered)
	row("characters", strconv.Itoa(s.Characters))
	row("className", s.ClassName)

	lines := wrapItems(s.Rules, width, showLabelWidth, formatRule)
	if len(lines) == 0 {
		row("rules", formatMuted("(none)"))
		return
	}
	row("rules", lines[0])
	indent := strings.Repeat(" ", showLabelWidth)
	for _, l := range lines[1:] {
		fmt.Fprintf(a.out, "%s%s\n", indent, l)
	}
}
