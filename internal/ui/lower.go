package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lchandle/internal/casefold"
)

func (a *App) lowerCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "lower [text...]",
		Short: "Print text lowercased",
		Long: `Lowercase the arguments using the same rules as the lowercased handle.

Arguments are joined with single spaces. The configured locale is used
unless --locale is given.`,
		Example: `  lchandle lower MAESTRO
  lchandle lower --locale=tr ISTANBUL`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := a.config.Text.Locale
			if cmd.Flags().Changed("locale") {
				tag = locale
			}
			fold, err := casefold.ForLocale(tag)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, fold(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale tag (e.g. tr, de)")

	return cmd
}
