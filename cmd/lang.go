package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/retomath/internal/locale"
)

var langCmd = &cobra.Command{
	Use:   "lang [es|en]",
	Short: "Set the content language, or toggle it when no argument is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		if len(args) == 0 {
			lang, err := e.profile.ToggleLanguage(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Language: %s\n", lang)
			return nil
		}

		lang, ok := locale.Parse(args[0])
		if !ok {
			return fmt.Errorf("unsupported language %q: must be es or en", args[0])
		}
		if err := e.profile.SetLanguage(ctx, lang); err != nil {
			return err
		}
		fmt.Printf("Language: %s\n", lang)
		return nil
	},
}
