package cli

import (
	"github.com/spf13/cobra"
)

func newCleanCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clean <name>",
		Short: "Remove a project's generated .vvp and .vcd files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Clean(args[0]); err != nil {
				return err
			}
			app.log.WithField("project", args[0]).Info("generated files removed")
			return nil
		},
	}
}
