package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a project",
		Long:  "Create a project directory with a counter module, a testbench that dumps a VCD trace, and a README with the build recipe.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.Create(args[0])
			if err != nil {
				return err
			}
			app.log.WithField("path", p.RootPath).Info("project scaffolded")
			fmt.Fprintln(cmd.OutOrStdout(), p.RootPath)
			return nil
		},
	}
}
