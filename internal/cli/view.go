package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdlbench/hdlbench/internal/wave"
)

func newViewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <name>",
		Short: "Open a project's trace in the waveform viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.Open(args[0])
			if err != nil {
				return err
			}
			if p.ArtifactPath == "" {
				return fmt.Errorf("%s: no fresh trace; run `hdlbench compile %s` first", p.Name, p.Name)
			}

			launcher := wave.NewLauncher(app.runner, cfg.Viewer)
			if err := launcher.View(p.ArtifactPath); err != nil {
				return err
			}
			if info, err := wave.Probe(p.ArtifactPath); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
			}
			app.log.WithField("artifact", p.ArtifactPath).Info("viewer launched")
			return nil
		},
	}
}
