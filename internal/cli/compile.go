package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hdlbench/hdlbench/internal/build"
)

func newCompileCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <name>",
		Short: "Compile a project and run its simulation",
		Long:  "Run the two-stage pipeline (iverilog, then vvp) for one project. On success the trace path is printed; on a compile failure the diagnostic goes to stderr and the exit code is non-zero.",
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
			if len(p.SourceFiles) == 0 {
				return fmt.Errorf("%s: no .v sources to compile", p.Name)
			}

			compiler := build.New(app.runner, cfg.Compiler, cfg.Simulator)
			res, err := compiler.Compile(cmd.Context(), build.Input{
				Name:    p.Name,
				Root:    p.RootPath,
				Sources: p.SourceFiles,
			})
			if err != nil {
				return err
			}
			if !res.OK() {
				app.log.WithFields(logrus.Fields{
					"project": p.Name,
					"exit":    res.ExitCode,
				}).Error("compile failed")
				fmt.Fprintln(cmd.ErrOrStderr(), res.Diagnostic())
				return fmt.Errorf("%s: compile failed (exit %d)", p.Name, res.ExitCode)
			}

			app.log.WithFields(logrus.Fields{
				"project": p.Name,
				"elapsed": res.Elapsed.Round(time.Millisecond).String(),
			}).Info("compile succeeded")
			fmt.Fprintln(cmd.OutOrStdout(), res.ArtifactPath)
			return nil
		},
	}
}
