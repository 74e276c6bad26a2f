// Package cli wires the command tree. The bare command starts the
// interactive session; subcommands cover headless use (scripting, CI) where
// no terminal hand-off is possible.
package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hdlbench/hdlbench/internal/config"
	"github.com/hdlbench/hdlbench/internal/eventlog"
	"github.com/hdlbench/hdlbench/internal/project"
	"github.com/hdlbench/hdlbench/internal/runner"
	"github.com/hdlbench/hdlbench/internal/tui"
)

// App carries the injected collaborators and the persistent flag values
// shared by every command.
type App struct {
	runner runner.Runner
	log    *logrus.Logger

	rootFlag   string
	configFlag string
}

// NewRootCommand builds the command tree around the injected process
// adapter and logger.
func NewRootCommand(r runner.Runner, log *logrus.Logger) *cobra.Command {
	app := &App{runner: r, log: log}

	rootCmd := &cobra.Command{
		Use:   "hdlbench",
		Short: "Manage, compile, and inspect Verilog simulation projects",
		Long: `hdlbench manages small Verilog projects: it scaffolds sources, drives the
iverilog/vvp pipeline to produce a VCD trace, and hands finished traces to
gtkwave.

Run it without arguments for the interactive session.`,
		SilenceUsage: true,
		RunE:         app.runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&app.rootFlag, "root", "", "projects root directory (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&app.configFlag, "config", "", "config file path")

	rootCmd.AddCommand(newNewCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newCompileCommand(app))
	rootCmd.AddCommand(newViewCommand(app))
	rootCmd.AddCommand(newCleanCommand(app))

	return rootCmd
}

// Execute runs the root command with production wiring.
func Execute() error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	return NewRootCommand(runner.NewExecRunner(), log).Execute()
}

func (a *App) configPath() string {
	if a.configFlag != "" {
		return a.configFlag
	}
	return config.DefaultPath()
}

func (a *App) loadConfig() config.Config {
	return config.Load(a.configPath())
}

// openStore resolves the projects root and opens the store. The caller
// closes it.
func (a *App) openStore() (*project.Store, config.Config, error) {
	cfg := a.loadConfig()
	root, err := config.ResolveRoot(a.rootFlag, cfg)
	if err != nil {
		return nil, cfg, err
	}
	s, err := project.Open(root)
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

func (a *App) runTUI(cmd *cobra.Command, args []string) error {
	s, cfg, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	events := eventlog.New(config.EventLogPath(), eventlog.NewSessionID())
	model := tui.New(tui.Options{
		Store:      s,
		Runner:     a.runner,
		Config:     cfg,
		ConfigPath: a.configPath(),
		Events:     events,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
