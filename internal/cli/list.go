package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			list := s.List()
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no projects under", s.Root())
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTATUS\tCREATED\tTRACE")
			for _, p := range list {
				trace := "-"
				if p.ArtifactPath != "" {
					trace = filepath.Base(p.ArtifactPath)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					p.Name, p.Status.Title(), p.CreatedAt.Format("2006-01-02 15:04"), trace)
			}
			return w.Flush()
		},
	}
}
