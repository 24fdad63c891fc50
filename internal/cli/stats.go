package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noanitzan/my-keeps/internal/ui"
)

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how much each collection holds",
		Args:  exactArgs(0, "stats"),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.Current()
			sums := a.lib.Summaries()
			total, orphans := 0, 0
			for _, s := range sums {
				total += s.Items
				orphans += s.Orphans
			}

			lines := []string{ui.C(t.Title, "Keeps") + "  " + ui.Dim(fmt.Sprintf("%d items in %s", total, a.cfg.DataDir)), ""}
			for _, s := range sums {
				line := fmt.Sprintf("%-24s %s  %3d items  %2d folders",
					ui.Truncate(s.Domain.Title, 24), ui.Bar(s.Items, total, 20), s.Items, s.Folders)
				lines = append(lines, line)
			}
			if orphans > 0 {
				lines = append(lines, "", ui.C(t.Pending, fmt.Sprintf("%d items belong to folders that no longer exist", orphans)))
				for _, s := range sums {
					if s.Orphans > 0 {
						lines = append(lines, ui.Dim(fmt.Sprintf("  %s: %d", s.Domain.Name, s.Orphans)))
					}
				}
			}
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
