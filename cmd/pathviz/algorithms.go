package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/internal/ui"
	"github.com/katalvlaran/pathviz/search"
)

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos"},
		Short:   "List the available search algorithms",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			ui.Banner(out, "search algorithms")

			rows := make([][]string, 0, len(search.All()))
			for _, a := range search.All() {
				rows = append(rows, []string{
					a.Alias(),
					a.String(),
					yesNo(a.Weighted()),
					yesNo(a.Optimal()),
				})
			}
			ui.Table(out, []string{"ALIAS", "NAME", "WEIGHTED", "SHORTEST PATH"}, rows)
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
