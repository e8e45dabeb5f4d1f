package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seriesreport/internal/config"
	"seriesreport/internal/queries"
	"seriesreport/internal/report"
)

type queryView struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	SQL      string `json:"sql,omitempty"`
}

func newQueriesCommand() *cobra.Command {
	var asJSON bool
	var withSQL bool

	cmd := &cobra.Command{
		Use:         "queries",
		Short:       "List the report queries in run order",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			all := queries.All()
			views := make([]queryView, 0, len(all))
			for i, q := range all {
				view := queryView{Position: i + 1, ID: q.ID, Title: q.Title}
				if withSQL {
					view.SQL = q.SQL
				}
				views = append(views, view)
			}
			if asJSON {
				return report.WriteJSON(cmd.OutOrStdout(), views)
			}

			rows := make([][]any, 0, len(views))
			for _, v := range views {
				rows = append(rows, []any{int64(v.Position), v.ID, v.Title})
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Table([]string{"#", "ID", "Title"}, rows, config.StyleRounded))
			if withSQL {
				for _, v := range views {
					fmt.Fprintf(cmd.OutOrStdout(), "\n-- %s\n%s\n", v.ID, v.SQL)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&withSQL, "sql", false, "Include each query's SQL")
	return cmd
}
