package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"shotcharts-backend/lib/scrapers/bref"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <player name>",
	Short: "Resolves a free-text player name against the site search index.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()

		entries, err := client.SearchPlayers(cmd.Context(), args[0])
		if err != nil {
			fatal("search failed", err)
		}

		id, err := bref.Resolve(args[0], entries)

		t := newTable()
		t.AppendHeader(table.Row{"Name", "ID", "Resolved"})
		for _, entry := range entries {
			resolved := ""
			if err == nil && entry.ID == id {
				resolved = "→"
			}
			t.AppendRow(table.Row{entry.Name, entry.ID, resolved})
		}
		t.Render()

		if err != nil {
			fatal("resolution failed", err)
		}
	},
}
