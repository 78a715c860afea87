package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"shotcharts-backend/lib/charts"
	"shotcharts-backend/lib/zonestats"
)

var (
	compareSeason *string
	compareOut    *string
)

func init() {
	compareSeason = compareCmd.Flags().String("season", "2024", "The season to compare.")
	compareOut = compareCmd.Flags().String("out", "charts.json", "The file to write chart specs to.")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player> [player...]",
	Short: "Scrapes 2-8 players and writes comparison chart specs for a renderer.",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()

		var profiles []*zonestats.PlayerShootingProfile
		for _, name := range args {
			id, err := client.ResolvePlayer(cmd.Context(), name)
			if err != nil {
				fatal(fmt.Sprintf("failed to resolve %q", name), err)
			}
			slog.Info("scraping shooting data", "player", name, "id", id, "season", *compareSeason)

			profile, err := client.GetShooting(cmd.Context(), id, *compareSeason)
			if err != nil {
				fatal(fmt.Sprintf("failed to scrape %q", name), err)
			}
			profiles = append(profiles, profile)
		}

		var specs []*charts.ChartSpec
		for _, category := range zonestats.Categories {
			spec, err := charts.ComposeScatter(profiles, category)
			if err != nil {
				fatal(fmt.Sprintf("failed to compose %s scatter", category), err)
			}
			specs = append(specs, spec)
		}
		bars, err := charts.ComposeEfficiencyBars(profiles)
		if err != nil {
			fatal("failed to compose efficiency bars", err)
		}
		specs = append(specs, bars)

		out, err := json.MarshalIndent(specs, "", "  ")
		if err != nil {
			fatal("failed to encode chart specs", err)
		}
		if err := os.WriteFile(*compareOut, out, 0644); err != nil {
			fatal("failed to write chart specs", err)
		}
		slog.Info("wrote chart specs", "file", *compareOut, "charts", len(specs))

		printSummary(profiles)
	},
}

func printSummary(profiles []*zonestats.PlayerShootingProfile) {
	t := newTable()
	t.AppendHeader(table.Row{"Player", "Zone", "FGM", "FGA", "FG%"})
	for _, profile := range profiles {
		for _, zone := range zonestats.Zones {
			stats, ok := profile.Zones[zone]
			if !ok {
				continue
			}
			pct, _ := stats.Pct()
			t.AppendRow(table.Row{
				profile.Name,
				zone.String(),
				stats.Makes,
				stats.Attempts,
				fmt.Sprintf("%.1f%%", pct*100),
			})
		}
		t.AppendSeparator()
	}
	t.Render()
}
