package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"shotcharts-backend/lib/charts"
)

var (
	chartSeason *string
	chartOut    *string
)

func init() {
	chartSeason = chartCmd.Flags().String("season", "2024", "The season to chart.")
	chartOut = chartCmd.Flags().String("out", "shotchart.json", "The file to write the chart spec to.")
	rootCmd.AddCommand(chartCmd)
}

var chartCmd = &cobra.Command{
	Use:   "chart <player>",
	Short: "Scrapes one player and writes a half-court zone chart spec.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()

		id, err := client.ResolvePlayer(cmd.Context(), args[0])
		if err != nil {
			fatal(fmt.Sprintf("failed to resolve %q", args[0]), err)
		}

		profile, err := client.GetShooting(cmd.Context(), id, *chartSeason)
		if err != nil {
			fatal(fmt.Sprintf("failed to scrape %q", args[0]), err)
		}

		spec, err := charts.ComposeZoneChart(profile)
		if err != nil {
			fatal("failed to compose zone chart", err)
		}

		out, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			fatal("failed to encode chart spec", err)
		}
		if err := os.WriteFile(*chartOut, out, 0644); err != nil {
			fatal("failed to write chart spec", err)
		}
		slog.Info("wrote chart spec", "file", *chartOut, "player", profile.Name)
	},
}
