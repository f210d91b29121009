package main

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/Apiary_Go/internal/bootstrap"
	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/weather"
)

func newQualityCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Score pollinator quality for the current weather",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
				s, ok := weather.ParseSeason(season, app.Clock.Now())
				if !ok {
					return fmt.Errorf("unknown season %q", season)
				}
				wx := app.Service.CurrentWeather(ctx)
				q, err := app.Service.ComputePollinatorQuality(ctx, wx, s)
				if err != nil {
					return err
				}
				renderQuality(cmd.OutOrStdout(), s, wx, q)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "spring, summer, fall or winter (default: current)")
	return cmd
}

func renderQuality(w io.Writer, season domain.Season, wx *domain.Weather, q domain.PollinatorQuality) {
	printTitle(w, "Pollinator quality - %s", season)
	if wx == nil {
		printDim(w, "Weather unavailable, scored as neutral")
	} else {
		fmt.Fprintf(w, "%s, %.1f°C, %.1fmm rain, wind %.1f\n", wx.Condition, wx.Temperature, wx.Precipitation, wx.WindSpeed)
	}

	table := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Factor", "Score"}))
	rows := [][]string{
		{"Weather", fmt.Sprintf("%.0f", q.Factors.Weather)},
		{"Population", fmt.Sprintf("%.0f", q.Factors.Population)},
		{"Health", fmt.Sprintf("%.0f", q.Factors.Health)},
		{"Resources", fmt.Sprintf("%.0f", q.Factors.Resources)},
		{"Seasonality", fmt.Sprintf("%.0f", q.Factors.Seasonality)},
	}
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()

	printSuccess(w, "Overall %.0f (%s)", q.Overall, q.Rating)
}
