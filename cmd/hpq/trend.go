package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/spf13/cobra"
)

func trendCmd() *cobra.Command {
	var (
		flags   filterFlags
		svgPath string
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print the monthly price trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			client, err := newClient(settings)
			if err != nil {
				return err
			}

			resp, err := client.PriceTrend(cmd.Context(), filter)
			if err != nil {
				return backendError(err, client.BaseURL())
			}

			ctx := locale.Resolve(filter.City)
			spark := render.BuildSparkline(resp.Points, ctx)

			w := cmd.OutOrStdout()
			if err := printChartTitle(w, ctx.T(locale.KeyTitleTrend, nil)+" · "+locale.CityName(filter.City)); err != nil {
				return err
			}
			if spark.Empty {
				fmt.Fprintln(w, cli.SubtitleStyle.Render(ctx.T(locale.KeyEmptyTrend, nil)))
			} else {
				lines, _ := spark.Grid(48, 6)
				for _, line := range lines {
					fmt.Fprintln(w, cli.InfoStyle.Render(line))
				}
				fmt.Fprintln(w)
			}

			items := render.TrendList(resp.Points, ctx)
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.Month, it.AvgUnit + " " + it.UnitSuffix, it.AvgTotal, it.Samples})
			}
			if len(rows) > 0 {
				fmt.Fprint(w, render.DrawTable(nil, rows))
			}

			if svgPath != "" && !spark.Empty {
				if err := os.WriteFile(svgPath, []byte(spark.SVG()), 0o600); err != nil {
					return fmt.Errorf("failed to write %s: %w", svgPath, err)
				}
				fmt.Fprintln(w, cli.FormatSuccess("SVG → "+svgPath))
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&svgPath, "svg", "", "Also write the sparkline as an SVG file")

	return cmd
}
