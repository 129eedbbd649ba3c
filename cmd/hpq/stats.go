package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/config"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/sheets"
	"github.com/Veraticus/hpqaq/internal/tui"
	"github.com/spf13/cobra"
)

type statsOptions struct {
	city        string
	bizcircle   string
	start       string
	end         string
	compare     string
	view        string
	byBizcircle bool
	exportSheet bool
	width       int
}

func statsCmd() *cobra.Command {
	var opts statsOptions
	def := model.DefaultMonthRange()

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Chart historical monthly average prices",
		Long: `Chart historical monthly average prices for a city or bizcircle, or
compare several of them.

Examples:
  hpq stats --city bj --view line
  hpq stats --compare bj,sh,taibei --view total
  hpq stats --city bj --by-bizcircle --compare 望京,国贸 --view table
  hpq stats --city bj --export-sheet`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.city, "city", "", "City code, or the base city with --by-bizcircle")
	cmd.Flags().StringVar(&opts.bizcircle, "bizcircle", "", "Limit a single query to one bizcircle")
	cmd.Flags().StringVar(&opts.start, "start", def.Start, "First month (YYYY-MM)")
	cmd.Flags().StringVar(&opts.end, "end", def.End, "Last month (YYYY-MM)")
	cmd.Flags().StringVar(&opts.compare, "compare", "", "Comma-separated cities (or bizcircles with --by-bizcircle) to compare")
	cmd.Flags().BoolVar(&opts.byBizcircle, "by-bizcircle", false, "Compare bizcircles of --city instead of cities")
	cmd.Flags().StringVar(&opts.view, "view", string(render.ViewBar), "View: bar, line, band, table, or total (compare only)")
	cmd.Flags().BoolVar(&opts.exportSheet, "export-sheet", false, "Export the result table to Google Sheets")
	cmd.Flags().IntVar(&opts.width, "width", 100, "Chart width in columns")

	return cmd
}

// targets turns the compare flags into compare targets.
func (o statsOptions) targets() ([]model.CompareTarget, error) {
	names := splitList(o.compare)
	if o.byBizcircle && o.city == "" {
		return nil, common.NewUserError("--by-bizcircle needs --city", common.ErrNoCity)
	}
	if len(names) < 2 {
		return nil, common.NewUserError("--compare needs at least two entries", model.ErrTooFewSelection)
	}

	targets := make([]model.CompareTarget, 0, len(names))
	for _, n := range names {
		if o.byBizcircle {
			targets = append(targets, model.CompareTarget{City: o.city, Bizcircle: n, Label: n})
		} else {
			targets = append(targets, model.CompareTarget{City: n, Label: locale.CityName(n)})
		}
	}
	return targets, nil
}

func runStats(cmd *cobra.Command, opts statsOptions) error {
	compare := opts.compare != ""
	view, err := render.ParseView(opts.view, compare)
	if err != nil {
		return common.NewUserError("invalid --view", err)
	}
	r := model.MonthRange{Start: opts.start, End: opts.end}
	if err := r.Validate(); err != nil {
		return common.NewUserError("invalid month range", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(settings)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	loc := locale.Resolve(opts.city)

	var (
		chart, table render.Chart
		desc         string
	)
	if compare {
		targets, err := opts.targets()
		if err != nil {
			return err
		}
		series, err := tui.FetchCompare(ctx, client, r, targets)
		if err != nil {
			return fmt.Errorf("%s: %w", loc.T(locale.KeyStatCompareFail, nil), backendError(err, client.BaseURL()))
		}
		if chart, err = render.BuildCompareChart(view, series, loc); err != nil {
			return err
		}
		if table, err = render.BuildCompareChart(render.ViewTable, series, loc); err != nil {
			return err
		}
		desc = render.CompareDescription(opts.byBizcircle, r, loc)
	} else {
		if opts.city == "" {
			return common.NewUserError(loc.T(locale.KeyStatNeedCity, nil), common.ErrNoCity)
		}
		resp, err := client.HistoricalAvgPrice(ctx, api.HistoricalQuery{Range: r, City: opts.city, Bizcircle: opts.bizcircle})
		if err != nil {
			return fmt.Errorf("%s: %w", loc.T(locale.KeyStatLoadFail, nil), backendError(err, client.BaseURL()))
		}
		if !resp.OK {
			return fmt.Errorf("%s: %s", loc.T(locale.KeyStatQueryFail, nil), resp.Error)
		}
		scope := render.Scope(opts.city, opts.bizcircle)
		if chart, err = render.BuildSingleChart(view, resp.Data, scope, loc); err != nil {
			return err
		}
		if table, err = render.BuildSingleChart(render.ViewTable, resp.Data, scope, loc); err != nil {
			return err
		}
		desc = render.SingleDescription(scope, r, loc)
	}

	w := cmd.OutOrStdout()
	if err := printChartTitle(w, loc.T(locale.KeyStatTitle, nil)); err != nil {
		return err
	}
	fmt.Fprintln(w, cli.SubtitleStyle.Render(desc))
	fmt.Fprintln(w, render.DrawChart(chart, opts.width))

	if !opts.exportSheet {
		return nil
	}
	return exportStats(cmd, sheets.FromTable(loc.T(locale.KeyStatTitle, nil), desc, table.Table))
}

func exportStats(cmd *cobra.Command, report sheets.Report) error {
	sheetsConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return common.NewUserError("Google Sheets is not configured; run `hpq sheets-auth` or set sheets.* in the config", err)
	}

	writer, err := sheets.NewWriter(cmd.Context(), *sheetsConfig, slog.Default())
	if err != nil {
		return err
	}
	var exporter sheets.Exporter = writer

	url, err := exporter.Export(cmd.Context(), report)
	if err != nil {
		return fmt.Errorf("failed to export to Google Sheets: %w", err)
	}
	common.LogInfo("statistics exported", common.Fields{"title": report.Title, "rows": len(report.Rows), "url": url})
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Google Sheets → "+url))
	return nil
}
