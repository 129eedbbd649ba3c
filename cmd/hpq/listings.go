package main

import (
	"fmt"

	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func listingsCmd() *cobra.Command {
	var (
		flags    filterFlags
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Print one page of transaction listings",
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

			state := model.NewPageState(settings.PageSize)
			if pageSize > 0 {
				state.PageSize = pageSize
			}
			state.Page = max(page, 1)

			resp, err := client.Listings(cmd.Context(), filter, state)
			if err != nil {
				return backendError(err, client.BaseURL())
			}
			state.Total = resp.Total

			ctx := locale.Resolve(filter.City)
			table := render.ListingTable(resp.Rows(), ctx)

			w := cmd.OutOrStdout()
			if err := printTitle(w, ctx.T(locale.KeyTitleList, nil)+" · "+locale.CityName(filter.City)); err != nil {
				return err
			}
			if table.IsEmpty() {
				fmt.Fprintln(w, cli.SubtitleStyle.Render(table.Empty))
				return nil
			}
			fmt.Fprint(w, render.DrawTable([][]string{table.Headers}, tableCells(table)))
			fmt.Fprintln(w, cli.SubtitleStyle.Render(fmt.Sprintf("%s · %s",
				ctx.T(locale.KeyPager, locale.Vars{"p": state.Page, "m": state.MaxPage()}),
				ctx.T(locale.KeyMetaDone, locale.Vars{"n": humanize.Comma(int64(state.Total))}),
			)))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Page size (default: ui.page_size)")

	return cmd
}

func tableCells(t render.Table) [][]string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, r.Cells)
	}
	return rows
}
