package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/components"
	"github.com/spf13/cobra"
)

func newsCmd() *cobra.Command {
	var (
		city  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Print the ranked housing headlines of a city",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := filterFlags{city: city}
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
			if limit <= 0 {
				limit = settings.NewsLimit
			}

			resp, err := client.FangNews(cmd.Context(), filter.City, limit)
			if err != nil {
				return backendError(err, client.BaseURL())
			}

			ctx := locale.Resolve(filter.City)
			w := cmd.OutOrStdout()
			if err := printTitle(w, ctx.T(locale.KeyTitleNews, nil)+" · "+locale.CityName(filter.City)); err != nil {
				return err
			}

			rows, ok := render.NewsList(resp.Items)
			if !ok {
				fmt.Fprintln(w, cli.SubtitleStyle.Render(ctx.T(locale.KeyEmptyNews, nil)))
			}
			for _, r := range rows {
				fmt.Fprintf(w, "%s %s\n", cli.TableHeaderStyle.Render(fmt.Sprintf("%3s.", r.Rank)), r.Title)
				if r.Sub != "" {
					fmt.Fprintf(w, "     %s\n", cli.SubtitleStyle.Render(r.Sub))
				}
				if r.URL != "" {
					fmt.Fprintf(w, "     %s\n", cli.SubtitleStyle.Render(r.URL))
				}
			}

			fmt.Fprintln(w, cli.SubtitleStyle.Render(ctx.T(locale.KeyNewsFetched, locale.Vars{"ago": components.FetchedAgo(resp.FetchedAt, time.Now())})))
			if resp.SourceURL != "" {
				fmt.Fprintln(w, cli.SubtitleStyle.Render(ctx.T(locale.KeyNewsSource, locale.Vars{"url": resp.SourceURL})))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "City code (default: ui.city)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of headlines (default: news.limit)")

	return cmd
}
