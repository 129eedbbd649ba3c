package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/storage"
	"github.com/Veraticus/hpqaq/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var (
		noIntro    bool
		noMouse    bool
		resetPrefs bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: filters, listings, the price trend,
housing headlines and the historical statistics page.

The last city and page size are remembered between runs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			settings, err := loadSettings()
			if err != nil {
				return err
			}
			client, err := newClient(settings)
			if err != nil {
				return err
			}

			store, err := storage.Open(ctx, settings.StoragePath)
			if errors.Is(err, common.ErrDatabaseCorrupted) {
				return common.NewUserError("the state database is damaged; remove "+settings.StoragePath+" and start again", err)
			}
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("failed to close storage", "error", closeErr)
				}
			}()

			if resetPrefs {
				if err := store.ClearUIPrefs(ctx); err != nil {
					return fmt.Errorf("failed to reset preferences: %w", err)
				}
			}

			prefs, err := store.LoadUIPrefs(ctx)
			if err != nil {
				slog.Warn("ignoring saved preferences", "error", err)
			}
			city := settings.City
			if prefs.City != "" {
				city = prefs.City
			}
			pageSize := settings.PageSize
			if prefs.PageSize > 0 {
				pageSize = prefs.PageSize
			}

			if !noIntro {
				splash := cli.NewSplash(os.Stdin, cmd.OutOrStdout(), locale.Resolve(city))
				if _, err := splash.Run(ctx, store); err != nil {
					return err
				}
			}

			return tui.Run(ctx,
				tui.WithBackend(client),
				tui.WithPreferences(store),
				tui.WithCity(city),
				tui.WithPageSize(pageSize),
				tui.WithNews(settings.NewsLimit, settings.NewsThrottle),
				tui.WithMouse(!noMouse),
			)
		},
	}

	cmd.Flags().BoolVar(&noIntro, "no-intro", false, "Skip the intro splash")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	cmd.Flags().BoolVar(&resetPrefs, "reset-prefs", false, "Forget the saved city and page size")

	return cmd
}
