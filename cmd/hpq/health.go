package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the backend and list the cities it serves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			client, err := newClient(settings)
			if err != nil {
				return err
			}

			start := time.Now()
			health, err := client.Health(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError("API "+client.BaseURL()))
				return backendError(err, client.BaseURL())
			}
			elapsed := time.Since(start)

			w := cmd.OutOrStdout()
			status := cli.FormatSuccess("API OK")
			if !health.OK {
				status = cli.FormatWarning("API reported ok=false")
			}
			fmt.Fprintf(w, "%s  %s (%s)\n", status, client.BaseURL(), elapsed.Round(time.Millisecond))
			fmt.Fprintln(w, cli.FormatInfo(locale.T(locale.Hans, locale.KeyBadgeCities, locale.Vars{"names": locale.CityNames(health.Cities)})))
			if health.DB != "" {
				fmt.Fprintf(w, "  DB: %s\n", health.DB)
			}
			if health.Boot != "" {
				fmt.Fprintf(w, "  Boot: %s\n", bootAge(health.Boot, time.Now()))
			}
			return nil
		},
	}
}

// bootAge renders the backend boot stamp relative to now when it parses.
func bootAge(boot string, now time.Time) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, boot, time.Local); err == nil {
			return fmt.Sprintf("%s (%s)", boot, humanize.RelTime(t, now, "ago", "from now"))
		}
	}
	return boot
}
