package main

import (
	"fmt"
	"path/filepath"

	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/config"
	"github.com/Veraticus/hpqaq/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func sheetsAuthCmd() *cobra.Command {
	var (
		tokenFile    string
		callbackAddr string
	)

	cmd := &cobra.Command{
		Use:   "sheets-auth",
		Short: "Authorize Google Sheets export with OAuth2",
		Long: `Run the browser consent flow for Google Sheets and save the token.

Needs sheets.client_id and sheets.client_secret (or GOOGLE_SHEETS_CLIENT_ID
and GOOGLE_SHEETS_CLIENT_SECRET). Put the printed refresh token in
sheets.refresh_token to enable "hpq stats --export-sheet".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base := sheets.Config{
				ClientID:     viper.GetString("sheets.client_id"),
				ClientSecret: viper.GetString("sheets.client_secret"),
			}
			base.LoadFromEnv()
			if base.ClientID == "" || base.ClientSecret == "" {
				return fmt.Errorf("sheets.client_id and sheets.client_secret are required")
			}
			if tokenFile == "" {
				tokenFile = filepath.Join(config.ConfigDir(), "sheets-token.json")
			}

			token, err := sheets.GetOrCreateToken(cmd.Context(), sheets.OAuth2Config{
				ClientID:     base.ClientID,
				ClientSecret: base.ClientSecret,
				TokenFile:    config.ExpandPath(tokenFile),
				CallbackAddr: callbackAddr,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, cli.FormatSuccess("Google Sheets authorized"))
			fmt.Fprintln(w, cli.FormatInfo("refresh token: "+token.RefreshToken))
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Where to keep the token (default: $XDG_CONFIG_HOME/hpq/sheets-token.json)")
	cmd.Flags().StringVar(&callbackAddr, "callback", "127.0.0.1:8080", "Local address of the OAuth callback server")

	return cmd
}
