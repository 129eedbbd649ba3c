package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	version   = "dev"
	logCloser io.Closer
	rootCmd   = &cobra.Command{
		Use:   "hpq",
		Short: "🏠 House-price dashboard for the HPQAQ backend",
		Long: `hpq: a terminal client for the HPQAQ house-price backend.

Browse transaction listings, the monthly price trend and housing headlines
per city, and chart historical average prices for one city, one bizcircle
or several of them side by side.`,
		PersistentPreRunE:  initConfig,
		PersistentPostRunE: closeLogging,
		SilenceUsage:       true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/hpq/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("api-url", "", "backend base URL (default: "+api.DefaultBaseURL+")")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))

	// Add commands
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(trendCmd())
	rootCmd.AddCommand(newsCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(sheetsAuthCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr, "Interrupted, stopping")
	ctx, stop := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if interrupts.WasInterrupted() {
		os.Exit(130)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// A .env next to the binary may carry GOOGLE_SHEETS_* and HPQ_* values.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HPQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// The dashboard owns the terminal, so it logs to a file unless told otherwise.
	logFile := viper.GetString("logging.file")
	if logFile == "" && cmd.Name() == "dashboard" {
		logFile = filepath.Join(config.DataDir(), "hpq.log")
	}
	if err := setupLogging(config.ExpandPath(logFile)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging(path string) error {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return err
		}
	}
	closer, err := common.SetupLogger(
		common.ParseLevel(viper.GetString("logging.level")),
		viper.GetString("logging.format"),
		path,
	)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	if err := logCloser.Close(); err != nil {
		slog.Debug("failed to close log file", "error", err)
	}
	return nil
}

// loadSettings resolves the validated runtime settings.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Settings{}, common.NewUserError("invalid configuration", err)
	}
	return settings, nil
}

// newClient builds the API client for settings.
func newClient(settings config.Settings) (*api.Client, error) {
	opts := append(settings.ClientOptions(), api.WithLogger(slog.Default()))
	client, err := api.NewClient(settings.BaseURL, opts...)
	if err != nil {
		return nil, common.NewUserError("invalid api.base_url", err)
	}
	return client, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hpq %s\n", version)
		},
	}
}
