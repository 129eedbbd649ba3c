package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/cli"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// filterFlags are the listing filters shared by listings and trend.
type filterFlags struct {
	city      string
	region    string
	bizcircle string
	community string
	layout    string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.city, "city", "", "City code (default: ui.city)")
	cmd.Flags().StringVar(&f.region, "region", "", "Region")
	cmd.Flags().StringVar(&f.bizcircle, "bizcircle", "", "Bizcircle")
	cmd.Flags().StringVar(&f.community, "community", "", "Community name")
	cmd.Flags().StringVar(&f.layout, "layout", "", "Layout, e.g. 2室1厅")
}

// filter returns the trimmed filter. A city is required.
func (f *filterFlags) filter() (model.Filter, error) {
	filter := model.Filter{
		City:      f.city,
		Region:    f.region,
		Bizcircle: f.bizcircle,
		Community: f.community,
		Layout:    f.layout,
	}.Trimmed()
	if filter.City == "" {
		filter.City = strings.TrimSpace(viper.GetString("ui.city"))
	}
	if filter.City == "" {
		return model.Filter{}, common.NewUserError("--city is required", common.ErrNoCity)
	}
	return filter, nil
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// backendError marks transport failures as an unreachable backend. HTTP
// and payload errors pass through unchanged.
func backendError(err error, baseURL string) error {
	var netErr *api.NetworkError
	if !errors.As(err, &netErr) {
		return err
	}
	return common.NewUserError("cannot reach the backend at "+baseURL,
		fmt.Errorf("%w: %w", common.ErrBackendUnavailable, err))
}

func printTitle(w io.Writer, title string) error {
	_, err := fmt.Fprintln(w, cli.FormatTitle(title))
	return err
}

func printChartTitle(w io.Writer, title string) error {
	_, err := fmt.Fprintln(w, cli.FormatChartTitle(title))
	return err
}
