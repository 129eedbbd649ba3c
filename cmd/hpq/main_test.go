package main

import (
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"bj", "sh", "taibei"}, splitList(" bj, sh,,taibei ,"))
	assert.Nil(t, splitList(""))
}

func TestFilterFlags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := filterFlags{city: " bj ", layout: " 2室1厅"}
	filter, err := flags.filter()
	require.NoError(t, err)
	assert.Equal(t, model.Filter{City: "bj", Layout: "2室1厅"}, filter)

	_, err = (&filterFlags{}).filter()
	require.ErrorIs(t, err, common.ErrNoCity)

	viper.Set("ui.city", "sh")
	filter, err = (&filterFlags{}).filter()
	require.NoError(t, err)
	assert.Equal(t, "sh", filter.City)
}

func TestStatsTargets(t *testing.T) {
	tests := []struct {
		name    string
		opts    statsOptions
		want    []model.CompareTarget
		wantErr error
	}{
		{
			name: "cities",
			opts: statsOptions{compare: "bj,taibei"},
			want: []model.CompareTarget{
				{City: "bj", Label: "北京"},
				{City: "taibei", Label: "台北"},
			},
		},
		{
			name: "bizcircles",
			opts: statsOptions{city: "bj", compare: "望京, 国贸", byBizcircle: true},
			want: []model.CompareTarget{
				{City: "bj", Bizcircle: "望京", Label: "望京"},
				{City: "bj", Bizcircle: "国贸", Label: "国贸"},
			},
		},
		{
			name:    "one entity",
			opts:    statsOptions{compare: "bj"},
			wantErr: model.ErrTooFewSelection,
		},
		{
			name:    "bizcircles without city",
			opts:    statsOptions{compare: "望京,国贸", byBizcircle: true},
			wantErr: common.ErrNoCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.targets()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBootAge(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-03-01 10:00:00 (2 hours ago)", bootAge("2025-03-01 10:00:00", now))
	assert.Equal(t, "soon", bootAge("soon", now))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"dashboard", "health", "listings", "trend", "news", "stats", "sheets-auth", "version"} {
		assert.True(t, names[want], want)
	}

	dashboard := dashboardCmd()
	for _, flag := range []string{"no-intro", "no-mouse", "reset-prefs"} {
		assert.NotNil(t, dashboard.Flags().Lookup(flag), flag)
	}
}

func TestBackendError(t *testing.T) {
	netErr := &api.NetworkError{Path: api.PathHealth, Err: errors.New("connection refused")}
	err := backendError(netErr, "http://127.0.0.1:5000")
	assert.ErrorIs(t, err, common.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "http://127.0.0.1:5000")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)

	reqErr := &api.RequestError{Path: api.PathHealth, Status: 500, Body: "boom"}
	assert.Same(t, error(reqErr), backendError(reqErr, "http://127.0.0.1:5000"))
}
