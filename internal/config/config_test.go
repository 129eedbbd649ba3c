package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("HPQ_TEST_DIR", "/srv/hpq")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "a", "b"), ExpandPath("~/a/b"))
	assert.Equal(t, "/srv/hpq/db", ExpandPath("$HPQ_TEST_DIR/db"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	assert.Equal(t, "/xdg/data/hpq", DataDir())
	assert.Equal(t, "/xdg/config/hpq", ConfigDir())
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5000", s.BaseURL)
	assert.Equal(t, 20, s.PageSize)
	assert.Equal(t, 20, s.NewsLimit)
	assert.Equal(t, 5*time.Minute, s.NewsThrottle)
	assert.Len(t, s.ClientOptions(), 1)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want error
	}{
		{"empty base url", "api.base_url", "", common.ErrMissingConfig},
		{"odd page size", "ui.page_size", 33, common.ErrInvalidConfig},
		{"zero burst", "api.burst", 0, common.ErrInvalidConfig},
		{"negative throttle", "news.throttle", -time.Second, common.ErrInvalidConfig},
		{"zero news limit", "news.limit", 0, common.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	s := Settings{RateLimit: 0}
	assert.Nil(t, s.ClientOptions())
}

func TestLoadSheetsConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "")
	t.Setenv("GOOGLE_SHEETS_REFRESH_TOKEN", "")
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "")

	_, err := LoadSheetsConfig()
	require.Error(t, err)

	viper.Set("sheets.service_account_path", "/srv/sa.json")
	viper.Set("sheets.spreadsheet_id", "abc")
	cfg, err := LoadSheetsConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/sa.json", cfg.ServiceAccountPath)
	assert.Equal(t, "abc", cfg.SpreadsheetID)
}
