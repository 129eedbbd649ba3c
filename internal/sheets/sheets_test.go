package sheets

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "no auth",
			modify:  func(*Config) {},
			wantErr: "no authentication method configured",
		},
		{
			name: "oauth",
			modify: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "refresh"
			},
		},
		{
			name:   "service account",
			modify: func(c *Config) { c.ServiceAccountPath = "/tmp/sa.json" },
		},
		{
			name: "both",
			modify: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "refresh"
				c.ServiceAccountPath = "/tmp/sa.json"
			},
			wantErr: "multiple authentication methods",
		},
		{
			name: "zero batch",
			modify: func(c *Config) {
				c.ServiceAccountPath = "/tmp/sa.json"
				c.BatchSize = 0
			},
			wantErr: "batch size must be positive",
		},
		{
			name: "negative delay",
			modify: func(c *Config) {
				c.ServiceAccountPath = "/tmp/sa.json"
				c.RetryDelay = -time.Second
			},
			wantErr: "retry delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/srv/sa.json")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_NAME", "Prices")

	cfg := DefaultConfig()
	cfg.SpreadsheetID = "keep"
	cfg.LoadFromEnv()

	assert.Equal(t, "/srv/sa.json", cfg.ServiceAccountPath)
	assert.Equal(t, "Prices", cfg.SpreadsheetName)
	assert.Equal(t, "keep", cfg.SpreadsheetID)
	assert.NoError(t, cfg.Validate())
}

func TestReportValues(t *testing.T) {
	table := &render.StatTable{
		Headers: [][]string{{"月份", "北京", ""}, {"", "均价", "样本"}},
		Rows:    [][]string{{"2024-01", "52,000", "10"}},
	}
	report := FromTable("历史均价", "北京 2024-01 ~ 2024-01", table)

	values := report.Values()
	require.Len(t, values, HeaderOffset+3)
	assert.Equal(t, []any{"历史均价"}, values[0])
	assert.Equal(t, []any{"北京 2024-01 ~ 2024-01"}, values[1])
	assert.Empty(t, values[2])
	assert.Equal(t, []any{"月份", "北京", ""}, values[3])
	assert.Equal(t, []any{"2024-01", "52,000", "10"}, values[5])
	assert.Equal(t, 3, report.Width())
}

func TestReportFromNilTable(t *testing.T) {
	report := FromTable("t", "d", nil)
	assert.Len(t, report.Values(), HeaderOffset)
	assert.Equal(t, 1, report.Width())
}

func TestMockExporter(t *testing.T) {
	m := &MockExporter{}
	url, err := m.Export(context.Background(), Report{Title: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Equal(t, 1, m.Calls())
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	require.NoError(t, SaveToken(path, &oauth2.Token{AccessToken: "a", RefreshToken: "r"}))

	token, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "r", token.RefreshToken)

	got, err := GetOrCreateToken(context.Background(), OAuth2Config{TokenFile: path})
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
}
