package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/spf13/viper"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	BaseURL      string
	StoragePath  string
	City         string
	LogLevel     string
	LogFormat    string
	LogFile      string
	NewsThrottle time.Duration
	RateLimit    float64
	Burst        int
	PageSize     int
	NewsLimit    int
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.rate_limit", 10.0)
	v.SetDefault("api.burst", 5)
	v.SetDefault("storage.path", filepath.Join(DataDir(), "hpq.db"))
	v.SetDefault("ui.page_size", model.DefaultPageSize)
	v.SetDefault("ui.city", "")
	v.SetDefault("news.limit", 20)
	v.SetDefault("news.throttle", 5*time.Minute)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// Load reads Settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		BaseURL:      v.GetString("api.base_url"),
		RateLimit:    v.GetFloat64("api.rate_limit"),
		Burst:        v.GetInt("api.burst"),
		StoragePath:  ExpandPath(v.GetString("storage.path")),
		PageSize:     v.GetInt("ui.page_size"),
		City:         v.GetString("ui.city"),
		NewsLimit:    v.GetInt("news.limit"),
		NewsThrottle: v.GetDuration("news.throttle"),
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
		LogFile:      ExpandPath(v.GetString("logging.file")),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url is empty", common.ErrMissingConfig)
	}
	if s.RateLimit < 0 {
		return fmt.Errorf("%w: api.rate_limit must not be negative", common.ErrInvalidConfig)
	}
	if s.Burst < 1 {
		return fmt.Errorf("%w: api.burst must be at least 1", common.ErrInvalidConfig)
	}
	if !slices.Contains(model.PageSizes, s.PageSize) {
		return fmt.Errorf("%w: ui.page_size must be one of %v", common.ErrInvalidConfig, model.PageSizes)
	}
	if s.NewsLimit < 1 {
		return fmt.Errorf("%w: news.limit must be positive", common.ErrInvalidConfig)
	}
	if s.NewsThrottle < 0 {
		return fmt.Errorf("%w: news.throttle must not be negative", common.ErrInvalidConfig)
	}
	return nil
}

// ClientOptions turns the api.* settings into client options.
func (s Settings) ClientOptions() []api.Option {
	if s.RateLimit == 0 {
		return nil
	}
	return []api.Option{api.WithRateLimit(s.RateLimit, s.Burst)}
}
