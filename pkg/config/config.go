package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedscout.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Content feed configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=HTTP fetch configuration"`

	Sections SectionsConfig `yaml:"sections" json:"sections" jsonschema:"description=Section schema configuration"`

	Notifications NotificationsConfig `yaml:"notifications" json:"notifications" jsonschema:"description=Push notification scheduling configuration"`
}

// FeedConfig holds content source settings
type FeedConfig struct {
	SiteURL       string `yaml:"site_url" json:"site_url" jsonschema:"required,description=Content site base URL (e.g. https://en.wikipedia.org)"`
	MainPageTitle string `yaml:"main_page_title" json:"main_page_title" jsonschema:"default=Main_Page,description=Main page article title"`
	RSSURL        string `yaml:"rss_url" json:"rss_url" jsonschema:"description=Optional RSS/Atom feed for an extra headlines section"`
	NearbyRadius  int    `yaml:"nearby_radius" json:"nearby_radius" jsonschema:"default=10000,description=Nearby search radius in meters"`
	NearbyLimit   int    `yaml:"nearby_limit" json:"nearby_limit" jsonschema:"default=24,description=Maximum nearby results"`

	// fixed coordinates enabling the nearby section, both zero disables it
	Latitude  float64 `yaml:"latitude" json:"latitude" jsonschema:"description=Fixed latitude for the nearby section"`
	Longitude float64 `yaml:"longitude" json:"longitude" jsonschema:"description=Fixed longitude for the nearby section"`
}

// FetchConfig holds HTTP fetcher settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-request timeout"`
	RateLimit time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=500ms,description=Minimum interval between requests"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=feedscout/1.0,description=User agent for HTTP requests"`
}

// SectionsConfig holds the schema's business-rule constants
type SectionsConfig struct {
	UpdateInterval        time.Duration            `yaml:"update_interval" json:"update_interval" jsonschema:"default=30m,description=How often the schema re-evaluates sections"`
	MaxWorkers            int                      `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent section fetches"`
	Freshness             map[string]time.Duration `yaml:"freshness" json:"freshness" jsonschema:"description=Per-section-type minimum refresh interval keyed by type name"`
	DefaultFreshness      time.Duration            `yaml:"default_freshness" json:"default_freshness" jsonschema:"default=30m,description=Fallback freshness window"`
	MinSignificant        int                      `yaml:"min_significant" json:"min_significant" jsonschema:"default=3,description=Significantly-viewed entries required for history sections"`
	SignificantWindowDays int                      `yaml:"significant_window_days" json:"significant_window_days" jsonschema:"default=30,description=Lookback window for the significant-view rule in days"`
	ContinueReadingAge    time.Duration            `yaml:"continue_reading_age" json:"continue_reading_age" jsonschema:"default=24h,description=How recent the last visit must be for continue-reading"`
}

// NotificationsConfig holds push notification scheduling limits
type NotificationsConfig struct {
	Enabled   bool `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable notification scheduling"`
	MinHour   int  `yaml:"min_hour" json:"min_hour" jsonschema:"default=8,minimum=0,maximum=23,description=Earliest local hour for notifications"`
	MaxHour   int  `yaml:"max_hour" json:"max_hour" jsonschema:"default=20,minimum=1,maximum=24,description=Local hour notifications stop (exclusive)"`
	MaxPerDay int  `yaml:"max_per_day" json:"max_per_day" jsonschema:"default=3,minimum=1,description=Maximum notifications per calendar day"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedscout.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for feed
	if cfg.Feed.MainPageTitle == "" {
		cfg.Feed.MainPageTitle = "Main_Page"
	}
	if cfg.Feed.NearbyRadius == 0 {
		cfg.Feed.NearbyRadius = 10000
	}
	if cfg.Feed.NearbyLimit == 0 {
		cfg.Feed.NearbyLimit = 24
	}

	// set defaults for fetch
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.RateLimit == 0 {
		cfg.Fetch.RateLimit = 500 * time.Millisecond
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "feedscout/1.0"
	}

	// set defaults for sections
	if cfg.Sections.UpdateInterval == 0 {
		cfg.Sections.UpdateInterval = 30 * time.Minute
	}
	if cfg.Sections.MaxWorkers == 0 {
		cfg.Sections.MaxWorkers = 4
	}
	if cfg.Sections.DefaultFreshness == 0 {
		cfg.Sections.DefaultFreshness = 30 * time.Minute
	}
	if cfg.Sections.MinSignificant == 0 {
		cfg.Sections.MinSignificant = 3
	}
	if cfg.Sections.SignificantWindowDays == 0 {
		cfg.Sections.SignificantWindowDays = 30
	}
	if cfg.Sections.ContinueReadingAge == 0 {
		cfg.Sections.ContinueReadingAge = 24 * time.Hour
	}

	// set defaults for notifications
	if cfg.Notifications.MinHour == 0 && cfg.Notifications.MaxHour == 0 {
		cfg.Notifications.MinHour = 8
		cfg.Notifications.MaxHour = 20
	}
	if cfg.Notifications.MaxPerDay == 0 {
		cfg.Notifications.MaxPerDay = 3
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Feed.SiteURL == "" {
		return fmt.Errorf("feed.site_url is required")
	}

	if cfg.Notifications.MinHour < 0 || cfg.Notifications.MinHour > 23 {
		return fmt.Errorf("notifications.min_hour must be between 0 and 23")
	}
	if cfg.Notifications.MaxHour < 1 || cfg.Notifications.MaxHour > 24 {
		return fmt.Errorf("notifications.max_hour must be between 1 and 24")
	}
	if cfg.Notifications.MinHour >= cfg.Notifications.MaxHour {
		return fmt.Errorf("notifications.min_hour must be below max_hour")
	}
	if cfg.Notifications.MaxPerDay < 1 {
		return fmt.Errorf("notifications.max_per_day must be at least 1")
	}

	if cfg.Sections.MaxWorkers < 1 {
		return fmt.Errorf("sections.max_workers must be at least 1")
	}
	for name := range cfg.Sections.Freshness {
		if _, ok := sectionTypeNames[name]; !ok {
			return fmt.Errorf("sections.freshness has unknown section type %q", name)
		}
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch.timeout must be at least 1 second")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// sectionTypeNames are the valid keys for per-type freshness overrides
var sectionTypeNames = map[string]struct{}{
	"continue-reading": {},
	"most-read":        {},
	"nearby":           {},
	"random":           {},
	"main-page":        {},
	"news":             {},
	"rss":              {},
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeedConfig returns content source configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}

// GetFetchConfig returns HTTP fetch configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}

// GetSectionsConfig returns section schema configuration
func (c *Config) GetSectionsConfig() SectionsConfig {
	return c.Sections
}

// GetNotificationsConfig returns notification scheduling configuration
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	return c.Notifications
}
