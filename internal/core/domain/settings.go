package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults for AppSettings.
const (
	DefaultPageSize          = 30
	DefaultWindowDays        = 10
	DefaultScrollThreshold   = 3
	DefaultAPIURL            = "https://api.github.com/"
	DefaultRequestsPerSecond = 1.0

	// MaxPageSize is the largest page the search API serves.
	MaxPageSize = 100
)

// Setting keys, as used in the config file and by "settings set".
const (
	KeyPageSize          = "feed.page_size"
	KeyWindowDays        = "feed.window_days"
	KeyScrollThreshold   = "feed.scroll_threshold"
	KeyAPIURL            = "github.api_url"
	KeyRequestsPerSecond = "github.requests_per_second"
	KeyLogFile           = "log.file"
)

// SettingKeys returns the recognised setting keys in display order.
func SettingKeys() []string {
	return []string{
		KeyPageSize,
		KeyWindowDays,
		KeyScrollThreshold,
		KeyAPIURL,
		KeyRequestsPerSecond,
		KeyLogFile,
	}
}

// FeedSettings configures the pagination controller.
type FeedSettings struct {
	// PageSize is the number of results requested per page.
	PageSize int

	// WindowDays is how far back the creation-date floor lies.
	WindowDays int

	// ScrollThreshold is how many rows before the end of the list the
	// next page is requested.
	ScrollThreshold int
}

// GitHubSettings configures the remote search client.
type GitHubSettings struct {
	// APIURL is the API base URL. A trailing slash is added when missing.
	APIURL string

	// RequestsPerSecond spaces consecutive page requests.
	RequestsPerSecond float64
}

// LogSettings configures the log sink.
type LogSettings struct {
	// File is where logs go while the TUI owns the terminal.
	// Empty means the default location inside the config directory.
	File string
}

// AppSettings holds all user-tunable settings.
type AppSettings struct {
	Feed   FeedSettings
	GitHub GitHubSettings
	Log    LogSettings
}

// DefaultAppSettings returns settings with default values.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Feed: FeedSettings{
			PageSize:        DefaultPageSize,
			WindowDays:      DefaultWindowDays,
			ScrollThreshold: DefaultScrollThreshold,
		},
		GitHub: GitHubSettings{
			APIURL:            DefaultAPIURL,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
	}
}

// Validate checks that all settings are within range.
func (s *AppSettings) Validate() error {
	if s.Feed.PageSize < 1 || s.Feed.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d, got %d",
			ErrInvalidInput, MaxPageSize, s.Feed.PageSize)
	}
	if s.Feed.WindowDays < 1 {
		return fmt.Errorf("%w: window days must be positive, got %d", ErrInvalidInput, s.Feed.WindowDays)
	}
	if s.Feed.ScrollThreshold < 1 {
		return fmt.Errorf("%w: scroll threshold must be positive, got %d",
			ErrInvalidInput, s.Feed.ScrollThreshold)
	}
	if !strings.HasPrefix(s.GitHub.APIURL, "http://") && !strings.HasPrefix(s.GitHub.APIURL, "https://") {
		return fmt.Errorf("%w: api url must be http(s), got %q", ErrInvalidInput, s.GitHub.APIURL)
	}
	if s.GitHub.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive, got %v",
			ErrInvalidInput, s.GitHub.RequestsPerSecond)
	}
	return nil
}

// Value returns the display form of the setting stored under key.
func (s *AppSettings) Value(key string) (string, error) {
	switch key {
	case KeyPageSize:
		return strconv.Itoa(s.Feed.PageSize), nil
	case KeyWindowDays:
		return strconv.Itoa(s.Feed.WindowDays), nil
	case KeyScrollThreshold:
		return strconv.Itoa(s.Feed.ScrollThreshold), nil
	case KeyAPIURL:
		return s.GitHub.APIURL, nil
	case KeyRequestsPerSecond:
		return strconv.FormatFloat(s.GitHub.RequestsPerSecond, 'g', -1, 64), nil
	case KeyLogFile:
		return s.Log.File, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
}
