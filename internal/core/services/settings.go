package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or out-of-range values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Feed: domain.FeedSettings{
			PageSize:        s.getIntInRange(domain.KeyPageSize, defaults.Feed.PageSize, 1, domain.MaxPageSize),
			WindowDays:      s.getIntInRange(domain.KeyWindowDays, defaults.Feed.WindowDays, 1, 0),
			ScrollThreshold: s.getIntInRange(domain.KeyScrollThreshold, defaults.Feed.ScrollThreshold, 1, 0),
		},
		GitHub: domain.GitHubSettings{
			APIURL:            s.getString(domain.KeyAPIURL, defaults.GitHub.APIURL),
			RequestsPerSecond: s.getPositiveFloat(domain.KeyRequestsPerSecond, defaults.GitHub.RequestsPerSecond),
		},
		Log: domain.LogSettings{
			File: s.getString(domain.KeyLogFile, ""), // empty means next to the config file
		},
	}

	return settings, nil
}

// Save validates settings and writes them to the store in one batch.
// An empty log file is left unset so the default location applies.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		domain.KeyPageSize:          settings.Feed.PageSize,
		domain.KeyWindowDays:        settings.Feed.WindowDays,
		domain.KeyScrollThreshold:   settings.Feed.ScrollThreshold,
		domain.KeyAPIURL:            settings.GitHub.APIURL,
		domain.KeyRequestsPerSecond: settings.GitHub.RequestsPerSecond,
	}
	if settings.Log.File != "" {
		values[domain.KeyLogFile] = settings.Log.File
	}

	if err := s.configStore.Put(values); err != nil {
		return fmt.Errorf("save settings to %s: %w", s.configStore.Location(), err)
	}
	return nil
}

// Set parses value for the given key, validates the result and saves it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)

	switch key {
	case domain.KeyPageSize:
		settings.Feed.PageSize, err = parseInt(key, value)
	case domain.KeyWindowDays:
		settings.Feed.WindowDays, err = parseInt(key, value)
	case domain.KeyScrollThreshold:
		settings.Feed.ScrollThreshold, err = parseInt(key, value)
	case domain.KeyAPIURL:
		settings.GitHub.APIURL = value
	case domain.KeyRequestsPerSecond:
		settings.GitHub.RequestsPerSecond, err = strconv.ParseFloat(value, 64)
		if err != nil {
			err = fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidInput, key, value)
		}
	case domain.KeyLogFile:
		settings.Log.File = value
	default:
		return fmt.Errorf("%w: %q (known keys: %s)",
			domain.ErrUnknownSetting, key, strings.Join(domain.SettingKeys(), ", "))
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return domain.SettingKeys()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Location()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if v, ok := s.configStore.Lookup(key); ok {
		if str, ok := v.(string); ok && str != "" {
			return str
		}
	}
	return defaultVal
}

// getIntInRange reads an int, returning defaultVal when it is unset or
// outside [minVal, maxVal]. A maxVal of 0 means unbounded.
func (s *SettingsService) getIntInRange(key string, defaultVal, minVal, maxVal int) int {
	v, ok := s.configStore.Lookup(key)
	if !ok {
		return defaultVal
	}

	var n int
	switch v := v.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	default:
		return defaultVal
	}
	if n < minVal || (maxVal > 0 && n > maxVal) {
		return defaultVal
	}
	return n
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	v, ok := s.configStore.Lookup(key)
	if !ok {
		return defaultVal
	}

	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	}
	if f <= 0 {
		return defaultVal
	}
	return f
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
	}
	return n, nil
}
