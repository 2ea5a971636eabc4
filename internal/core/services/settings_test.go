package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghtrend/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
}

func (failingConfigStore) Put(map[string]any) error {
	return errors.New("disk full")
}

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
	assert.Equal(t, ":memory:", service.Path())
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Put(map[string]any{
		"feed.page_size":             50,
		"feed.window_days":           int64(7),
		"feed.scroll_threshold":      5,
		"github.api_url":             "https://ghe.example.com/api/v3/",
		"github.requests_per_second": int64(2),
		"log.file":                   "/tmp/ghtrend.log",
	}))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 50, settings.Feed.PageSize)
	assert.Equal(t, 7, settings.Feed.WindowDays)
	assert.Equal(t, 5, settings.Feed.ScrollThreshold)
	assert.Equal(t, "https://ghe.example.com/api/v3/", settings.GitHub.APIURL)
	assert.InDelta(t, 2.0, settings.GitHub.RequestsPerSecond, 1e-9)
	assert.Equal(t, "/tmp/ghtrend.log", settings.Log.File)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Put(map[string]any{
		"feed.page_size":             500,
		"feed.window_days":           -1,
		"feed.scroll_threshold":      "three",
		"github.api_url":             42,
		"github.requests_per_second": -2.0,
	}))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Feed, settings.Feed)
	assert.Equal(t, defaults.GitHub, settings.GitHub)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Feed.PageSize = 100
	settings.GitHub.RequestsPerSecond = 0.25

	require.NoError(t, service.Save(&settings))

	pageSize, _ := store.Lookup("feed.page_size")
	assert.Equal(t, 100, pageSize)
	rate, _ := store.Lookup("github.requests_per_second")
	assert.Equal(t, 0.25, rate)
	_, hasLog := store.Lookup("log.file")
	assert.False(t, hasLog, "empty log file is not written")

	reloaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *reloaded)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Feed.PageSize = 0

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, written := store.Lookup("feed.page_size")
	assert.False(t, written)
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	service := NewSettingsService(failingConfigStore{memory.NewConfigStore()})
	settings := domain.DefaultAppSettings()

	err := service.Save(&settings)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save settings to :memory:")
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"feed.page_size", "45", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 45, s.Feed.PageSize)
		}},
		{"feed.window_days", " 14 ", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 14, s.Feed.WindowDays)
		}},
		{"feed.scroll_threshold", "6", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 6, s.Feed.ScrollThreshold)
		}},
		{"github.api_url", "http://localhost:8080/", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "http://localhost:8080/", s.GitHub.APIURL)
		}},
		{"github.requests_per_second", "0.5", func(t *testing.T, s *domain.AppSettings) {
			assert.InDelta(t, 0.5, s.GitHub.RequestsPerSecond, 1e-9)
		}},
		{"log.file", "/var/log/ghtrend.log", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/var/log/ghtrend.log", s.Log.File)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"unknown key", "feed.colour", "blue", domain.ErrUnknownSetting},
		{"not an integer", "feed.page_size", "lots", domain.ErrInvalidInput},
		{"out of range", "feed.page_size", "101", domain.ErrInvalidInput},
		{"zero threshold", "feed.scroll_threshold", "0", domain.ErrInvalidInput},
		{"not a number", "github.requests_per_second", "fast", domain.ErrInvalidInput},
		{"non positive rate", "github.requests_per_second", "0", domain.ErrInvalidInput},
		{"bad url", "github.api_url", "api.github.com", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, tt.wantErr)
			_, written := store.Lookup("feed.page_size")
			assert.False(t, written, "nothing is saved on error")
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.SettingKeys(), service.Keys())
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
