package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghtrend/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/services"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

func TestRootCmd_Commands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"tui", "list", "settings", "mcp", "version"} {
		assert.True(t, names[name], "missing command %q", name)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_ListsWhenNotATerminal(t *testing.T) {
	feed := newMockFeed(testRepos(1, 30))
	buf := setupTestServices(t, feed)

	err := execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[1] repo-1")
	assert.Equal(t, 1, feed.fetches)
}

func TestRootCmd_ServiceFactory(t *testing.T) {
	setupTestServices(t, newMockFeed())
	feed := newMockFeed(testRepos(1, 2))
	dir := filepath.Join(t.TempDir(), "conf")

	var gotDir string
	SetServiceFactory(func(configDir string) (*Services, error) {
		gotDir = configDir
		return &Services{
			Feed:     feed,
			Settings: services.NewSettingsService(memory.NewConfigStore()),
		}, nil
	})

	err := execute("list", "--config-dir", dir)

	require.NoError(t, err)
	assert.Equal(t, dir, gotDir)
	assert.Equal(t, 1, feed.fetches)
}

func TestRootCmd_ServiceFactoryError(t *testing.T) {
	setupTestServices(t, newMockFeed())
	SetServiceFactory(func(string) (*Services, error) {
		return nil, errors.New("disk full")
	})

	err := execute("version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRootCmd_Verbose(t *testing.T) {
	setupTestServices(t, newMockFeed())
	defer logger.SetVerbose(false)

	require.NoError(t, execute("version", "--verbose"))
	assert.True(t, logger.IsVerbose())
}

func TestTUICmd_NoService(t *testing.T) {
	setupTestServices(t, newMockFeed())
	feedService = nil

	err := execute("tui")

	require.ErrorIs(t, err, errNoFeedService)
}

func TestTUILogPath(t *testing.T) {
	setupTestServices(t, newMockFeed())

	t.Run("no settings service", func(t *testing.T) {
		old := settingsService
		settingsService = nil
		defer func() { settingsService = old }()

		assert.Empty(t, tuiLogPath())
	})

	t.Run("in-memory settings have no directory", func(t *testing.T) {
		assert.Empty(t, tuiLogPath())
	})

	t.Run("configured log file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.log")
		require.NoError(t, settingsService.Set(domain.KeyLogFile, path))

		assert.Equal(t, path, tuiLogPath())
	})
}

func TestMCPCmd_Registered(t *testing.T) {
	serve, _, err := rootCmd.Find([]string{"mcp", "serve"})

	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, serve.Flags().Lookup("port"))
}
