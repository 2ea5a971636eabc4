package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// logFileName is the TUI log written next to the config file.
const logFileName = "ghtrend.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive list of trending GitHub repositories.

The next page loads automatically when the selection nears the end of
the list. Logs are written to a file so they do not disturb the screen.

Controls:
  ↑/k, ↓/j   - Move selection
  enter/o    - Open in browser
  c          - Copy URL
  d          - Show details
  ?          - Toggle help
  q          - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if feedService == nil {
		return errNoFeedService
	}

	if path := tuiLogPath(); path != "" {
		closer, err := logger.ToFile(path)
		if err != nil {
			return fmt.Errorf("redirect logs: %w", err)
		}
		defer closer.Close() //nolint:errcheck
	}

	ports := tui.NewPorts(feedService, actionService)
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiLogPath returns the configured log file, falling back to the
// config directory. Empty when neither is known.
func tuiLogPath() string {
	if settingsService == nil {
		return ""
	}
	if settings, err := settingsService.Get(); err == nil && settings.Log.File != "" {
		return settings.Log.File
	}
	path := settingsService.Path()
	if !filepath.IsAbs(path) {
		return ""
	}
	return filepath.Join(filepath.Dir(path), logFileName)
}
