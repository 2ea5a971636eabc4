// Package cli provides the cobra command tree for ghtrend.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services holds the driving ports used by the commands.
type Services struct {
	Feed     driving.FeedService
	Settings driving.SettingsService
	Actions  driving.RepositoryActionService
}

// ServiceFactory builds services once flags are parsed.
// configDir is empty when --config-dir was not given.
type ServiceFactory func(configDir string) (*Services, error)

var (
	feedService     driving.FeedService
	settingsService driving.SettingsService
	actionService   driving.RepositoryActionService

	serviceFactory ServiceFactory
)

// isTerminal reports whether stdout is a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "ghtrend",
	Short: "Browse trending GitHub repositories",
	Long: `ghtrend lists the most-starred GitHub repositories created recently.

Run without a subcommand in a terminal to open the interactive list;
more repositories load as you scroll. When output is not a terminal
the first page is printed instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ghtrend)")
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	feedService = s.Feed
	settingsService = s.Settings
	actionService = s.Actions
}

// SetServiceFactory sets the function that builds services after flag parsing.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Cancelling ctx stops any running command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}
	services, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	SetServices(services)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runTUI(cmd, args)
	}
	return runList(cmd, args)
}

var errNoFeedService = errors.New("feed service not configured")
