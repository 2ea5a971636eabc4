package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ghtrend version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(versionLine())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionLine reports the release together with the toolchain and platform
// it was built for, which is what bug reports need.
func versionLine() string {
	return "ghtrend version " + version +
		" (" + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
