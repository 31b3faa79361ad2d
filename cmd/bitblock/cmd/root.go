package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitblock",
	Short: "bitblock - bit-level codec toolkit",
	Long: `bitblock declaratively packs and unpacks fixed-or-variable-length
bit-aligned records. This CLI exercises the bundled IPv4 datagram
example block (examples/ipv4) against hex-encoded input/output.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		Logger().Sugar().Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
