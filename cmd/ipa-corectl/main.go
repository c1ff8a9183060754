package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "ipa-corectl",
		Short: "Inspect and exercise the IPA MPC core",
		Long: `ipa-corectl drives the field arithmetic, PRSS key-exchange, shuffle and
differential-privacy components directly, without a real network, so the
core's behavior can be inspected from the command line.`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
