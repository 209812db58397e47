package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "honohub",
	Short: "Admin backend for YAML-declared data collections",
	Long: `Honohub serves JSON endpoints for data collections declared in YAML and
prepares the admin panel's build entries.

  honohub serve      # start the HTTP server
  honohub build      # generate admin entry files and print the bundler config
  honohub validate   # check collection declarations

Configuration is read from the environment; see "honohub serve --help".`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
