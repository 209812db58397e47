package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/honohub/pkg/collection"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check collection declarations",
	Long: `Load and sanitize the collection YAML files without starting the server.

Examples:
  honohub validate
  COLLECTIONS_DIR=./config honohub validate`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	raw, err := loadCollections(cfg)
	if err != nil {
		return err
	}
	cols, err := collection.Sanitize(raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range cols {
		fmt.Fprintf(out, "%-24s %-24s %d fields\n", c.Slug, c.Label, len(c.Fields))
	}
	fmt.Fprintf(out, "%d collections OK\n", len(cols))
	return nil
}
