package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/honohub/pkg/artifact"
	"github.com/dmitrymomot/honohub/pkg/logger"
	"github.com/dmitrymomot/honohub/pkg/store"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate admin entry files and print the bundler config",
	Long: `Compose the hub, write one HTML and one JS entry per admin page into
BUILD_CACHE_DIR and print the resulting bundler configuration as JSON.

No database connection is made; documents are not touched.

Examples:
  honohub build
  honohub build --out-dir ./dist > build.json`,
	RunE: runBuild,
}

var (
	buildCacheDir string
	buildOutDir   string
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildCacheDir, "cache", "", "entry file directory (overrides BUILD_CACHE_DIR)")
	buildCmd.Flags().StringVar(&buildOutDir, "out-dir", "", "bundle output directory (overrides BUILD_OUT_DIR)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if buildCacheDir != "" {
		cfg.Build.CacheDir = buildCacheDir
	}
	if buildOutDir != "" {
		cfg.Build.OutDir = buildOutDir
	}

	ctx := cmd.Context()
	log := logger.New(cfg.Log)

	h := &hub{}
	if err := newHub(ctx, cfg, store.NewMemory(), log, h); err != nil {
		return fmt.Errorf("compose hub: %w", err)
	}

	var bc artifact.BuildConfig
	res, err := artifact.Configure(ctx, &bc, artifact.CommandBuild, h.comp.Admin,
		artifact.WithCache(cfg.Build.CacheDir),
		artifact.WithOutDir(cfg.Build.OutDir),
	)
	if err != nil {
		return err
	}
	log.Info("admin entries generated", "files", len(res.Files))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(bc)
}
