package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meta-pytorch/orgsite/internal/adapters/driven/cache/sqlite"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
	"github.com/meta-pytorch/orgsite/internal/generator"
	"github.com/meta-pytorch/orgsite/internal/logger"
)

var (
	generateOffline bool
	generateNoCache bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate search-index.json and projects.json",
	Long: `Reads projects.yaml, crawls each project's docs sitemap for pages,
and writes the JSON artifacts that power the site's cards and search.

Crawling is rate-limited and previously fetched page metadata is reused
from a local cache.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateOffline, "offline", false, "skip crawling, use only manifest data")
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "refetch all pages, bypassing the page cache")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	var cache driven.PageCache
	if !generateNoCache && !generateOffline {
		c, err := sqlite.NewPageCache(cfg.Generator.CachePath)
		if err != nil {
			logger.Warn("page cache unavailable: %v", err)
		} else {
			cache = c
			defer c.Close()
		}
	}

	gen := generator.New(generator.Options{
		ProjectsPath:      cfg.Generator.ProjectsFile,
		OutputDir:         cfg.Generator.OutputDir,
		Org:               cfg.GitHub.Org,
		SiteBase:          "https://meta-pytorch.org",
		Offline:           generateOffline,
		RequestsPerSecond: cfg.Generator.RequestsPerSecond,
		Cache:             cache,
		Progress:          !verbose,
	})

	if err := gen.Run(cmd.Context()); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	cmd.Printf("Wrote %s and %s to %s\n", generator.SearchIndexFile, generator.ProjectsFile, cfg.Generator.OutputDir)
	return nil
}
