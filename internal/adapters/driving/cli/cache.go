package cli

import (
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the converted-page cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached pages",
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached pages",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	pages, err := convertService.CachedPages(cmd.Context())
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		cmd.Println("Cache is empty.")
		return nil
	}

	for _, page := range pages {
		spec := page.Crate
		if page.Version != "" {
			spec += "@" + page.Version
		}
		cmd.Printf("%-30s %-40s %s\n", spec, page.Title, page.ConvertedAt.Format("2006-01-02 15:04"))
	}
	cmd.Printf("\n%d page(s) cached.\n", len(pages))

	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if err := convertService.ClearCache(cmd.Context()); err != nil {
		return err
	}

	cmd.Println("Cache cleared.")
	return nil
}
