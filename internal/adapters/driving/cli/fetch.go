package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
	"github.com/custodia-labs/rustdoc-md/internal/logger"
)

var (
	fetchOutput  string
	fetchNoCache bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <crate>[@version] [item-path]",
	Short: "Fetch crate documentation from docs.rs as Markdown",
	Long: `Fetches a rustdoc page from docs.rs and converts it to Markdown.

The crate version defaults to "latest". An optional item path selects a
page below the crate root.

Examples:
  # Crate root documentation
  rustdoc-md fetch serde

  # A pinned version
  rustdoc-md fetch serde@1.0.219

  # A specific item page
  rustdoc-md fetch serde de/trait.Deserialize.html`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "write Markdown to a file instead of stdout")
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "bypass the page cache")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	crate, crateVersion, _ := strings.Cut(args[0], "@")
	if crate == "" {
		return fmt.Errorf("invalid crate spec %q", args[0])
	}
	if crateVersion == "" && configStore != nil {
		crateVersion = configStore.GetString("docsrs.version")
	}

	var itemPath string
	if len(args) > 1 {
		itemPath = args[1]
	}

	opts := driving.FetchOptions{SkipCache: fetchNoCache}
	page, err := convertService.FetchCrate(cmd.Context(), crate, crateVersion, itemPath, opts)
	if err != nil {
		return err
	}

	logger.Info("fetched %s (%s)", page.Title, page.URI)

	if fetchOutput != "" {
		if err := os.WriteFile(fetchOutput, []byte(page.Markdown+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", fetchOutput, err)
		}
		cmd.Printf("Wrote %s\n", fetchOutput)
		return nil
	}

	cmd.Println(page.Markdown)
	return nil
}
