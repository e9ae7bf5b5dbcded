// Package cli implements the rustdoc-md command line interface.
// Commands are thin: they parse flags, call the convert service, and
// format output. Service wiring happens once in the persistent pre-run.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rustdoc-md/internal/adapters/driven/cache/sqlite"
	configfile "github.com/custodia-labs/rustdoc-md/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rustdoc-md/internal/adapters/driven/docsrs"
	"github.com/custodia-labs/rustdoc-md/internal/converters/rustdoc"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driven"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
	"github.com/custodia-labs/rustdoc-md/internal/core/services"
	"github.com/custodia-labs/rustdoc-md/internal/logger"
)

// version is set by Execute from the build's main package.
var version = "dev"

var (
	verbose   bool
	configDir string

	// Wired in initServices; tests may inject fakes before Execute.
	convertService driving.ConvertService
	configStore    driven.ConfigStore
	pageCache      driven.PageCache
)

var rootCmd = &cobra.Command{
	Use:   "rustdoc-md",
	Short: "Convert rustdoc HTML documentation to Markdown",
	Long: `rustdoc-md converts rustdoc-generated HTML documentation pages into
readable Markdown, preserving headings, code blocks, inline code, lists,
and item descriptions while discarding navigational chrome.

Pages can be read from local files or fetched directly from docs.rs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		if convertService != nil {
			return nil // already wired
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.rustdoc-md)")
}

// initServices builds the default adapter stack from configuration.
func initServices() error {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	configStore = cfg

	// The cache is optional: a failure to open it degrades to
	// fetch-every-time rather than aborting.
	cacheEnabled := true
	if _, ok := cfg.Get("cache.enabled"); ok {
		cacheEnabled = cfg.GetBool("cache.enabled")
	}
	if cacheEnabled {
		store, err := sqlite.NewStore(cfg.GetString("cache.dir"))
		if err != nil {
			logger.Warn("page cache unavailable: %v", err)
		} else {
			pageCache = store
		}
	}

	var opts []docsrs.Option
	if baseURL := cfg.GetString("docsrs.base_url"); baseURL != "" {
		opts = append(opts, docsrs.WithBaseURL(baseURL))
	}
	if rps := cfg.GetFloat("docsrs.rate_limit"); rps > 0 {
		opts = append(opts, docsrs.WithRateLimit(rps))
	}

	convertService = services.NewConvertService(rustdoc.New(), docsrs.NewClient(opts...), pageCache)
	return nil
}

// Execute runs the root command.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}

	defer func() {
		if pageCache != nil {
			pageCache.Close()
		}
	}()

	return rootCmd.Execute()
}
