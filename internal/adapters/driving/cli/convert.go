package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/logger"
)

var (
	convertOutput string
	convertWatch  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a rustdoc HTML file to Markdown",
	Long: `Converts a rustdoc-generated HTML page into Markdown.
Reads the given file, or stdin when no file is provided.

With --watch, the command keeps running and re-converts the file every
time it changes, which is useful next to a "cargo doc" loop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write Markdown to a file instead of stdout")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-convert whenever the input file changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		if convertWatch {
			return errors.New("--watch requires a file argument")
		}

		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return convertOnce(ctx, cmd, "stdin", content)
	}

	path := args[0]
	if err := convertFile(ctx, cmd, path); err != nil {
		return err
	}

	if !convertWatch {
		return nil
	}
	return watchAndConvert(ctx, cmd, path)
}

func convertFile(ctx context.Context, cmd *cobra.Command, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return convertOnce(ctx, cmd, path, content)
}

func convertOnce(ctx context.Context, cmd *cobra.Command, uri string, content []byte) error {
	page, err := convertService.ConvertHTML(ctx, &domain.RawPage{
		URI:      uri,
		MIMEType: "text/html",
		Content:  content,
	})
	if err != nil {
		return err
	}

	if convertOutput != "" {
		if err := os.WriteFile(convertOutput, []byte(page.Markdown+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", convertOutput, err)
		}
		logger.Info("wrote %s", convertOutput)
		return nil
	}

	cmd.Println(page.Markdown)
	return nil
}

// watchAndConvert blocks, re-converting path on every write until the
// context is cancelled.
func watchAndConvert(ctx context.Context, cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors and rustdoc
	// replace files on save, which drops a watch on the file itself.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	logger.Info("watching %s", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if eventPath, err := filepath.Abs(event.Name); err != nil || eventPath != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			logger.Debug("change detected (%s), re-converting", event.Op)
			if err := convertFile(ctx, cmd, path); err != nil {
				logger.Error("re-converting %s: %v", path, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
