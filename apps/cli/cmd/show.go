package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/reqforge/packages/builtin"
	"github.com/abdul-hamid-achik/reqforge/packages/core/config"
	"github.com/abdul-hamid-achik/reqforge/packages/core/env"
	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file|directory>...",
	Short: "Build and display the requests in recipe files",
	Long: `Build every request described in YAML or JSON recipe files and display them.

Examples:
  reqforge show api.yaml
  reqforge show api.yaml --var host=http://localhost:8080
  reqforge show ./recipes/ --env-file .env
  reqforge show api.yaml -o json --pick requests.0.fullUrl
  reqforge show api.yaml --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: showCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	envFileFlag string
	varFlags    []string
	watchFlag   bool
)

func init() {
	showCmd.Flags().StringVar(&envFileFlag, "env-file", getEnvString("REQFORGE_ENV_FILE", ""), "Path to .env file for variable interpolation (env: REQFORGE_ENV_FILE)")
	showCmd.Flags().StringArrayVar(&varFlags, "var", nil, `Set a variable as "key=value" (repeatable)`)
	showCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-display when recipe files change")

	showCmd.Long += "\n\nBuiltin functions for {{name(args)}} placeholders:\n  " +
		strings.Join(builtin.NewRegistry().Names(), ", ")
}

func showCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return &usageError{msg: "no .yaml, .yml or .json recipe files found"}
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	resolver, err := newResolver(cmd, cfg)
	if err != nil {
		return err
	}

	err = showFiles(cmd, cfg, resolver, files)
	if !watchFlag {
		return err
	}
	if err != nil {
		warnf(cmd, "%v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFiles(ctx, cmd, files, func() {
		if err := showFiles(cmd, cfg, resolver, files); err != nil {
			warnf(cmd, "%v", err)
		}
	})
}

// showFiles renders every buildable request from files. Files and entries
// that fail are rendered as errors after the requests and returned joined.
func showFiles(cmd *cobra.Command, cfg *config.Config, resolver *env.Resolver, files []string) error {
	var entries []recipe.Entry
	var errs []error

	for _, file := range files {
		f, err := recipe.Load(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		f.ApplyDefaults(cfg.Headers, cfg.Timeout)

		built, err := f.Build(resolver)
		entries = append(entries, built...)
		for _, e := range splitJoined(err) {
			errs = append(errs, fmt.Errorf("%s: %w", file, e))
		}
	}

	if err := render(cmd, cfg, entries, errs); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// splitJoined returns the errors combined by errors.Join, or err itself.
func splitJoined(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// watchFiles calls onChange after files are written, until ctx is done.
// Events are debounced; onChange always runs on the calling goroutine.
func watchFiles(ctx context.Context, cmd *cobra.Command, files []string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	watchedDirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true

		// Editors often replace files on save, so watch the directory.
		dir := filepath.Dir(abs)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watchedDirs[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	changed := make(chan string, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case name := <-changed:
			fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\n\n", name)
			onChange()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case changed <- name:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			warnf(cmd, "watcher error: %v", err)
		}
	}
}
