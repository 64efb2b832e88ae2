/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package watch provides the watch command for nol.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nol/cmd/build"
	"bennypowers.dev/nol/config"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/internal/cache"
	"bennypowers.dev/nol/internal/logger"
)

// Cmd is the watch cobra command.
var Cmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Rebuild outputs when token files change",
	Long: `Watch builds once, then watches the input files and the config
directory and rebuilds whenever a token or config document changes.

Rapid changes are coalesced: the rebuild runs once the files have been
quiet for the debounce interval. A failed build keeps the session
alive; the next change retries.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("output", "o", nil, "Output as format:path (repeatable)")
	Cmd.Flags().Duration("debounce", 200*time.Millisecond, "Quiet period before rebuilding")
}

func run(cmd *cobra.Command, args []string) error {
	outputsFlag, _ := cmd.Flags().GetStringArray("output")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	outputs := make([]config.OutputSpec, 0, len(outputsFlag))
	for _, arg := range outputsFlag {
		outputs = append(outputs, config.ParseOutput(arg))
	}

	parseCache, err := cache.New(64)
	if err != nil {
		return fmt.Errorf("failed to create parse cache: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Watch(ctx, Options{
		Build: build.Options{
			Filesystem: fs.NewOSFileSystem(),
			RootDir:    cwd,
			Args:       args,
			Outputs:    outputs,
			Prefix:     viper.GetString("prefix"),
			Cache:      parseCache,
		},
		Debounce: debounce,
	})
}

// Options configures a watch session.
type Options struct {
	// Build is the build re-run on every change.
	Build build.Options

	// Debounce is how long files must stay quiet before rebuilding.
	// Zero means 200ms.
	Debounce time.Duration

	// Rebuild overrides the build step. Tests inject this.
	Rebuild func() error
}

// Watch builds once, then rebuilds whenever a watched file changes.
// It returns when ctx is cancelled.
func Watch(ctx context.Context, opts Options) error {
	debounce := opts.Debounce
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}

	rebuild := opts.Rebuild
	if rebuild == nil {
		buildOpts := opts.Build
		rebuild = func() error { return build.Run(buildOpts) }
	}

	dirs, err := watchDirs(opts.Build)
	if err != nil {
		return err
	}

	if err := rebuild(); err != nil {
		logger.Warn("build failed: %v", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			logger.Warn("failed to watch %s: %v", dir, err)
			continue
		}
		logger.Info("watching %s", dir)
	}

	// One timer coalesces all pending events; rebuilds run over the
	// whole input set anyway.
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("%s %s", event.Op, event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-fire:
			timer, fire = nil, nil
			if err := rebuild(); err != nil {
				logger.Warn("build failed: %v", err)
			}
		}
	}
}

// watchDirs returns the parent directories of every resolved input,
// plus the config directory when present. Watching directories instead
// of files survives editors that replace files on save.
func watchDirs(opts build.Options) ([]string, error) {
	resolved, err := build.ResolveInputs(opts)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, fmt.Errorf("no files specified and no files found in config")
	}

	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if dir != "" && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, rf := range resolved {
		add(filepath.Dir(rf.Path))
	}

	configDir := filepath.Join(opts.RootDir, config.ConfigDir)
	if opts.Filesystem.Exists(configDir) {
		add(configDir)
	}

	return dirs, nil
}

// relevant filters events down to token and config documents.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
