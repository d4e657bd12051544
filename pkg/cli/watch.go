package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// newWatchCommand creates a new watch command
func newWatchCommand() *Command {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)

	var (
		dir        = fs.String("dir", ".", "Directory containing diagram files")
		configFile = fs.String("config", "", "Path to config file (mxlint.yaml)")
		debounce   = fs.Duration("debounce", 250*time.Millisecond, "Delay before re-linting after a change")
	)

	return &Command{
		Name:        "watch",
		Description: "Re-lint diagram files whenever they change",
		Flags:       fs,
		Run: func(args []string) error {
			if err := fs.Parse(args); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runWatch(ctx, *dir, *configFile, *debounce)
		},
	}
}

func runWatch(ctx context.Context, dir, configFile string, debounce time.Duration) error {
	logger := logrus.New()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchAddDirs(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger.WithFields(logrus.Fields{
		"dir":      dir,
		"debounce": debounce.String(),
	}).Info("watching for diagram changes")

	// Initial pass so the first report does not wait for a change.
	lintPass(logger, dir, configFile)

	// A single timer debounces editor save bursts into one pass.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchRelevant(event) {
				continue
			}
			logger.WithFields(logrus.Fields{
				"file": event.Name,
				"op":   event.Op.String(),
			}).Debug("change detected")
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("watch error")

		case <-timer.C:
			lintPass(logger, dir, configFile)
		}
	}
}

// watchAddDirs registers dir and every non-hidden subdirectory.
func watchAddDirs(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		name := info.Name()
		if (strings.HasPrefix(name, ".") && path != dir) || name == "vendor" || name == "node_modules" {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// watchRelevant reports whether an event should trigger a re-lint.
func watchRelevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Ext(event.Name) {
	case ".drawio", ".xml":
		return true
	}
	return false
}

func lintPass(logger *logrus.Logger, dir, configFile string) {
	if err := runLint(dir, configFile, "text", false, false, false, false); err != nil {
		logger.WithError(err).Error("lint pass failed")
	}
}
