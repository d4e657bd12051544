package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/mxlint/pkg/api"
	"github.com/platinummonkey/mxlint/pkg/linter"
)

// newServeCommand creates a new serve command
func newServeCommand() *Command {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)

	var (
		addr       = fs.String("addr", ":8080", "Address to listen on")
		configFile = fs.String("config", "", "Path to config file (mxlint.yaml)")
		cacheSize  = fs.Int("cache-size", 1024, "Maximum cached lint results")
		cacheTTL   = fs.Duration("cache-ttl", 10*time.Minute, "Lifetime of cached lint results")
		maxBody    = fs.Int64("max-body-bytes", 10<<20, "Maximum request body size in bytes")
	)

	return &Command{
		Name:        "serve",
		Description: "Run the lint HTTP API",
		Flags:       fs,
		Run: func(args []string) error {
			if err := fs.Parse(args); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runServe(ctx, *addr, *configFile, *cacheSize, *cacheTTL, *maxBody)
		},
	}
}

func runServe(ctx context.Context, addr, configFile string, cacheSize int, cacheTTL time.Duration, maxBody int64) error {
	logger := logrus.New()

	var config *linter.Config
	if configFile != "" {
		var err error
		config, err = linter.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	server := api.NewServer(api.Options{
		Config:       config,
		CacheSize:    cacheSize,
		CacheTTL:     cacheTTL,
		MaxBodyBytes: maxBody,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("lint API listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	}
}
