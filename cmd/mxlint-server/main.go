package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/mxlint/pkg/api"
	"github.com/platinummonkey/mxlint/pkg/linter"
)

func main() {
	port := flag.String("port", "8080", "Port to listen on")
	configFile := flag.String("config", "", "Path to config file (mxlint.yaml)")
	cacheSize := flag.Int("cache-size", 1024, "Maximum cached lint results")
	cacheTTL := flag.Duration("cache-ttl", 10*time.Minute, "Lifetime of cached lint results")
	flag.Parse()

	logger := logrus.New()

	var config *linter.Config
	if *configFile != "" {
		var err error
		config, err = linter.LoadConfig(*configFile)
		if err != nil {
			logger.WithError(err).Fatal("failed to load config")
		}
	}

	server := api.NewServer(api.Options{
		Config:    config,
		CacheSize: *cacheSize,
		CacheTTL:  *cacheTTL,
		Logger:    logger,
	})

	logger.WithField("port", *port).Info("starting mxlint server")
	if err := http.ListenAndServe(":"+*port, server); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
