package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"inclusiveai/assist"
	"inclusiveai/config"
	"inclusiveai/db"
	ihttp "inclusiveai/http"
	"inclusiveai/logging"
	"inclusiveai/ml"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// 1. Load config; a missing file falls back to defaults.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
		cfg = config.Default()
	}

	// 2. Logging
	logger := logging.Init(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logger.Sync()

	// 3. Database
	if err := db.InitDB(cfg.Database.Path); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database initialized", zap.String("path", cfg.Database.Path))

	// 4. Classification backend. The statistical backend degrades to the
	// rule-based path on its own when the artifact is absent.
	var backend assist.Backend
	if cfg.Model.Path != "" {
		backend = assist.NewModelBackend(cfg.Model.Type, cfg.Model.Path, logger)
	} else {
		backend = assist.NewRuleBackend()
	}
	logger.Info("classification backend ready", zap.String("backend", backend.Name()))

	// 5. Re-apply the log level when the config file changes.
	stopWatch, err := config.Watch(*configPath,
		func(fresh *config.Config) {
			logging.SetLevel(fresh.Log.Level)
			logger.Info("log level reloaded", zap.String("level", fresh.Log.Level))
		},
		func(err error) {
			logger.Warn("config reload failed", zap.Error(err))
		})
	if err != nil {
		logger.Warn("config watch unavailable", zap.Error(err))
	} else {
		defer stopWatch()
	}

	// 6. HTTP server
	server := ihttp.NewServer(ihttp.ServerConfig{
		Port:           cfg.Http.Port,
		Timeout:        cfg.Timeout(),
		AllowedOrigins: cfg.Http.AllowedOrigins,
		ScanCacheSize:  cfg.Scan.CacheSize,
		ModelPath:      cfg.Model.Path,
		Training: ml.TrainConfig{
			Samples:   cfg.Training.Samples,
			Seed:      cfg.Training.Seed,
			Trees:     cfg.Training.Trees,
			MaxDepth:  cfg.Training.MaxDepth,
			TestRatio: cfg.Training.TestRatio,
		},
	}, backend, logger)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
