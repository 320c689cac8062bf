// Package config loads the service configuration from YAML and can watch
// the file for log-level changes at runtime.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v2"
)

// Config is the top-level service configuration.
type Config struct {
	Http struct {
		Port           int      `yaml:"port"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Model struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"model"`
	Training struct {
		Samples   int     `yaml:"samples"`
		Seed      int64   `yaml:"seed"`
		Trees     int     `yaml:"trees"`
		MaxDepth  int     `yaml:"max_depth"`
		TestRatio float64 `yaml:"test_ratio"`
	} `yaml:"training"`
	Scan struct {
		CacheSize int `yaml:"cache_size"`
	} `yaml:"scan"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Http.Port = 8080
	cfg.Http.TimeoutSeconds = 30
	cfg.Http.AllowedOrigins = []string{"*"}
	cfg.Database.Path = "./inclusiveai.db"
	cfg.Model.Type = "forest"
	cfg.Model.Path = "./models/assist_forest.model"
	cfg.Training.Samples = 1000
	cfg.Training.Seed = 42
	cfg.Training.TestRatio = 0.2
	cfg.Scan.CacheSize = 256
	cfg.Log.Level = "info"
	return &cfg
}

// Load reads a YAML config file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Timeout returns the HTTP handler timeout.
func (c *Config) Timeout() time.Duration {
	if c.Http.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Http.TimeoutSeconds) * time.Second
}

// Watch re-reads the config file whenever it changes and invokes onChange
// with the fresh config. It returns a stop function. Watch errors are
// reported through onError; the running service keeps its current config.
func Watch(path string, onChange func(*Config), onError func(error)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
