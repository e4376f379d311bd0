package main

import (
	// stdlib
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	// internal
	"github.com/Robogera/tseries/pkg/config"
	"github.com/Robogera/tseries/pkg/enums"

	// external
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"
)

const (
	default_cfg_path string = "cfg/config.default.toml"
)

var cfg_path string
var write_default bool

func init() {
	flag.StringVar(
		&cfg_path, "config",
		default_cfg_path,
		"Path to config file")
	flag.BoolVar(
		&write_default, "init",
		false,
		"Write the default config to -config and exit")
}

func main() {

	// Configuration init

	flag.Parse()

	if write_default {
		if err := config.CreateDefault(cfg_path); err != nil {
			slog.Error("Can't write default config", "path", cfg_path, "error", err)
			os.Exit(1)
		}
		slog.Info("Default config written", "path", cfg_path)
		return
	}

	cfg, err := config.Unmarshal(cfg_path)
	if err != nil {
		slog.Error("Config file not loaded. Shutting down...", "provided path", cfg_path, "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid config. Shutting down...", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting...", "series", len(cfg.Series))

	eg, child_ctx := errgroup.WithContext(context.Background())

	jobs_ctx, jobs_done := context.WithCancel(child_ctx)
	defer jobs_done()

	jobs := new(errgroup.Group)
	for _, series_cfg := range cfg.Series {
		jobs.Go(func() error {
			return job(jobs_ctx, logger, series_cfg)
		})
	}

	eg.Go(func() error {
		if err := jobs.Wait(); err != nil {
			return err
		}
		// all jobs done, release control
		jobs_done()
		return nil
	})

	eg.Go(func() error {
		return control(jobs_ctx, logger)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Stopped")
}

func newLogger(level string) *slog.Logger {
	var log_level slog.Level

	parsed, _ := enums.ParseLoggingLevel(level)
	switch parsed {
	case enums.LoggingLevelDebug:
		log_level = slog.LevelDebug
	case enums.LoggingLevelInfo:
		log_level = slog.LevelInfo
	case enums.LoggingLevelWarn:
		log_level = slog.LevelWarn
	case enums.LoggingLevelError:
		log_level = slog.LevelError
	default:
		slog.Warn(
			"No valid logging level provided. Defaulting to LevelError",
			"provided value", level)
		log_level = slog.LevelError
	}

	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      log_level,
		TimeFormat: time.RFC3339,
		AddSource:  true,
	}))
}

func control(ctx context.Context, logger *slog.Logger) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGINT)
	defer signal.Stop(interrupt)

	select {
	case <-ctx.Done():
		logger.Debug("Control cancelled by context")
		return context.Canceled
	case <-interrupt:
		logger.Info("Cancelled by user")
		return ERR_INTERRUPTED_BY_USER
	}
}
