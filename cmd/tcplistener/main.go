package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Brownie44l1/reqline/internal/config"
	"github.com/Brownie44l1/reqline/internal/logging"
	"github.com/Brownie44l1/reqline/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json, toml)")
	flag.Parse()

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, level, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	loader.Watch(func(c *config.Config) {
		lvl, err := logging.ParseLevel(c.Log.Level)
		if err != nil {
			return
		}
		if lvl != level.Level() {
			level.SetLevel(lvl)
			logger.Info("log level changed", zap.Stringer("level", lvl))
		}
	}, func(err error) {
		logger.Warn("ignoring invalid config change", zap.Error(err))
	})

	srv := server.New(cfg.Server, logger)
	if err := srv.Listen(); err != nil {
		logger.Fatal("failed to bind", zap.String("addr", cfg.Server.Addr), zap.Error(err))
	}
	logger.Info("listening", zap.Stringer("addr", srv.Addr()), zap.Int("buffer_size", cfg.Server.BufferSize))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("shutting down", zap.Stringer("signal", sig))
		if err := srv.Close(); err != nil {
			logger.Error("failed to close listener", zap.Error(err))
		}
	}()

	if err := srv.Serve(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}

	stats := srv.Stats()
	logger.Info("final stats",
		zap.Int64("connections", stats.Connections),
		zap.Int64("parsed", stats.Parsed),
		zap.Int64("parse_errors", stats.ParseErrors),
		zap.Int64("read_errors", stats.ReadErrors),
		zap.Int64("write_errors", stats.WriteErrors),
		zap.Int64("accept_errors", stats.AcceptErrors),
	)
}
