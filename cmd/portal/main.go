package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vqdung71104/student-management-sub000/internal/config"
	"github.com/vqdung71104/student-management-sub000/internal/server"
)

var (
	port    = flag.Int("port", 0, "listen port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Warn("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if cfg.Server.DevMode {
		logrus.SetLevel(logrus.DebugLevel)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logrus.WithField("addr", addr).Info("portal listening")
		if err := srv.Run(addr); err != nil {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	if err := srv.Close(); err != nil {
		logrus.WithError(err).Warn("failed to close cleanly")
	}
}
