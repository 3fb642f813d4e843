package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yuniersoad/dota2notify/internal/checker"
	"github.com/yuniersoad/dota2notify/internal/config"
	"github.com/yuniersoad/dota2notify/internal/database"
	internalhttp "github.com/yuniersoad/dota2notify/internal/http"
	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
	slacknotifier "github.com/yuniersoad/dota2notify/internal/notifier/slack"
	"github.com/yuniersoad/dota2notify/internal/notifier/telegram"
	"github.com/yuniersoad/dota2notify/internal/opendota"
	"github.com/yuniersoad/dota2notify/internal/users"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)

	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer teardown()

	store := users.New(db)
	metricsService := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	dota := opendota.NewClient()

	var notif notifier.Notifier
	switch cfg.NotifierBackend {
	case config.BackendSlack:
		notif = slacknotifier.NewNotifier(cfg.Slack.Token, metricsService)
	default:
		tg, err := telegram.NewNotifier(cfg.Telegram.BotToken, metricsService)
		if err != nil {
			log.Fatal("Failed to initialize telegram notifier", "error", err)
		}
		notif = tg
	}

	chk := checker.New(store, dota, notif, metricsService, cfg.MatchCheck)
	server := internalhttp.NewServer(store, dota, notif, chk, metricsService, metricsHandler, cfg)

	metricsService.SetStartupTime(time.Since(startTime).Seconds())
	log.Info("Service started", "port", cfg.Port, "backend", cfg.NotifierBackend, "startup", time.Since(startTime))

	ctx, cancel := context.WithCancel(context.Background())
	go chk.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		cancel()
		log.Fatal("Server error", "error", err)
	case sig := <-shutdown:
		log.Info("Shutting down", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", "error", err)
			srv.Close()
		}
	}
}
