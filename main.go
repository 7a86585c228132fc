package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-app/api"
	"food-app/bot"
	"food-app/config"
	"food-app/db"
	"food-app/lang"
	"food-app/metrics"
	"food-app/services"
	"food-app/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(ctx, cfg)
		return
	}

	if cfg.Telegram.Token == "" && cfg.HTTP.Addr == "" {
		fmt.Fprintln(os.Stderr, "nothing to run: set TOKEN and/or HTTP_ADDR")
		os.Exit(1)
	}

	if cfg.NeedsDB() {
		if err := db.Init(ctx, cfg.DB); err != nil {
			fmt.Fprintln(os.Stderr, "db:", err)
			os.Exit(1)
		}
		defer db.Close()

		if cfg.Catalog.AutoMigrate {
			if err := applyMigrations(ctx, false); err != nil {
				fmt.Fprintln(os.Stderr, "migrate:", err)
				os.Exit(1)
			}
		}
	}

	catalog, err := services.LoadCatalog(ctx, cfg.Catalog.Source, cfg.Catalog.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
	log.Printf("catalog loaded source=%s items=%d", cfg.Catalog.Source, catalog.Len())
	lang.Default = lang.Normalize(cfg.Lang)

	m := metrics.New()
	store := session.NewStore(m)
	m.TrackSessions(store.Len)

	var srv *http.Server
	if cfg.HTTP.Addr != "" {
		srv = &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           api.NewServer(catalog, store, m).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("http server: %v", err)
				stop()
			}
		}()
		fmt.Println("HTTP API listening on", cfg.HTTP.Addr)
	}

	var b *bot.Bot
	if cfg.Telegram.Token != "" {
		b, err = bot.New(cfg, catalog, store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bot:", err)
			os.Exit(1)
		}
		go b.Start()
		fmt.Println("Bot started.")
	}

	<-ctx.Done()
	fmt.Println("Shutting down.")
	if b != nil {
		b.Stop()
	}
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("http shutdown: %v", err)
		}
	}
}

func runMigrate(ctx context.Context, cfg *config.Config) {
	if err := db.Init(ctx, cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(ctx, true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
