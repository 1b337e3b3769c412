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

	"editorial-cms/internal/config"
	"editorial-cms/internal/db"
	"editorial-cms/internal/httpserver"
	"editorial-cms/internal/importer"
	"editorial-cms/internal/mailer"
	articlesvc "editorial-cms/internal/service/article"
	categorysvc "editorial-cms/internal/service/category"
	networksvc "editorial-cms/internal/service/network"
	notificationsvc "editorial-cms/internal/service/notification"
	"editorial-cms/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer cleanup()

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	}, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Articles:         articlesvc.New(st),
		Categories:       categorysvc.New(st),
		Networks:         networksvc.New(st),
		Notifications:    notificationsvc.New(st),
		Importer:         importer.New(st, logger),
		Mailer:           mail,
		PublicBaseURL:    cfg.PublicBaseURL,
		NotifyRecipients: cfg.NotifyRecipients,
		CORSOrigins:      cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (store driver: %s)", cfg.HTTPAddr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case "file":
		return store.NewFile(cfg.StorePath), func() {}, nil
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgres(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
