package main

import (
	"context"
	"log"
	"os"

	"editorial-cms/internal/config"
	"editorial-cms/internal/db"
	"editorial-cms/internal/seed"
	"editorial-cms/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var st store.Store
	switch cfg.StoreDriver {
	case "file":
		st = store.NewFile(cfg.StorePath)
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		st = store.NewPostgres(pool)
	default:
		logger.Fatalf("unknown store driver %q", cfg.StoreDriver)
	}

	if err := seed.Apply(ctx, st); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
