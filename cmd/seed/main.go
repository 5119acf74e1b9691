// Command main writes the demo collections into the configured blob store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"time"

	"postdeck/internal/blob"
	"postdeck/internal/cache"
	"postdeck/internal/config"
	"postdeck/internal/repository"
	"postdeck/internal/seed"
)

func main() {
	overwrite := flag.Bool("overwrite", false, "Replace existing collections")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	if err := writeCollection(ctx, store, repository.PostsKey, seed.Posts(now), *overwrite); err != nil {
		log.Fatalf("Seeding posts failed: %v", err)
	}
	if err := writeCollection(ctx, store, repository.PlatformsKey, seed.Platforms(), *overwrite); err != nil {
		log.Fatalf("Seeding platforms failed: %v", err)
	}

	log.Println("Seeding complete")
}

func newStore(cfg *config.Config) (blob.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		cache.InitRedis(cfg.RedisURL)
		rdb := cache.GetClient()
		if rdb == nil {
			log.Fatal("Redis store configured but unreachable")
		}
		return blob.NewRedisStore(rdb, "postdeck"), nil
	case config.StoreMemory:
		log.Fatal("Seeding an in-memory store has no effect")
		return nil, nil
	default:
		return blob.NewFileStore(cfg.DataDir)
	}
}

func writeCollection(ctx context.Context, store blob.Store, key string, collection any, overwrite bool) error {
	if !overwrite {
		if _, err := store.Get(ctx, key); err == nil {
			log.Printf("Collection %s already exists, skipping (use -overwrite to replace)", key)
			return nil
		}
	}

	data, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, key, data); err != nil {
		return err
	}

	log.Printf("Wrote collection %s", key)
	return nil
}
