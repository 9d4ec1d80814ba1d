// Command savegen renders survivor drafts as save documents
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/survivor-save-builder/internal/config"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
	"github.com/KirkDiggler/survivor-save-builder/internal/repositories/characters"
	"github.com/KirkDiggler/survivor-save-builder/internal/repositories/references"
	"github.com/KirkDiggler/survivor-save-builder/internal/serializer"
	"github.com/KirkDiggler/survivor-save-builder/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := &options{}
	referenceFile := flag.String("reference", cfg.Reference.File, "reference data file (yaml)")
	seedReference := flag.Bool("seed-reference", false, "publish the reference file to Redis and exit")
	quiet := flag.Bool("quiet", cfg.Export.Quiet, "do not log each serializer warning")
	flag.StringVar(&opts.SurvivorFile, "survivor", "", "survivor file (yaml or json) to export")
	flag.StringVar(&opts.CharacterID, "id", "", "stored draft to export")
	flag.StringVar(&opts.OwnerID, "owner", "", "owner of saved or listed drafts")
	flag.StringVar(&opts.OutPath, "out", "", "output path, - for stdout (default <output-dir>/<character id>.xml)")
	flag.StringVar(&opts.OutputDir, "output-dir", cfg.Export.OutputDir, "directory for generated documents")
	flag.BoolVar(&opts.Strict, "strict", cfg.Export.Strict, "fail on invalid survivors instead of applying defaults")
	flag.BoolVar(&opts.Save, "save", false, "store the survivor file as a draft before exporting")
	flag.BoolVar(&opts.List, "list", false, "list the drafts of -owner")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providerConfig := &services.ProviderConfig{
		Serializer: serializer.New(&serializer.Config{Quiet: *quiet}),
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Error closing Redis connection: %v", closeErr)
			}
		}()

		providerConfig.CharacterRepository = characters.NewRedisRepository(&characters.RedisRepoConfig{
			Client:   redisClient,
			DraftTTL: cfg.Redis.DraftTTL,
		})
		log.Println("Using Redis for drafts")
	} else {
		log.Println("No REDIS_URL found, using in-memory drafts")
	}

	if *seedReference {
		if err := seed(ctx, redisClient, *referenceFile); err != nil {
			log.Fatalf("Failed to seed reference data: %v", err)
		}
		return
	}

	switch {
	case cfg.Reference.Source == config.ReferenceSourceRedis:
		providerConfig.ReferenceLoader = references.NewRedisLoader(redisClient)
	case *referenceFile != "":
		providerConfig.ReferenceLoader = references.NewFileLoader(*referenceFile)
	default:
		log.Println("No reference data configured, display names will not be resolved")
	}

	provider := services.NewProvider(providerConfig)
	r := &runner{service: provider.ExportService, stdout: os.Stdout}
	if err := r.run(ctx, opts); err != nil {
		log.Fatalf("savegen: %v", err)
	}
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func seed(ctx context.Context, client *redis.Client, path string) error {
	if client == nil {
		return dnderr.InvalidArgument("REDIS_URL is required to seed reference data")
	}

	catalog, err := references.NewFileLoader(path).Load(ctx)
	if err != nil {
		return err
	}

	return references.NewRedisLoader(client).Publish(ctx, catalog)
}
