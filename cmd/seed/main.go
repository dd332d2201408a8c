// Command seed vacía las colecciones del catálogo y carga un catálogo de
// demostración a través de los mismos servicios que usa la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"affiliate-catalog/internal/config"
	"affiliate-catalog/internal/database"
	"affiliate-catalog/internal/logger"
	"affiliate-catalog/internal/repository"
	"affiliate-catalog/internal/service"
)

var collections = []string{
	database.ProductsCollection,
	database.CategoriesCollection,
	database.FavoritesCollection,
	database.ArticlesCollection,
}

func main() {
	file := flag.String("file", "", "catalog JSON file (defaults to the embedded demo catalog)")
	keep := flag.Bool("keep", false, "do not clear existing documents first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log := logger.New(config.LogConfig{Level: "info", Pretty: true})
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	cfg.Log.Pretty = true
	log := logger.New(cfg.Log)

	cat, err := loadCatalog(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read catalog")
	}
	if err := cat.validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid catalog")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Disconnect(client, log)

	store := database.NewStore(client.Database(cfg.Mongo.Database), cfg.Mongo.OpTimeout, log)
	if err := run(ctx, store, cat, !*keep, log); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return
	}
}

func run(ctx context.Context, store *database.Store, cat *catalog, reset bool, log zerolog.Logger) error {
	if reset {
		for _, coll := range collections {
			n, err := store.DeleteMany(ctx, coll, bson.M{})
			if err != nil {
				return err
			}
			log.Info().Str("collection", coll).Int64("deleted", n).Msg("cleared")
		}
	}

	if err := database.EnsureIndexes(ctx, store, log); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	svcs := service.New(repository.New(store), log)

	for i := range cat.Categories {
		if _, err := svcs.Category.Create(ctx, &cat.Categories[i], ""); err != nil {
			return err
		}
	}
	for i := range cat.Products {
		if _, err := svcs.Product.Create(ctx, &cat.Products[i], ""); err != nil {
			return err
		}
	}
	for i := range cat.Articles {
		if _, err := svcs.Article.Create(ctx, &cat.Articles[i], ""); err != nil {
			return err
		}
	}

	log.Info().
		Int("categories", len(cat.Categories)).
		Int("products", len(cat.Products)).
		Int("articles", len(cat.Articles)).
		Msg("catalog seeded")
	return nil
}
