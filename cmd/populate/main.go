// Command populate fills the catalog with synthetic translations for load
// testing and demo environments. It is intended to be run offline, not as
// part of the main server.
//
// Flags:
//
//	--count       number of translations to insert (required)
//	--batch-size  records per transaction (default from config)
//	--start-at    key sequence offset for disjoint runs against one DB
//	--seed        random seed; same seed and offset reproduce a run
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/localehub/catalog-backend/internal/adapter/postgres"
	tagrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/tag"
	translationrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/translation"
	"github.com/localehub/catalog-backend/internal/app"
	"github.com/localehub/catalog-backend/internal/app/populate"
	"github.com/localehub/catalog-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ populate.TranslationBulkRepo = (*translationrepo.Repo)(nil)
	_ populate.TagCatalogRepo      = (*tagrepo.Repo)(nil)
)

func main() {
	countFlag := flag.Int("count", 0, "number of translations to insert")
	batchSizeFlag := flag.Int("batch-size", 0, "records per transaction (default from config)")
	startAtFlag := flag.Int("start-at", 0, "key sequence offset")
	seedFlag := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	if appCfg.Populate.MaxRecords > 0 && *countFlag > appCfg.Populate.MaxRecords {
		logger.Error("count exceeds configured maximum",
			slog.Int("count", *countFlag),
			slog.Int("max_records", appCfg.Populate.MaxRecords))
		os.Exit(1)
	}

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	cfg := populate.Config{
		TargetCount:   *countFlag,
		BatchSize:     *batchSizeFlag,
		StartAt:       *startAtFlag,
		ProgressEvery: appCfg.Populate.ProgressEvery,
		Seed:          *seedFlag,
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = appCfg.Populate.BatchSize
	}

	pipeline := populate.NewPipeline(logger, translationrepo.New(pool), tagrepo.New(pool), txm, cfg)
	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully",
		slog.Int("inserted", result.Inserted),
		slog.Int("batches", result.Batches),
		slog.String("duration", result.Duration.String()))
}
