package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rahadianp/pesanin/gen/ent"
	"github.com/rahadianp/pesanin/internal/common"
	"github.com/rahadianp/pesanin/internal/export"
	"github.com/rahadianp/pesanin/internal/gazetteer"
	"github.com/rahadianp/pesanin/internal/ingest"
	"github.com/rahadianp/pesanin/internal/llm"
	"github.com/rahadianp/pesanin/internal/llm/openai"
	"github.com/rahadianp/pesanin/internal/pipeline"
	repo "github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/textparse"
)

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite instead of Postgres")
		dir     = flag.String("dir", "", "directory of txt/xlsx message dumps (required)")
		out     = flag.String("out", "", "output XLSX path (defaults next to --dir)")
		regions = flag.String("regions", "", "gazetteer CSV/XLSX to load before parsing")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "orders.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenSQLite(ctx, ":memory:", logger)
		if err != nil {
			logger.Error("failed to open sqlite", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if cfg.Database.DSN == "" {
			logger.Error("DB_URL is required without --inmem")
			os.Exit(1)
		}
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		entc = client
	}

	ordersRepo := repo.NewOrderRepository(entc, logger)
	regionsRepo := repo.NewRegionRepository(entc, logger)
	if *regions != "" {
		if _, err := gazetteer.LoadFile(ctx, regionsRepo, *regions, logger); err != nil {
			logger.Error("failed to load gazetteer", "path", *regions, "error", err)
			os.Exit(1)
		}
	}
	resolver := gazetteer.NewResolver(regionsRepo, logger)

	parser := textparse.NewParser(logger, textparse.Config{
		MinRegionConfidence: cfg.Parser.MinRegionConfidence,
	}, resolver)

	var fallback llm.OrderExtractor
	if cfg.LLM.APIKey != "" {
		fallback = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			Lenient:     true,
		}, logger)
		logger.Info("fallback extractor enabled", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OPENAI_API_KEY not set, fallback extraction disabled")
	}

	processor := pipeline.NewProcessor(logger, pipeline.Config{
		ReviewThreshold: cfg.Parser.ReviewThreshold,
	}, parser, ordersRepo, resolver, fallback)

	reader := ingest.NewFSReader(logger)
	logger.Info("reading message dumps", "dir", *dir)
	msgs, stats, err := reader.ReadDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to read directory", "error", err)
		os.Exit(1)
	}
	logger.Info("read complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"messages", stats.Messages,
		"failed", stats.Failed,
	)

	parsed := 0
	failures := 0
	orders := 0
	for _, m := range msgs {
		got, err := processor.ProcessText(ctx, m.Text)
		if err != nil {
			logger.Error("failed to process message", "source", m.SourcePath, "index", m.Index, "error", err)
			failures++
			continue
		}
		parsed++
		orders += len(got)
	}

	logger.Info("exporting to XLSX", "output", *out)
	exporter := export.NewService(ordersRepo, logger)
	xlsxBytes, err := exporter.ExportOrdersXLSX(ctx, nil, from, to)
	if err != nil {
		logger.Error("failed to export orders", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"messages", len(msgs),
		"parsed", parsed,
		"orders", orders,
		"failures", failures,
		"output_file", *out,
	)

	fmt.Println("Batch processing complete!")
	fmt.Printf("- Messages read: %d\n", len(msgs))
	fmt.Printf("- Orders extracted: %d\n", orders)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
