package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ordersv1 "github.com/rahadianp/pesanin/gen/orders/v1"
	"github.com/rahadianp/pesanin/internal/async"
	"github.com/rahadianp/pesanin/internal/common"
	"github.com/rahadianp/pesanin/internal/export"
	"github.com/rahadianp/pesanin/internal/gazetteer"
	"github.com/rahadianp/pesanin/internal/ingest"
	"github.com/rahadianp/pesanin/internal/llm"
	"github.com/rahadianp/pesanin/internal/llm/openai"
	"github.com/rahadianp/pesanin/internal/pipeline"
	repo "github.com/rahadianp/pesanin/internal/repository"
	"github.com/rahadianp/pesanin/internal/server"
	"github.com/rahadianp/pesanin/internal/textparse"
)

func main() {
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	ordersRepo := repo.NewOrderRepository(entc, logger)
	regionsRepo := repo.NewRegionRepository(entc, logger)
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

	queue := async.NewParseQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(time.Minute),
	)

	exporter := export.NewService(ordersRepo, logger)
	reader := ingest.NewFSReader(logger)

	grpcServer := grpc.NewServer()
	svc := server.NewOrderService(processor, queue, ordersRepo, exporter, reader, resolver, zlog)
	ordersv1.RegisterOrderServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("pesanind listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
