package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	geoloaderv1 "github.com/jharrell-gis/geoloader/gen/proto/geoloader/v1"
	"github.com/jharrell-gis/geoloader/internal/async"
	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/export"
	"github.com/jharrell-gis/geoloader/internal/geoserver"
	"github.com/jharrell-gis/geoloader/internal/jobs"
	"github.com/jharrell-gis/geoloader/internal/repository"
	"github.com/jharrell-gis/geoloader/internal/server"
	"github.com/jharrell-gis/geoloader/internal/solr"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()
	slogger := slog.Default()

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB Pool + ent client
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	// Healthcheck DB on startup
	if err := repository.HealthCheck(ctx, pool, 3*time.Second, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Wiring: job store, remote clients, workflow factory, worker queue
	jobsRepo := repository.NewJobRepository(entc, slogger)
	publisher := geoserver.NewClient(cfg.GeoServer, slogger)
	indexer := solr.NewClient(cfg.Solr, slogger)
	factory := jobs.NewFactory(jobsRepo, publisher, indexer, cfg.GeoServer.Workspace, slogger)
	queue := async.NewRunnerQueue(slogger)
	exporter := export.NewService(jobsRepo, slogger)

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewUploadService(factory, queue, jobsRepo, exporter, logger)
	geoloaderv1.RegisterUploadServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(shutdownCtx)
	cancel()
	fmt.Println("stopped.")
}
