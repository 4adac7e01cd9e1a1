package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/bitcoin"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/internal/burningman/repository/clickhouse"
	"github.com/goodnatureofminers/burningman/internal/burningman/service"
	"github.com/goodnatureofminers/burningman/internal/burningman/transport"
	"github.com/goodnatureofminers/burningman/internal/burningman/wallet"
	"github.com/goodnatureofminers/burningman/internal/metrics"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type config struct {
	ClickhouseDSN         string        `long:"clickhouse-dsn" env:"BURNINGMAN_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network               model.Network `long:"network" env:"BURNINGMAN_NETWORK" description:"bitcoin network of the ledger" default:"mainnet"`
	GenesisTxID           string        `long:"genesis-txid" env:"BURNINGMAN_GENESIS_TXID" description:"ledger genesis transaction id" required:"true"`
	GenesisHeight         int           `long:"genesis-height" env:"BURNINGMAN_GENESIS_HEIGHT" description:"ledger genesis block height" required:"true"`
	LegacyRecipient       string        `long:"legacy-recipient" env:"BURNINGMAN_LEGACY_RECIPIENT" description:"legacy burning man address until governance changes it"`
	PollInterval          time.Duration `long:"poll-interval" env:"BURNINGMAN_POLL_INTERVAL" description:"chain height poll interval" default:"10s"`
	HTTPAddr              string        `long:"http-addr" env:"BURNINGMAN_HTTP_ADDR" description:"address for the JSON API" default:":8001"`
	GRPCAddr              string        `long:"grpc-addr" env:"BURNINGMAN_GRPC_ADDR" description:"address for the gRPC health service" default:":8000"`
	MetricsAddr           string        `long:"metrics-addr" env:"BURNINGMAN_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	OwnedGenesisOutputs   []int         `long:"owned-genesis-output" env:"BURNINGMAN_OWNED_GENESIS_OUTPUTS" env-delim:"," description:"genesis output index owned by the local wallet (repeatable)"`
	CompensationProposals []string      `long:"compensation-name" env:"BURNINGMAN_COMPENSATION_NAMES" env-delim:"," description:"name used in the local party's compensation requests (repeatable)"`
	ShutdownGracePeriod   time.Duration `long:"shutdown-grace" env:"BURNINGMAN_SHUTDOWN_GRACE" description:"grace period for draining HTTP requests" default:"5s"`
	DisablePayoutScripts  bool          `long:"disable-payout-scripts" env:"BURNINGMAN_DISABLE_PAYOUT_SCRIPTS" description:"do not attach output scripts to delayed payout responses"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := bitcoin.ValidateTxID(cfg.GenesisTxID); err != nil {
		logger.Fatal("invalid genesis txid", zap.Error(err))
	}

	if err := run(ctx, cfg, logger.With(zap.String("network", string(cfg.Network)))); err != nil {
		logger.Fatal("burningman daemon failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, clickhouse.Options{
		Network:                 cfg.Network,
		GenesisTxID:             cfg.GenesisTxID,
		GenesisHeight:           cfg.GenesisHeight,
		DefaultRecipientAddress: cfg.LegacyRecipient,
	}, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	localWallet, err := wallet.NewStatic(cfg.GenesisTxID, cfg.OwnedGenesisOutputs, cfg.CompensationProposals)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}

	svc := service.NewService(
		repo,
		repo,
		localWallet,
		metrics.NewCandidateBuilder(cfg.Network),
		metrics.NewSnapshotCache(cfg.Network),
		logger.Named("service"),
	)

	watcher, err := service.NewBlockWatcher(repo, logger.Named("watcher"), svc)
	if err != nil {
		return err
	}
	watcher.SetPollInterval(cfg.PollInterval)

	var outputs transport.OutputBuilder
	if !cfg.DisablePayoutScripts {
		builder, err := bitcoin.NewOutputBuilder(cfg.Network)
		if err != nil {
			return fmt.Errorf("init output builder: %w", err)
		}
		outputs = builder
	}
	handler := transport.NewHandler(svc, outputs, logger.Named("http"))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("block watcher: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return serveHTTP(ctx, cfg.HTTPAddr, handler.Router(), cfg.ShutdownGracePeriod, logger)
	})
	g.Go(func() error {
		return serveGRPC(ctx, cfg.GRPCAddr, logger)
	})
	return g.Wait()
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, grace time.Duration, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func serveGRPC(ctx context.Context, addr string, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	logger.Info("starting gRPC server", zap.String("addr", addr))
	if err := grpcServer.Serve(socket); err != nil {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
