package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/bitcoin"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/internal/burningman/repository/clickhouse"
	"github.com/goodnatureofminers/burningman/internal/burningman/repository/stream"
	"github.com/goodnatureofminers/burningman/internal/burningman/service"
	"github.com/goodnatureofminers/burningman/internal/burningman/wallet"
	"github.com/goodnatureofminers/burningman/internal/metrics"
	"github.com/goodnatureofminers/burningman/internal/p2p"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	sinkClickhouse = "clickhouse"
	sinkStream     = "stream"
)

type config struct {
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"SNAPSHOT_EXPORTER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network         model.Network `long:"network" env:"SNAPSHOT_EXPORTER_NETWORK" description:"bitcoin network of the ledger" default:"mainnet"`
	GenesisTxID     string        `long:"genesis-txid" env:"SNAPSHOT_EXPORTER_GENESIS_TXID" description:"ledger genesis transaction id" required:"true"`
	GenesisHeight   int           `long:"genesis-height" env:"SNAPSHOT_EXPORTER_GENESIS_HEIGHT" description:"ledger genesis block height" required:"true"`
	LegacyRecipient string        `long:"legacy-recipient" env:"SNAPSHOT_EXPORTER_LEGACY_RECIPIENT" description:"legacy burning man address until governance changes it"`
	From            int           `long:"from" env:"SNAPSHOT_EXPORTER_FROM" description:"first chain height of the range (defaults to genesis height)"`
	To              int           `long:"to" env:"SNAPSHOT_EXPORTER_TO" description:"last chain height of the range (defaults to the ledger tip)"`
	Workers         int           `long:"workers" env:"SNAPSHOT_EXPORTER_WORKERS" description:"heights built concurrently" default:"4"`
	Sink            string        `long:"sink" env:"SNAPSHOT_EXPORTER_SINK" description:"where snapshots go" choice:"clickhouse" choice:"stream" default:"clickhouse"`
	StreamPath      string        `long:"stream-path" env:"SNAPSHOT_EXPORTER_STREAM_PATH" description:"file for the stream sink, stdout when empty"`
	MetricsAddr     string        `long:"metrics-addr" env:"SNAPSHOT_EXPORTER_METRICS_ADDR" description:"address for metrics server" default:":2113"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("snapshot export failed", zap.Error(err))
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

	from, to := cfg.From, cfg.To
	if from == 0 {
		from = cfg.GenesisHeight
	}
	if to == 0 {
		if to, err = repo.ChainHeight(ctx); err != nil {
			return fmt.Errorf("query chain height: %w", err)
		}
	}

	sink, closeSink, err := newSink(cfg, repo, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	// Historical views do not depend on wallet facts.
	noWallet, err := wallet.NewStatic("", nil, nil)
	if err != nil {
		return err
	}
	svc := service.NewService(
		repo,
		repo,
		noWallet,
		metrics.NewCandidateBuilder(cfg.Network),
		metrics.NewSnapshotCache(cfg.Network),
		logger.Named("service"),
	)

	exporter, err := service.NewSnapshotExporter(svc, sink, metrics.NewSnapshotExporter(cfg.Network), cfg.Network, logger.Named("exporter"))
	if err != nil {
		return err
	}
	exporter.SetWorkerCount(cfg.Workers)

	started := time.Now()
	logger.Info("exporting snapshots",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.String("sink", cfg.Sink),
	)
	if err := exporter.Export(ctx, from, to); err != nil {
		return err
	}
	logger.Info("snapshots exported", zap.Duration("took", time.Since(started)))
	return nil
}

func newSink(cfg config, repo *clickhouse.Repository, logger *zap.Logger) (service.SnapshotRepository, func(), error) {
	switch cfg.Sink {
	case sinkClickhouse:
		return repo, func() {}, nil
	case sinkStream:
		var out io.Writer = os.Stdout
		if cfg.StreamPath != "" {
			f, err := os.Create(cfg.StreamPath)
			if err != nil {
				return nil, nil, fmt.Errorf("create stream file: %w", err)
			}
			out = f
		}
		stats := p2p.NewStatistic(time.Now())
		writer := p2p.NewWriter(out, stats, metrics.NewEnvelope(), nil, logger.Named("stream"))
		closeSink := func() {
			logger.Info("stream sink closed",
				zap.Int64("messages", stats.SentMessages()),
				zap.Int64("bytes", stats.SentBytes()),
			)
			if out != os.Stdout {
				writer.Close()
			}
		}
		return stream.NewRepository(writer), closeSink, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}
}
