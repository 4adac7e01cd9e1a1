// Package clickhouse reads ledger and governance state from ClickHouse and stores
// burning man snapshots.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
	// Conn is the part of a ClickHouse connection the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)

// Options describe the ledger the repository serves.
type Options struct {
	Network       model.Network
	GenesisTxID   string
	GenesisHeight int
	// DefaultRecipientAddress is returned for the recipient address param until
	// governance changes it.
	DefaultRecipientAddress string
}

type Repository struct {
	conn    Conn
	metrics Metrics
	opts    Options
}

func NewRepository(dsn string, opts Options, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if opts.Network == "" {
		return nil, errors.New("network is required")
	}
	if opts.GenesisTxID == "" {
		return nil, errors.New("genesis tx id is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, metrics: metrics, opts: opts}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// GenesisBlockHeight returns the configured genesis height.
func (r *Repository) GenesisBlockHeight() int {
	return r.opts.GenesisHeight
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.Observe(operation, r.opts.Network, err, started)
}

// driverConn narrows a driver connection to Conn.
type driverConn struct {
	conn driver.Conn
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
