// Package p2p frames protobuf envelopes on a byte stream with a varint length prefix.
package p2p

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	// DefaultMaxEnvelopeSize bounds a single framed message.
	DefaultMaxEnvelopeSize = 10 << 20
	slowWriteThreshold     = 10 * time.Second
)

type Metrics interface {
	ObserveWrite(message string, bytes int, err error, started time.Time)
	ObserveRead(message string, bytes int, err error, started time.Time)
}

// KeepAlive reports whether msg only keeps the connection open. Such messages are
// counted but do not move the last activity time.
type KeepAlive func(msg proto.Message) bool

// Writer writes length prefixed envelopes. It is not safe for concurrent use.
type Writer struct {
	out       io.Writer
	buf       *bufio.Writer
	stats     *Statistic
	metrics   Metrics
	keepAlive KeepAlive
	logger    *zap.Logger
	now       func() time.Time
}

// NewWriter returns a Writer on out. metrics and keepAlive may be nil.
func NewWriter(out io.Writer, stats *Statistic, metrics Metrics, keepAlive KeepAlive, logger *zap.Logger) *Writer {
	return &Writer{
		out:       out,
		buf:       bufio.NewWriter(out),
		stats:     stats,
		metrics:   metrics,
		keepAlive: keepAlive,
		logger:    logger,
		now:       time.Now,
	}
}

// WriteEnvelope frames msg, flushes it to the sink and records the statistics.
func (w *Writer) WriteEnvelope(msg proto.Message) (err error) {
	started := w.now()
	name := messageName(msg)
	var n int
	defer func() {
		if w.metrics != nil {
			w.metrics.ObserveWrite(name, n, err, started)
		}
	}()

	if n, err = protodelim.MarshalTo(w.buf, msg); err != nil {
		return fmt.Errorf("write envelope %s: %w", name, err)
	}
	if err = w.buf.Flush(); err != nil {
		return fmt.Errorf("flush envelope %s: %w", name, err)
	}

	finished := w.now()
	if d := finished.Sub(started); d > slowWriteThreshold {
		w.logger.Info("slow envelope write", zap.String("message", name), zap.Duration("duration", d))
	}
	w.stats.addSent(n)
	if w.keepAlive == nil || !w.keepAlive(msg) {
		w.stats.touch(finished)
	}
	return nil
}

// Close closes the sink when it is an io.Closer. Errors are logged, not returned,
// since the connection is going away anyway.
func (w *Writer) Close() {
	c, ok := w.out.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		w.logger.Error("close envelope sink", zap.Error(err))
	}
}

// Reader reads length prefixed envelopes. It is not safe for concurrent use.
type Reader struct {
	in        *bufio.Reader
	stats     *Statistic
	metrics   Metrics
	keepAlive KeepAlive
	opts      protodelim.UnmarshalOptions
	now       func() time.Time
}

// NewReader returns a Reader on in that rejects envelopes above maxSize bytes.
// A non-positive maxSize selects DefaultMaxEnvelopeSize.
func NewReader(in io.Reader, stats *Statistic, metrics Metrics, keepAlive KeepAlive, maxSize int64) *Reader {
	if maxSize <= 0 {
		maxSize = DefaultMaxEnvelopeSize
	}
	return &Reader{
		in:        bufio.NewReader(in),
		stats:     stats,
		metrics:   metrics,
		keepAlive: keepAlive,
		opts:      protodelim.UnmarshalOptions{MaxSize: maxSize},
		now:       time.Now,
	}
}

// ReadEnvelope reads the next envelope into msg. It returns io.EOF when the source
// ends cleanly between envelopes.
func (r *Reader) ReadEnvelope(msg proto.Message) (err error) {
	started := r.now()
	name := messageName(msg)
	var n int
	defer func() {
		if r.metrics != nil && !errors.Is(err, io.EOF) {
			r.metrics.ObserveRead(name, n, err, started)
		}
	}()

	if err = r.opts.UnmarshalFrom(r.in, msg); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("read envelope %s: %w", name, err)
	}

	size := proto.Size(msg)
	n = protowire.SizeVarint(uint64(size)) + size
	r.stats.addReceived(n)
	if r.keepAlive == nil || !r.keepAlive(msg) {
		r.stats.touch(r.now())
	}
	return nil
}

func messageName(msg proto.Message) string {
	if msg == nil {
		return "nil"
	}
	return string(msg.ProtoReflect().Descriptor().FullName())
}
