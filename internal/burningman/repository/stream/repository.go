// Package stream writes candidate snapshots as length prefixed protobuf envelopes,
// for peers or tools that consume snapshots without a ClickHouse instance.
package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type EnvelopeWriter interface {
	WriteEnvelope(msg proto.Message) error
}

// Repository implements the snapshot repository on top of an envelope writer.
// The writer is not safe for concurrent use, so writes are serialized.
type Repository struct {
	mu     sync.Mutex
	writer EnvelopeWriter
}

func NewRepository(writer EnvelopeWriter) *Repository {
	return &Repository{writer: writer}
}

// InsertCandidateSnapshots writes one envelope per row in row order.
func (r *Repository) InsertCandidateSnapshots(ctx context.Context, rows []model.CandidateSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := SnapshotEnvelope(row)
		if err != nil {
			return err
		}
		if err := r.writer.WriteEnvelope(msg); err != nil {
			return fmt.Errorf("write snapshot %s@%d: %w", row.Name, row.Height, err)
		}
	}
	return nil
}

// SnapshotEnvelope encodes a snapshot row as a protobuf Struct.
func SnapshotEnvelope(row model.CandidateSnapshot) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(map[string]any{
		"network":                         string(row.Network),
		"height":                          row.Height,
		"name":                            row.Name,
		"receiver_address":                row.ReceiverAddress,
		"accumulated_compensation_amount": row.AccumulatedCompensationAmount,
		"accumulated_decayed_compensation_amount": row.AccumulatedDecayedCompensationAmount,
		"accumulated_burn_amount":                 row.AccumulatedBurnAmount,
		"accumulated_decayed_burn_amount":         row.AccumulatedDecayedBurnAmount,
		"compensation_share":                      row.CompensationShare,
		"burn_amount_share":                       row.BurnAmountShare,
		"effective_burn_output_share":             row.EffectiveBurnOutputShare,
		"burn_target":                             row.BurnTarget,
		"created_at":                              row.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot %s@%d: %w", row.Name, row.Height, err)
	}
	return msg, nil
}
