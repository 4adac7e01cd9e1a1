package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// Txs returns the transactions with their outputs, keyed by txid. Unknown txids are absent.
func (r *Repository) Txs(ctx context.Context, txIDs []string) (map[string]model.Tx, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("txs", err, start)
	}()

	result, err := r.txs(ctx, txIDs)
	return result, err
}

// GenesisTx returns the configured genesis transaction.
func (r *Repository) GenesisTx(ctx context.Context) (model.Tx, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("genesis_tx", err, start)
	}()

	txs, err := r.txs(ctx, []string{r.opts.GenesisTxID})
	if err != nil {
		return model.Tx{}, false, err
	}
	tx, ok := txs[r.opts.GenesisTxID]
	return tx, ok, nil
}

func (r *Repository) txs(ctx context.Context, txIDs []string) (map[string]model.Tx, error) {
	if len(txIDs) == 0 {
		return make(map[string]model.Tx), nil
	}

	result, err := r.txHeaders(ctx, txIDs)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	found := make([]string, 0, len(result))
	for id := range result {
		found = append(found, id)
	}
	sort.Strings(found)

	outputs, err := r.txOutputs(ctx, found)
	if err != nil {
		return nil, err
	}
	for id, outs := range outputs {
		tx := result[id]
		tx.Outputs = outs
		result[id] = tx
	}
	return result, nil
}

func (r *Repository) txHeaders(ctx context.Context, txIDs []string) (result map[string]model.Tx, err error) {
	const query = `
SELECT txid, block_height, time, burnt_fee
FROM dao_txs FINAL
WHERE network = ? AND txid IN ?`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), txIDs)
	if err != nil {
		return nil, fmt.Errorf("query txs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	result = make(map[string]model.Tx, len(txIDs))
	for rows.Next() {
		var (
			tx     model.Tx
			height uint32
		)
		if err = rows.Scan(&tx.ID, &height, &tx.Time, &tx.BurntFee); err != nil {
			return nil, fmt.Errorf("scan tx: %w", err)
		}
		tx.BlockHeight = int(height)
		tx.Time = tx.Time.UTC()
		result[tx.ID] = tx
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate txs: %w", err)
	}
	return result, nil
}

func (r *Repository) txOutputs(ctx context.Context, txIDs []string) (result map[string][]model.TxOutput, err error) {
	const query = `
SELECT txid, output_index, block_height, address, value, op_return_data
FROM dao_tx_outputs FINAL
WHERE network = ? AND txid IN ?
ORDER BY txid ASC, output_index ASC`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), txIDs)
	if err != nil {
		return nil, fmt.Errorf("query tx outputs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	result = make(map[string][]model.TxOutput, len(txIDs))
	for rows.Next() {
		out, scanErr := scanTxOutput(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		result[out.TxID] = append(result[out.TxID], out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tx outputs: %w", err)
	}
	return result, nil
}

// scanTxOutput reads txid, output_index, block_height, address, value, op_return_data.
func scanTxOutput(rows Rows) (model.TxOutput, error) {
	var (
		out         model.TxOutput
		index       uint32
		height      uint32
		opReturnHex string
	)
	if err := rows.Scan(&out.TxID, &index, &height, &out.Address, &out.Value, &opReturnHex); err != nil {
		return model.TxOutput{}, fmt.Errorf("scan tx output: %w", err)
	}
	out.Index = int(index)
	out.BlockHeight = int(height)
	if opReturnHex != "" {
		data, err := hex.DecodeString(opReturnHex)
		if err != nil {
			return model.TxOutput{}, fmt.Errorf("decode op return data of %s:%d: %w", out.TxID, index, err)
		}
		out.OpReturnData = data
	}
	return out, nil
}
