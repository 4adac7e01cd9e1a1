package clickhouse

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/pkg/safe"
)

// lockTimeTradePayoutDefault is the value the trade payout lock time param carries
// until governance changes it.
const lockTimeTradePayoutDefault = 4320

// ParamValue returns the value of param effective at height, or its default when it
// was never changed before that height.
func (r *Repository) ParamValue(ctx context.Context, param model.Param, height int) (string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("param_value", err, start)
	}()

	h, err := safe.Uint32(height)
	if err != nil {
		return "", fmt.Errorf("convert height: %w", err)
	}

	const query = `
SELECT value
FROM dao_param_changes FINAL
WHERE network = ? AND param = ? AND activation_height <= ?
ORDER BY activation_height DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), string(param), h)
	if err != nil {
		return "", fmt.Errorf("query param %s: %w", param, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var (
		value string
		found bool
	)
	for rows.Next() {
		if err = rows.Scan(&value); err != nil {
			return "", fmt.Errorf("scan param %s: %w", param, err)
		}
		found = true
	}
	if err = rows.Err(); err != nil {
		return "", fmt.Errorf("iterate param %s: %w", param, err)
	}
	if found {
		return value, nil
	}

	value, ok := r.defaultParamValue(param)
	if !ok {
		err = fmt.Errorf("param %s has no value at %d", param, height)
		return "", err
	}
	return value, nil
}

func (r *Repository) defaultParamValue(param model.Param) (string, bool) {
	switch param {
	case model.ParamLockTimeTradePayout:
		return strconv.Itoa(lockTimeTradePayoutDefault), true
	case model.ParamRecipientBTCAddress:
		return r.opts.DefaultRecipientAddress, r.opts.DefaultRecipientAddress != ""
	default:
		return "", false
	}
}
