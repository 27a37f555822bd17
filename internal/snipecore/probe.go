package snipecore

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/avdeev99/mint-sniper/internal/metrics"
)

const probeTimeout = 3 * time.Second

// ProbeLive simulates the mint call against current state and reports whether
// it would go through. Every error path, including transport errors, maps to
// "not live": a false negative just delays firing by one block, a thrown error
// could kill the watch. The two outcomes are deliberately the only ones.
func ProbeLive(ctx context.Context, caller ethereum.ContractCaller, from common.Address, t Template) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	to := t.To
	msg := ethereum.CallMsg{
		From:  from,
		To:    &to,
		Data:  t.Data,
		Value: t.Value(),
	}
	if _, err := caller.CallContract(ctx, msg, nil); err != nil {
		metrics.ProbesTotal.WithLabelValues("not_live").Inc()
		return false
	}
	metrics.ProbesTotal.WithLabelValues("live").Inc()
	return true
}
