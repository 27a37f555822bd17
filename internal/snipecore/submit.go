package snipecore

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/avdeev99/mint-sniper/internal/metrics"
)

// balanceEpsilon absorbs float noise in the preflight comparison.
const balanceEpsilon = 1e-12

const receiptPollInterval = 300 * time.Millisecond

type submitPhase int

const (
	phasePreflight submitPhase = iota
	phaseSubmitting
	phaseAwaitConfirm
)

// SubmitWallet runs one wallet through the bounded RBF escalation machine:
// PREFLIGHT -> SUBMITTING -> AWAITING_CONFIRMATION, with retry as an explicit
// transition back to SUBMITTING at the next attempt index. The nonce is fixed
// once in preflight and reused on every bump, so each resubmission replaces
// the previous still-pending transaction instead of queueing behind it.
func SubmitWallet(ctx context.Context, node NodeClient, w WalletHandle, p *Params, ethUsd float64) SubmissionResult {
	var (
		phase    = phasePreflight
		attempt  int
		nonce    uint64
		lastHash common.Hash
		hasHash  bool
	)

	done := func(st Status, hash string, reason string) SubmissionResult {
		metrics.SubmissionResults.WithLabelValues(string(st)).Inc()
		return SubmissionResult{Wallet: w.Addr, Status: st, TxHash: hash, Reason: reason}
	}
	lastHashHex := func() string {
		if !hasHash {
			return ""
		}
		return lastHash.Hex()
	}

	for {
		if err := ctx.Err(); err != nil {
			return done(StatusPendingOrFailed, lastHashHex(), fmt.Sprintf("cancelled: %v", err))
		}

		switch phase {
		case phasePreflight:
			needEth := p.MintValueEth + p.GasUsdCap/ethUsd
			bal, err := node.BalanceAt(ctx, w.Addr, nil)
			if err != nil {
				// Unknown balance is not a reason to sit out the race.
				p.logf("wallet %s: balance read failed (%v), continuing", w.Addr.Hex(), err)
			} else if balEth := WeiToEther(bal); balEth+balanceEpsilon < needEth {
				return done(StatusSkipBalance, "",
					fmt.Sprintf("balance %.6f ETH < required %.6f ETH (mint %.6f + gas cap %.6f)",
						balEth, needEth, p.MintValueEth, p.GasUsdCap/ethUsd))
			}
			n, err := node.PendingNonceAt(ctx, w.Addr)
			if err != nil {
				return done(StatusPendingOrFailed, "", fmt.Sprintf("nonce read: %v", err))
			}
			nonce = n
			phase = phaseSubmitting

		case phaseSubmitting:
			if attempt > p.MaxBumps {
				return done(StatusPendingOrFailed, lastHashHex(),
					fmt.Sprintf("bump budget exhausted after %d attempts", p.MaxBumps+1))
			}
			fees := FeesForAttempt(attempt, p.GasUsdCap, p.GasLimit, ethUsd, p.PriorityFloorGwei, p.BumpMult, nonce)
			signed, err := w.Sign(buildDynamicTx(p.ChainID, p.Template, fees, p.GasLimit), p.ChainID)
			if err != nil {
				return done(StatusPendingOrFailed, lastHashHex(), fmt.Sprintf("sign: %v", err))
			}
			metrics.BumpAttempts.Inc()
			p.logf("wallet %s: attempt %d nonce=%d maxFee=%s tip=%s",
				w.Addr.Hex(), attempt, nonce, fmtGwei(fees.MaxFeePerGas), fmtGwei(fees.MaxPriorityFeePerGas))
			if err := node.SendTransaction(ctx, signed); err != nil {
				p.logf("wallet %s: send error: %v", w.Addr.Hex(), err)
				sleepCtx(ctx, p.sendBackoff())
				attempt++
				continue
			}
			lastHash = signed.Hash()
			hasHash = true
			phase = phaseAwaitConfirm

		case phaseAwaitConfirm:
			rcpt := waitReceipt(ctx, node, lastHash, p.confirmWait())
			if rcpt == nil {
				// Still pending inside the short window: bump and replace.
				attempt++
				phase = phaseSubmitting
				continue
			}
			if rcpt.Status == types.ReceiptStatusSuccessful {
				return done(StatusSuccess, lastHash.Hex(), "")
			}
			return done(StatusFailed, lastHash.Hex(), "transaction reverted on-chain")
		}
	}
}

// waitReceipt polls for a receipt until the window closes. A missing receipt
// is a normal outcome here, not an error.
func waitReceipt(ctx context.Context, node NodeClient, hash common.Hash, window time.Duration) *types.Receipt {
	deadline := time.Now().Add(window)
	for {
		if rcpt, err := node.TransactionReceipt(ctx, hash); err == nil && rcpt != nil {
			return rcpt
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			return nil
		}
		sleepCtx(ctx, receiptPollInterval)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
