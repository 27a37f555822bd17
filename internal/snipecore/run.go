package snipecore

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/avdeev99/mint-sniper/internal/metrics"
)

// firedGate is the single shared-mutation point before firing: the first
// caller to observe "not yet fired" flips it, everyone else becomes a no-op.
type firedGate struct {
	fired atomic.Bool
}

func (g *firedGate) TryFire() bool { return g.fired.CompareAndSwap(false, true) }
func (g *firedGate) Fired() bool   { return g.fired.Load() }

// Coordinator watches new blocks for the mint going live and, exactly once
// per process run, fans submission out over all configured wallets.
type Coordinator struct {
	stream HeadSubscriber
	node   NodeClient
	p      Params
	gate   firedGate
}

// NewCoordinator validates the run parameters. Zero wallets and a missing
// chain ID are startup errors: nothing is watched on a broken config.
func NewCoordinator(stream HeadSubscriber, node NodeClient, p Params) (*Coordinator, error) {
	if stream == nil || node == nil {
		return nil, errors.New("nil client")
	}
	if len(p.Wallets) == 0 {
		return nil, errors.New("no wallets configured")
	}
	if p.ChainID == nil || p.ChainID.Sign() <= 0 {
		return nil, errors.New("chain ID is not set")
	}
	if p.EthUsd == nil {
		return nil, errors.New("no ETH/USD supplier")
	}
	if p.MaxBumps < 0 {
		return nil, fmt.Errorf("negative max bumps %d", p.MaxBumps)
	}
	return &Coordinator{stream: stream, node: node, p: p}, nil
}

// VerifyChain compares the node's chain ID with the configured one.
// A mismatch means the endpoints point at the wrong network; abort.
func (c *Coordinator) VerifyChain(ctx context.Context) error {
	got, err := c.node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("chain id: %w", err)
	}
	if got.Cmp(c.p.ChainID) != 0 {
		return fmt.Errorf("chain id mismatch: node reports %s, config wants %s", got, c.p.ChainID)
	}
	return nil
}

// Watch subscribes to new heads, probes liveness on every block and, on the
// first positive probe, runs the firing episode. It returns the aggregated
// per-wallet results. The subscription is released on every exit path.
func (c *Coordinator) Watch(ctx context.Context) ([]SubmissionResult, error) {
	if err := c.VerifyChain(ctx); err != nil {
		return nil, err
	}

	heads := make(chan *types.Header, 16)
	sub, err := c.stream.SubscribeNewHead(ctx, heads)
	if err != nil {
		return nil, fmt.Errorf("subscribe new heads: %w", err)
	}
	defer sub.Unsubscribe()

	c.p.logf("watching %s for mint liveness (%d wallets armed)", c.p.Template.To.Hex(), len(c.p.Wallets))

	triggered := make(chan uint64, 1)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case err := <-sub.Err():
			return nil, fmt.Errorf("head subscription: %w", err)
		case h := <-heads:
			metrics.BlocksSeen.Inc()
			if h.Number != nil {
				metrics.HeadNumber.Set(float64(h.Number.Uint64()))
			}
			// Probe off the receive loop so a slow call never backs up the
			// stream; the gate keeps overlapping probes from double-firing.
			go c.probeHead(ctx, h, triggered)
		case n := <-triggered:
			c.p.logf("mint is LIVE at block %d, firing %d wallets", n, len(c.p.Wallets))
			return c.fire(ctx), nil
		}
	}
}

func (c *Coordinator) probeHead(ctx context.Context, h *types.Header, triggered chan<- uint64) {
	if c.gate.Fired() {
		return
	}
	num := uint64(0)
	if h.Number != nil {
		num = h.Number.Uint64()
	}
	live := ProbeLive(ctx, c.node, c.p.Wallets[0].Addr, c.p.Template)
	if c.p.OnBlock != nil {
		c.p.OnBlock(num, live)
	}
	if !live {
		return
	}
	if c.gate.TryFire() {
		triggered <- num
	}
}

// fire snapshots the ETH/USD price once, launches every wallet submitter in
// parallel and joins on all of them. No early return on first success: the
// caller gets one result per wallet.
func (c *Coordinator) fire(ctx context.Context) []SubmissionResult {
	ethUsd := c.p.EthUsd()
	c.p.logf("price snapshot: %.2f USD/ETH, gas cap %.2f USD -> %.4f gwei base fee cap",
		ethUsd, c.p.GasUsdCap, CapFeeGwei(c.p.GasUsdCap, c.p.GasLimit, ethUsd))

	ch := make(chan SubmissionResult, len(c.p.Wallets))
	for _, w := range c.p.Wallets {
		go func(w WalletHandle) {
			ch <- SubmitWallet(ctx, c.node, w, &c.p, ethUsd)
		}(w)
	}

	results := make([]SubmissionResult, 0, len(c.p.Wallets))
	for range c.p.Wallets {
		res := <-ch
		if c.p.OnResult != nil {
			c.p.OnResult(res)
		}
		results = append(results, res)
	}
	return results
}
