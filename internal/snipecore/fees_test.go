package snipecore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapFeeGwei(t *testing.T) {
	// 50 USD at 180k gas and 2500 USD/ETH: 50/(180000*2500)*1e9 gwei.
	got := CapFeeGwei(50, 180000, 2500)
	require.InDelta(t, 0.111111, got, 1e-4)
}

func TestCapFeeGweiRoundTrip(t *testing.T) {
	cases := []struct {
		usd    float64
		limit  uint64
		ethUsd float64
	}{
		{50, 180000, 2500},
		{10, 21000, 1800},
		{250, 500000, 4200},
		{1, 100000, 3000},
	}
	for _, c := range cases {
		fee := CapFeeGwei(c.usd, c.limit, c.ethUsd)
		back := fee * 1e-9 * float64(c.limit) * c.ethUsd
		require.InEpsilonf(t, c.usd, back, 1e-9, "usd=%v limit=%d eth=%v", c.usd, c.limit, c.ethUsd)
	}
}

func TestCapFeeGweiFloor(t *testing.T) {
	// A vanishing budget must still produce a strictly positive fee.
	got := CapFeeGwei(1e-30, 30_000_000, 100_000)
	require.Equal(t, minFeeGwei, got)
	require.Positive(t, gweiFloatToWei(got).Sign())
}

func TestFeesForAttemptNeverExceedsBase(t *testing.T) {
	base := FeesForAttempt(0, 50, 180000, 2500, 1, 1.15, 7)
	for b := 1; b <= 10; b++ {
		a := FeesForAttempt(b, 50, 180000, 2500, 1, 1.15, 7)
		require.LessOrEqualf(t, a.MaxFeePerGas.Cmp(base.MaxFeePerGas), 0,
			"attempt %d fee %s exceeds base %s", b, a.MaxFeePerGas, base.MaxFeePerGas)
		require.Equal(t, uint64(7), a.Nonce)
		require.Equal(t, b, a.Index)
	}
}

func TestFeesForAttemptPriorityNeverExceedsMax(t *testing.T) {
	// A priority floor far above the cap must be clamped to the max fee.
	for b := 0; b <= 6; b++ {
		a := FeesForAttempt(b, 1, 30_000_000, 5000, 100, 2.0, 0)
		require.LessOrEqualf(t, a.MaxPriorityFeePerGas.Cmp(a.MaxFeePerGas), 0,
			"attempt %d tip %s exceeds max fee %s", b, a.MaxPriorityFeePerGas, a.MaxFeePerGas)
	}
}

func TestFeesForAttemptEscalatesPriority(t *testing.T) {
	// With a generous cap the priority fee escalates by the bump multiplier.
	a0 := FeesForAttempt(0, 1000, 21000, 2500, 1, 1.5, 0)
	a1 := FeesForAttempt(1, 1000, 21000, 2500, 1, 1.5, 0)
	require.Equal(t, 1, a1.MaxPriorityFeePerGas.Cmp(a0.MaxPriorityFeePerGas))
}
