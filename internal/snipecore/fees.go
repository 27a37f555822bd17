package snipecore

import (
	"math"
	"math/big"
)

// minFeeGwei keeps a degenerate USD cap from producing a zero fee.
const minFeeGwei = 1e-9

// CapFeeGwei converts a USD gas budget into a max fee per gas in gwei:
// feeGwei * 1e-9 * gasLimit * ethUsd == gasUsdCap.
func CapFeeGwei(gasUsdCap float64, gasLimit uint64, ethUsd float64) float64 {
	fee := gasUsdCap / (float64(gasLimit) * ethUsd) * 1e9
	if fee < minFeeGwei {
		return minFeeGwei
	}
	return fee
}

// FeesForAttempt computes the fee pair for bump attempt b (0-indexed).
// The escalated raw fee is clamped back to the USD-cap ceiling, so no attempt
// ever spends past the cap; when the base fee is not trivially small this
// flattens attempts b >= 1 onto the cap. The priority fee escalates from its
// floor but never exceeds the max fee.
func FeesForAttempt(b int, gasUsdCap float64, gasLimit uint64, ethUsd, priorityFloorGwei, bumpMult float64, nonce uint64) BumpAttempt {
	base := CapFeeGwei(gasUsdCap, gasLimit, ethUsd)
	raw := base * math.Pow(bumpMult, float64(b))
	capped := math.Min(raw, base)
	prio := math.Min(priorityFloorGwei*math.Pow(bumpMult, float64(b)), capped)
	return BumpAttempt{
		Index:                b,
		Nonce:                nonce,
		MaxFeePerGas:         gweiFloatToWei(capped),
		MaxPriorityFeePerGas: gweiFloatToWei(prio),
	}
}

// gweiFloatToWei converts fractional gwei to wei, never returning less than 1.
func gweiFloatToWei(g float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(g), big.NewFloat(1e9)).Int(nil)
	if wei == nil || wei.Sign() <= 0 {
		return big.NewInt(1)
	}
	return wei
}
