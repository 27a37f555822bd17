package snipecore

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// Build EIP-1559 transaction for one bump attempt.
func buildDynamicTx(chain *big.Int, t Template, a BumpAttempt, gasLimit uint64) *types.Transaction {
	to := t.To
	df := &types.DynamicFeeTx{
		ChainID:   chain,
		Nonce:     a.Nonce,
		Gas:       gasLimit,
		GasTipCap: new(big.Int).Set(a.MaxPriorityFeePerGas),
		GasFeeCap: new(big.Int).Set(a.MaxFeePerGas),
		To:        &to,
		Value:     new(big.Int).Set(t.Value()),
		Data:      t.Data,
	}
	return types.NewTx(df)
}
