package snipecore

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Template is the immutable mint transaction skeleton shared by all wallets.
type Template struct {
	To       common.Address
	Data     []byte
	ValueWei *big.Int
}

// Value returns the template value, never nil.
func (t Template) Value() *big.Int {
	if t.ValueWei == nil {
		return big.NewInt(0)
	}
	return t.ValueWei
}

// Status is the terminal per-wallet outcome.
type Status string

const (
	StatusSuccess         Status = "SUCCESS"
	StatusFailed          Status = "FAILED"
	StatusSkipBalance     Status = "SKIP_BALANCE"
	StatusPendingOrFailed Status = "PENDING_OR_FAILED"
)

// SubmissionResult is produced once per wallet per run.
type SubmissionResult struct {
	Wallet common.Address `json:"wallet"`
	Status Status         `json:"status"`
	TxHash string         `json:"txHash,omitempty"`
	Reason string         `json:"reason,omitempty"`
}

// BumpAttempt is the ephemeral fee computation for one escalation attempt.
type BumpAttempt struct {
	Index                int
	Nonce                uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

type Params struct {
	ChainID  *big.Int
	Template Template
	Wallets  []WalletHandle

	// Strategy & tuning
	GasLimit          uint64
	GasUsdCap         float64
	PriorityFloorGwei float64
	BumpMult          float64
	MaxBumps          int
	MintValueEth      float64

	ConfirmWait time.Duration
	SendBackoff time.Duration

	// EthUsd supplies the ETH/USD estimate; snapshotted once at fire time.
	EthUsd func() float64

	Logf     func(string, ...any)
	OnBlock  func(number uint64, live bool)
	OnResult func(SubmissionResult)
}

func (p *Params) logf(format string, a ...any) {
	if p.Logf != nil {
		p.Logf(format, a...)
	}
}

func (p *Params) confirmWait() time.Duration {
	if p.ConfirmWait <= 0 {
		return 3 * time.Second
	}
	return p.ConfirmWait
}

func (p *Params) sendBackoff() time.Duration {
	if p.SendBackoff <= 0 {
		return 150 * time.Millisecond
	}
	return p.SendBackoff
}
