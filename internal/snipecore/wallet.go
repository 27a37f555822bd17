package snipecore

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// WalletHandle owns one signing key and its address. Handles are independent:
// no state is shared between wallets.
type WalletHandle struct {
	Name string
	Addr common.Address

	prv *ecdsa.PrivateKey
}

// NewWalletFromHex parses a hex private key (with or without 0x).
func NewWalletFromHex(name, pkHex string) (WalletHandle, error) {
	h := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(pkHex), "0x"))
	if h == "" {
		return WalletHandle{}, errors.New("empty private key")
	}
	prv, err := gethcrypto.HexToECDSA(h)
	if err != nil {
		return WalletHandle{}, err
	}
	return WalletHandle{
		Name: name,
		Addr: gethcrypto.PubkeyToAddress(prv.PublicKey),
		prv:  prv,
	}, nil
}

// NewWalletFromKey wraps an already-decrypted key (wallet store path).
func NewWalletFromKey(name string, prv *ecdsa.PrivateKey) (WalletHandle, error) {
	if prv == nil {
		return WalletHandle{}, errors.New("nil private key")
	}
	return WalletHandle{
		Name: name,
		Addr: gethcrypto.PubkeyToAddress(prv.PublicKey),
		prv:  prv,
	}, nil
}

// Sign signs tx with the latest signer for the given chain ID.
func (w WalletHandle) Sign(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), w.prv)
}
