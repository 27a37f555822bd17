package snipecore

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Selector returns the 4-byte function selector for a canonical signature.
func Selector(sig string) []byte {
	h := gethcrypto.Keccak256([]byte(sig))
	return h[:4]
}

// parseSig splits "mint(uint256,address)" into its argument types.
// The signature must already be canonical (no parameter names, no spaces).
func parseSig(sig string) ([]string, error) {
	sig = strings.TrimSpace(sig)
	open := strings.Index(sig, "(")
	if open <= 0 || !strings.HasSuffix(sig, ")") {
		return nil, fmt.Errorf("bad function signature %q", sig)
	}
	inner := sig[open+1 : len(sig)-1]
	if inner == "" {
		return nil, nil
	}
	types := strings.Split(inner, ",")
	for i, t := range types {
		types[i] = strings.TrimSpace(t)
	}
	return types, nil
}

// encodeWord ABI-encodes one static argument into a 32-byte word.
// Dynamic types (string, bytes, arrays) are not supported: mint entrypoints
// in the wild take value-type arguments, and anything fancier should ship a
// prebuilt hex calldata instead.
func encodeWord(typ, val string) ([]byte, error) {
	val = strings.TrimSpace(val)
	switch {
	case typ == "address":
		if !common.IsHexAddress(val) {
			return nil, fmt.Errorf("bad address argument %q", val)
		}
		return common.LeftPadBytes(common.HexToAddress(val).Bytes(), 32), nil
	case typ == "bool":
		switch strings.ToLower(val) {
		case "true", "1":
			return common.LeftPadBytes([]byte{1}, 32), nil
		case "false", "0":
			return make([]byte, 32), nil
		}
		return nil, fmt.Errorf("bad bool argument %q", val)
	case strings.HasPrefix(typ, "uint"):
		v := new(big.Int)
		var ok bool
		if strings.HasPrefix(val, "0x") || strings.HasPrefix(val, "0X") {
			_, ok = v.SetString(val[2:], 16)
		} else {
			_, ok = v.SetString(val, 10)
		}
		if !ok || v.Sign() < 0 {
			return nil, fmt.Errorf("bad %s argument %q", typ, val)
		}
		if len(v.Bytes()) > 32 {
			return nil, fmt.Errorf("%s argument %q overflows 32 bytes", typ, val)
		}
		return common.LeftPadBytes(v.Bytes(), 32), nil
	}
	return nil, fmt.Errorf("unsupported argument type %q", typ)
}

// BuildCalldata encodes selector + static arguments for the given signature.
func BuildCalldata(sig string, args []string) ([]byte, error) {
	types, err := parseSig(sig)
	if err != nil {
		return nil, err
	}
	if len(types) != len(args) {
		return nil, fmt.Errorf("signature %s wants %d args, got %d", sig, len(types), len(args))
	}
	data := Selector(sig)
	for i, t := range types {
		word, err := encodeWord(t, args[i])
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		data = append(data, word...)
	}
	return data, nil
}

// NewTemplate builds the shared mint transaction template.
func NewTemplate(contract string, sig string, args []string, valueEth float64) (Template, error) {
	if !common.IsHexAddress(contract) {
		return Template{}, fmt.Errorf("bad contract address %q", contract)
	}
	data, err := BuildCalldata(sig, args)
	if err != nil {
		return Template{}, err
	}
	if valueEth < 0 {
		return Template{}, fmt.Errorf("negative mint value %v", valueEth)
	}
	return Template{
		To:       common.HexToAddress(contract),
		Data:     data,
		ValueWei: EtherToWei(valueEth),
	}, nil
}

// EtherToWei converts a fractional ETH amount to wei.
func EtherToWei(eth float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(eth), big.NewFloat(1e18)).Int(nil)
	if wei == nil {
		return big.NewInt(0)
	}
	return wei
}
