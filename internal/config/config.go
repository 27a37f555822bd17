package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings keeps all configuration options for one sniping run.
// Values come from the environment; cmd binaries load .env/.env.local first.
type Settings struct {
	WSURL   string // streaming endpoint (new heads)
	HTTPURL string // request/response endpoint
	ChainID string // decimal or 0x-hex; empty = trust the node

	ContractAddress string
	MintSig         string // e.g. "mint(uint256)"
	MintArgs        []string
	MintValueEth    float64

	PrivateKeys      []string // raw hex keys
	WalletNames      []string // names resolved through the wallet store
	WalletDir        string
	WalletPassphrase string

	GasLimit          uint64
	GasUsdCap         float64
	PriorityFloorGwei float64
	BumpMult          float64
	MaxBumps          int

	EthUsdFallback float64
	PriceURL       string

	GasOracleURL      string
	GasOracleInterval time.Duration

	MetricsAddr string

	ConfirmWait time.Duration
	SendBackoff time.Duration
}

// Load reads settings from environment supporting both UPPER_CASE and lower_case keys.
func Load() Settings {
	get := func(keys []string, def string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				return v
			}
		}
		return def
	}
	getInt := func(keys []string, def int) int {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
		return def
	}
	getUint64 := func(keys []string, def uint64) uint64 {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
		return def
	}
	getFloat := func(keys []string, def float64) float64 {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n
		}
		return def
	}
	getMillis := func(keys []string, def time.Duration) time.Duration {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil && n > 0 {
			return time.Duration(n) * time.Millisecond
		}
		return def
	}
	splitCSV := func(s string) []string {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	st := Settings{}
	st.WSURL = get([]string{"ws_url", "WS_URL"}, "")
	st.HTTPURL = get([]string{"http_url", "HTTP_URL", "rpc_url", "RPC_URL"}, "")
	st.ChainID = get([]string{"chain_id", "CHAIN_ID"}, "")

	st.ContractAddress = get([]string{"contract_address", "CONTRACT_ADDRESS"}, "")
	st.MintSig = get([]string{"mint_sig", "MINT_SIG"}, "mint()")
	st.MintArgs = splitCSV(get([]string{"mint_args", "MINT_ARGS"}, ""))
	st.MintValueEth = getFloat([]string{"mint_value_eth", "MINT_VALUE_ETH"}, 0)

	st.PrivateKeys = splitCSV(get([]string{"private_keys", "PRIVATE_KEYS"}, ""))
	st.WalletNames = splitCSV(get([]string{"wallet_names", "WALLET_NAMES"}, ""))
	st.WalletDir = get([]string{"wallet_dir", "WALLET_DIR"}, "wallets")
	st.WalletPassphrase = get([]string{"wallet_passphrase", "WALLET_PASSPHRASE"}, "")

	st.GasLimit = getUint64([]string{"gas_limit", "GAS_LIMIT"}, 200000)
	st.GasUsdCap = getFloat([]string{"gas_usd_cap", "GAS_USD_CAP"}, 50)
	st.PriorityFloorGwei = getFloat([]string{"priority_floor_gwei", "PRIORITY_FLOOR_GWEI"}, 1)
	st.BumpMult = getFloat([]string{"bump_mult", "BUMP_MULT"}, 1.15)
	st.MaxBumps = getInt([]string{"max_bumps", "MAX_BUMPS"}, 5)

	st.EthUsdFallback = getFloat([]string{"eth_usd_fallback", "ETH_USD_FALLBACK"}, 2500)
	st.PriceURL = get([]string{"price_url", "PRICE_URL"}, "")

	st.GasOracleURL = get([]string{"gas_oracle_url", "GAS_ORACLE_URL"}, "")
	st.GasOracleInterval = getMillis([]string{"gas_oracle_interval_ms", "GAS_ORACLE_INTERVAL_MS"}, 30*time.Second)

	st.MetricsAddr = get([]string{"metrics_addr", "METRICS_ADDR"}, "")

	st.ConfirmWait = getMillis([]string{"confirm_wait_ms", "CONFIRM_WAIT_MS"}, 3*time.Second)
	st.SendBackoff = getMillis([]string{"send_backoff_ms", "SEND_BACKOFF_MS"}, 150*time.Millisecond)

	return st
}
