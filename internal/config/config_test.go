package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so ambient environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ws_url", "WS_URL", "http_url", "HTTP_URL", "rpc_url", "RPC_URL",
		"chain_id", "CHAIN_ID", "contract_address", "CONTRACT_ADDRESS",
		"mint_sig", "MINT_SIG", "mint_args", "MINT_ARGS",
		"mint_value_eth", "MINT_VALUE_ETH", "private_keys", "PRIVATE_KEYS",
		"wallet_names", "WALLET_NAMES", "wallet_dir", "WALLET_DIR",
		"wallet_passphrase", "WALLET_PASSPHRASE", "gas_limit", "GAS_LIMIT",
		"gas_usd_cap", "GAS_USD_CAP", "priority_floor_gwei", "PRIORITY_FLOOR_GWEI",
		"bump_mult", "BUMP_MULT", "max_bumps", "MAX_BUMPS",
		"eth_usd_fallback", "ETH_USD_FALLBACK", "price_url", "PRICE_URL",
		"gas_oracle_url", "GAS_ORACLE_URL", "gas_oracle_interval_ms", "GAS_ORACLE_INTERVAL_MS",
		"metrics_addr", "METRICS_ADDR", "confirm_wait_ms", "CONFIRM_WAIT_MS",
		"send_backoff_ms", "SEND_BACKOFF_MS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	st := Load()

	require.Equal(t, "mint()", st.MintSig)
	require.Equal(t, uint64(200000), st.GasLimit)
	require.Equal(t, 50.0, st.GasUsdCap)
	require.Equal(t, 1.0, st.PriorityFloorGwei)
	require.Equal(t, 1.15, st.BumpMult)
	require.Equal(t, 5, st.MaxBumps)
	require.Equal(t, 2500.0, st.EthUsdFallback)
	require.Equal(t, "wallets", st.WalletDir)
	require.Equal(t, 3*time.Second, st.ConfirmWait)
	require.Equal(t, 150*time.Millisecond, st.SendBackoff)
	require.Equal(t, 30*time.Second, st.GasOracleInterval)
	require.Empty(t, st.PrivateKeys)
	require.Empty(t, st.MintArgs)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WS_URL", "wss://node.example/ws")
	t.Setenv("HTTP_URL", "https://node.example")
	t.Setenv("CHAIN_ID", "8453")
	t.Setenv("CONTRACT_ADDRESS", "0x00000000000000000000000000000000000000aa")
	t.Setenv("MINT_SIG", "mint(uint256)")
	t.Setenv("MINT_ARGS", " 2 , 0xabc ")
	t.Setenv("MINT_VALUE_ETH", "0.08")
	t.Setenv("PRIVATE_KEYS", "aa,bb,")
	t.Setenv("GAS_USD_CAP", "75.5")
	t.Setenv("MAX_BUMPS", "3")
	t.Setenv("CONFIRM_WAIT_MS", "1200")

	st := Load()
	require.Equal(t, "wss://node.example/ws", st.WSURL)
	require.Equal(t, "https://node.example", st.HTTPURL)
	require.Equal(t, "8453", st.ChainID)
	require.Equal(t, "mint(uint256)", st.MintSig)
	require.Equal(t, []string{"2", "0xabc"}, st.MintArgs)
	require.Equal(t, 0.08, st.MintValueEth)
	require.Equal(t, []string{"aa", "bb"}, st.PrivateKeys)
	require.Equal(t, 75.5, st.GasUsdCap)
	require.Equal(t, 3, st.MaxBumps)
	require.Equal(t, 1200*time.Millisecond, st.ConfirmWait)
}

func TestLoadLowerCaseKeysAndRPCAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("rpc_url", "https://alias.example")
	t.Setenv("gas_limit", "321000")

	st := Load()
	require.Equal(t, "https://alias.example", st.HTTPURL)
	require.Equal(t, uint64(321000), st.GasLimit)
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_BUMPS", "lots")
	t.Setenv("GAS_USD_CAP", "NaN-ish")
	t.Setenv("CONFIRM_WAIT_MS", "-5")

	st := Load()
	require.Equal(t, 5, st.MaxBumps)
	require.Equal(t, 50.0, st.GasUsdCap)
	require.Equal(t, 3*time.Second, st.ConfirmWait)
}
