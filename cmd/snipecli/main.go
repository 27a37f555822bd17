package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/avdeev99/mint-sniper/internal/config"
	"github.com/avdeev99/mint-sniper/internal/gasoracle"
	"github.com/avdeev99/mint-sniper/internal/metrics"
	"github.com/avdeev99/mint-sniper/internal/price"
	"github.com/avdeev99/mint-sniper/internal/snipecore"
	"github.com/avdeev99/mint-sniper/internal/walletstore"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	isDebug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *isDebug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})))

	cfg := config.Load()
	if err := run(cfg); err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPURL == "" {
		return fmt.Errorf("HTTP_URL is empty")
	}
	if cfg.WSURL == "" {
		return fmt.Errorf("WS_URL is empty (new-head streaming endpoint required)")
	}
	if cfg.ContractAddress == "" {
		return fmt.Errorf("CONTRACT_ADDRESS is empty")
	}

	wallets, store, err := loadWallets(cfg)
	if err != nil {
		return err
	}

	httpc, err := ethclient.Dial(cfg.HTTPURL)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.HTTPURL, err)
	}
	defer httpc.Close()
	wsc, err := ethclient.Dial(cfg.WSURL)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.WSURL, err)
	}
	defer wsc.Close()

	chainID, err := resolveChainID(ctx, cfg.ChainID, httpc)
	if err != nil {
		return err
	}

	tmpl, err := snipecore.NewTemplate(cfg.ContractAddress, cfg.MintSig, cfg.MintArgs, cfg.MintValueEth)
	if err != nil {
		return fmt.Errorf("mint template: %w", err)
	}

	var supplier price.Supplier = price.Static(cfg.EthUsdFallback)
	if cfg.PriceURL != "" {
		supplier = price.NewHTTP(cfg.PriceURL, cfg.EthUsdFallback)
	}

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr, func(err error) {
			slog.Warn("metrics server stopped", "error", err)
		})
		slog.Info("metrics listening", "addr", cfg.MetricsAddr)
	}
	if cfg.GasOracleURL != "" {
		go gasoracle.New(cfg.GasOracleURL).Monitor(ctx, cfg.GasOracleInterval, func(f string, a ...any) {
			slog.Info(fmt.Sprintf(f, a...))
		})
	}

	slog.Info("sniper armed",
		"chain", chainID.String(),
		"contract", tmpl.To.Hex(),
		"sig", cfg.MintSig,
		"wallets", len(wallets),
		"gasUsdCap", cfg.GasUsdCap,
		"maxBumps", cfg.MaxBumps,
	)

	coord, err := snipecore.NewCoordinator(wsc, httpc, snipecore.Params{
		ChainID:           chainID,
		Template:          tmpl,
		Wallets:           wallets,
		GasLimit:          cfg.GasLimit,
		GasUsdCap:         cfg.GasUsdCap,
		PriorityFloorGwei: cfg.PriorityFloorGwei,
		BumpMult:          cfg.BumpMult,
		MaxBumps:          cfg.MaxBumps,
		MintValueEth:      cfg.MintValueEth,
		ConfirmWait:       cfg.ConfirmWait,
		SendBackoff:       cfg.SendBackoff,
		EthUsd:            func() float64 { return supplier.EthUsd(ctx) },
		Logf: func(f string, a ...any) {
			slog.Info(fmt.Sprintf(f, a...))
		},
		OnBlock: func(number uint64, live bool) {
			slog.Debug("block probed", "number", number, "live", live)
		},
	})
	if err != nil {
		return err
	}

	results, err := coord.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	report(results, wallets, store)
	return nil
}

func loadWallets(cfg config.Settings) ([]snipecore.WalletHandle, *walletstore.Store, error) {
	var wallets []snipecore.WalletHandle
	for i, pk := range cfg.PrivateKeys {
		w, err := snipecore.NewWalletFromHex(fmt.Sprintf("env-%d", i), pk)
		if err != nil {
			return nil, nil, fmt.Errorf("PRIVATE_KEYS[%d]: %w", i, err)
		}
		wallets = append(wallets, w)
	}

	var store *walletstore.Store
	if len(cfg.WalletNames) > 0 {
		var err error
		store, err = walletstore.Open(cfg.WalletDir)
		if err != nil {
			return nil, nil, err
		}
		for _, name := range cfg.WalletNames {
			prv, err := store.PrivateKey(name, cfg.WalletPassphrase)
			if err != nil {
				return nil, nil, err
			}
			w, err := snipecore.NewWalletFromKey(name, prv)
			if err != nil {
				return nil, nil, err
			}
			wallets = append(wallets, w)
		}
	}

	if len(wallets) == 0 {
		return nil, nil, fmt.Errorf("no wallets configured (set PRIVATE_KEYS or WALLET_NAMES)")
	}
	return wallets, store, nil
}

func resolveChainID(ctx context.Context, s string, ec *ethclient.Client) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		id, err := ec.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("chain id: %w", err)
		}
		return id, nil
	}
	z := new(big.Int)
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, ok = z.SetString(s[2:], 16)
	} else {
		_, ok = z.SetString(s, 10)
	}
	if !ok || z.Sign() <= 0 {
		return nil, fmt.Errorf("bad CHAIN_ID %q", s)
	}
	return z, nil
}

func report(results []snipecore.SubmissionResult, wallets []snipecore.WalletHandle, store *walletstore.Store) {
	nameOf := make(map[string]string, len(wallets))
	for _, w := range wallets {
		nameOf[w.Addr.Hex()] = w.Name
	}

	for _, r := range results {
		attrs := []any{"wallet", r.Wallet.Hex(), "status", string(r.Status)}
		if r.TxHash != "" {
			attrs = append(attrs, "tx", r.TxHash)
		}
		if r.Reason != "" {
			attrs = append(attrs, "reason", r.Reason)
		}
		switch r.Status {
		case snipecore.StatusSuccess:
			slog.Info("mint confirmed", attrs...)
		case snipecore.StatusSkipBalance:
			slog.Warn("wallet skipped", attrs...)
		default:
			slog.Warn("mint not confirmed", attrs...)
		}

		if store != nil {
			name := nameOf[r.Wallet.Hex()]
			if name != "" && !strings.HasPrefix(name, "env-") {
				if err := store.RecordOutcome(name, r.Status == snipecore.StatusSuccess); err != nil {
					slog.Warn("wallet stats update failed", "wallet", name, "error", err)
				}
			}
		}
	}

	if path, err := appendResultLog(results); err != nil {
		slog.Warn("result log write failed", "error", err)
	} else {
		slog.Info("results written", "path", path)
	}
}
