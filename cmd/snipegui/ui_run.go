package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/avdeev99/mint-sniper/internal/price"
	"github.com/avdeev99/mint-sniper/internal/snipecore"
)

// runInputs carries the form values at the moment Start was pressed.
type runInputs struct {
	WSURL, HTTPURL, ChainID   string
	Contract, Sig, Args       string
	ValueEth                  string
	PrivateKeys               string
	GasUsdCap, PriorityFloor  string
	BumpMult, MaxBumps, Limit string
	EthUsdFallback            string
}

// startRun validates the form, then watches and fires on a background
// goroutine, streaming progress into the log pane.
func startRun(in runInputs) {
	defer func() {
		if r := recover(); r != nil {
			appendLogLine(fmt.Sprintf("[panic] %v", r))
		}
	}()

	var wallets []snipecore.WalletHandle
	for i, pk := range splitCSV(in.PrivateKeys) {
		w, err := snipecore.NewWalletFromHex(fmt.Sprintf("gui-%d", i), pk)
		if err != nil {
			appendLogLine(fmt.Sprintf("bad private key #%d: %v", i+1, err))
			return
		}
		wallets = append(wallets, w)
	}
	if len(wallets) == 0 {
		appendLogLine("no private keys entered")
		return
	}

	tmpl, err := snipecore.NewTemplate(in.Contract, in.Sig, splitCSV(in.Args), atof(in.ValueEth, 0))
	if err != nil {
		appendLogLine("template: " + err.Error())
		return
	}

	httpc, err := ethclient.Dial(in.HTTPURL)
	if err != nil {
		appendLogLine("dial http: " + err.Error())
		return
	}
	wsc, err := ethclient.Dial(in.WSURL)
	if err != nil {
		httpc.Close()
		appendLogLine("dial ws: " + err.Error())
		return
	}

	runCtx, runCancel = context.WithCancel(context.Background())
	ctx := runCtx

	chainID := mustBig(in.ChainID)
	if chainID.Sign() <= 0 {
		if id, err := httpc.ChainID(ctx); err == nil {
			chainID = id
		}
	}

	fallback := atof(in.EthUsdFallback, 2500)
	supplier := price.Static(fallback)

	coord, err := snipecore.NewCoordinator(wsc, httpc, snipecore.Params{
		ChainID:           chainID,
		Template:          tmpl,
		Wallets:           wallets,
		GasLimit:          uint64(atoi64(in.Limit, 200000)),
		GasUsdCap:         atof(in.GasUsdCap, 50),
		PriorityFloorGwei: atof(in.PriorityFloor, 1),
		BumpMult:          atof(in.BumpMult, 1.15),
		MaxBumps:          atoi(in.MaxBumps, 5),
		MintValueEth:      atof(in.ValueEth, 0),
		EthUsd:            func() float64 { return supplier.EthUsd(ctx) },
		Logf: func(f string, a ...any) {
			appendLogLine(fmt.Sprintf(f, a...))
		},
		OnBlock: func(number uint64, live bool) {
			setStatus(fmt.Sprintf("watching… block %d live=%v", number, live))
		},
		OnResult: func(r snipecore.SubmissionResult) {
			results = append(results, r)
			if resultsTable != nil {
				resultsTable.Refresh()
			}
		},
	})
	if err != nil {
		appendLogLine("config: " + err.Error())
		httpc.Close()
		wsc.Close()
		return
	}

	go func() {
		defer httpc.Close()
		defer wsc.Close()
		defer func() {
			startBtn.Enable()
			stopBtn.Disable()
		}()
		setStatus("watching…")
		out, err := coord.Watch(ctx)
		if err != nil {
			appendLogLine("watch: " + err.Error())
			setStatus("stopped: " + err.Error())
			return
		}
		ok := 0
		for _, r := range out {
			if r.Status == snipecore.StatusSuccess {
				ok++
			}
		}
		setStatus(fmt.Sprintf("done: %d/%d wallets confirmed", ok, len(out)))
		appendLogLine(fmt.Sprintf("run complete: %d/%d confirmed", ok, len(out)))
	}()
}

func stopRun() {
	if runCancel != nil {
		runCancel()
		appendLogLine("STOP pressed, cancelling")
	}
}

// small parse helpers shared with the form
func splitCSV(s string) []string {
	arr := strings.Split(s, ",")
	out := make([]string, 0, len(arr))
	for _, x := range arr {
		x = strings.TrimSpace(x)
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}

func mustBig(s string) *big.Int {
	s = strings.TrimSpace(s)
	if s == "" {
		return big.NewInt(0)
	}
	v := new(big.Int)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if _, ok := v.SetString(s[2:], 16); ok {
			return v
		}
		return big.NewInt(0)
	}
	if _, ok := v.SetString(s, 10); ok {
		return v
	}
	return big.NewInt(0)
}

func atoi(s string, d int) int {
	var n int
	if _, err := fmt.Sscan(strings.TrimSpace(s), &n); err != nil {
		return d
	}
	return n
}

func atoi64(s string, d int64) int64 {
	var n int64
	if _, err := fmt.Sscan(strings.TrimSpace(s), &n); err != nil {
		return d
	}
	return n
}

func atof(s string, d float64) float64 {
	var n float64
	if _, err := fmt.Sscan(strings.TrimSpace(s), &n); err != nil {
		return d
	}
	return n
}
