package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/joho/godotenv"
)

func defaultStr(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	a := app.New()
	curTheme := makeTheme("dark")
	a.Settings().SetTheme(curTheme)

	w := a.NewWindow("Mint Sniper")
	w.Resize(fyne.NewSize(1080, 720))

	wsEntry := widget.NewEntry()
	wsEntry.SetText(os.Getenv("WS_URL"))
	httpEntry := widget.NewEntry()
	httpEntry.SetText(os.Getenv("HTTP_URL"))
	chainEntry := widget.NewEntry()
	chainEntry.SetText(defaultStr(os.Getenv("CHAIN_ID"), "1"))
	contractEntry := widget.NewEntry()
	contractEntry.SetText(os.Getenv("CONTRACT_ADDRESS"))
	sigEntry := widget.NewEntry()
	sigEntry.SetText(defaultStr(os.Getenv("MINT_SIG"), "mint()"))
	argsEntry := widget.NewEntry()
	argsEntry.SetText(os.Getenv("MINT_ARGS"))
	valueEntry := widget.NewEntry()
	valueEntry.SetText(defaultStr(os.Getenv("MINT_VALUE_ETH"), "0"))
	keysEntry := widget.NewPasswordEntry()
	keysEntry.SetText(os.Getenv("PRIVATE_KEYS"))

	gasCapEntry := widget.NewEntry()
	gasCapEntry.SetText(defaultStr(os.Getenv("GAS_USD_CAP"), "50"))
	prioEntry := widget.NewEntry()
	prioEntry.SetText(defaultStr(os.Getenv("PRIORITY_FLOOR_GWEI"), "1"))
	bumpEntry := widget.NewEntry()
	bumpEntry.SetText(defaultStr(os.Getenv("BUMP_MULT"), "1.15"))
	maxBumpsEntry := widget.NewEntry()
	maxBumpsEntry.SetText(defaultStr(os.Getenv("MAX_BUMPS"), "5"))
	limitEntry := widget.NewEntry()
	limitEntry.SetText(defaultStr(os.Getenv("GAS_LIMIT"), "200000"))
	ethUsdEntry := widget.NewEntry()
	ethUsdEntry.SetText(defaultStr(os.Getenv("ETH_USD_FALLBACK"), "2500"))

	themeSelect := widget.NewSelect([]string{"Dark", "Light"}, func(s string) {
		mode := "dark"
		if s == "Light" {
			mode = "light"
		}
		a.Settings().SetTheme(makeTheme(mode))
	})
	themeSelect.SetSelected("Dark")

	targetCard := widget.NewCard("Target", "", widget.NewForm(
		widget.NewFormItem("WS URL", wsEntry),
		widget.NewFormItem("HTTP URL", httpEntry),
		widget.NewFormItem("Chain ID", chainEntry),
		widget.NewFormItem("Contract", contractEntry),
		widget.NewFormItem("Mint sig", sigEntry),
		widget.NewFormItem("Mint args", argsEntry),
		widget.NewFormItem("Value (ETH)", valueEntry),
		widget.NewFormItem("Private keys", keysEntry),
	))

	strategyCard := widget.NewCard("Strategy", "", widget.NewForm(
		widget.NewFormItem("Gas cap (USD)", gasCapEntry),
		widget.NewFormItem("Priority floor (gwei)", prioEntry),
		widget.NewFormItem("Bump ×", bumpEntry),
		widget.NewFormItem("Max bumps", maxBumpsEntry),
		widget.NewFormItem("Gas limit", limitEntry),
		widget.NewFormItem("ETH/USD", ethUsdEntry),
		widget.NewFormItem("", themeSelect),
	))

	// Results table: wallet / status / tx / reason
	resultsTable = widget.NewTable(
		func() (int, int) { return len(results) + 1, 4 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id.Row == 0 {
				lbl.SetText([]string{"Wallet", "Status", "Tx", "Reason"}[id.Col])
				return
			}
			r := results[id.Row-1]
			switch id.Col {
			case 0:
				lbl.SetText(short(r.Wallet.Hex()))
			case 1:
				lbl.SetText(string(r.Status))
			case 2:
				lbl.SetText(short(r.TxHash))
			case 3:
				lbl.SetText(r.Reason)
			}
		},
	)
	resultsTable.SetColumnWidth(0, 180)
	resultsTable.SetColumnWidth(1, 150)
	resultsTable.SetColumnWidth(2, 180)
	resultsTable.SetColumnWidth(3, 320)

	logBox = widget.NewMultiLineEntry()
	logBox.Wrapping = fyne.TextWrapWord
	statusLbl = widget.NewLabel("idle")

	startBtn = widget.NewButton("Start Watch", func() {
		results = results[:0]
		resultsTable.Refresh()
		startBtn.Disable()
		stopBtn.Enable()
		go startRun(runInputs{
			WSURL: wsEntry.Text, HTTPURL: httpEntry.Text, ChainID: chainEntry.Text,
			Contract: contractEntry.Text, Sig: sigEntry.Text, Args: argsEntry.Text,
			ValueEth: valueEntry.Text, PrivateKeys: keysEntry.Text,
			GasUsdCap: gasCapEntry.Text, PriorityFloor: prioEntry.Text,
			BumpMult: bumpEntry.Text, MaxBumps: maxBumpsEntry.Text, Limit: limitEntry.Text,
			EthUsdFallback: ethUsdEntry.Text,
		})
	})
	stopBtn = widget.NewButton("Stop", stopRun)
	stopBtn.Disable()

	left := container.NewVBox(targetCard, strategyCard, container.NewGridWithColumns(2, startBtn, stopBtn), statusLbl)
	right := container.NewVSplit(resultsTable, container.NewScroll(logBox))
	right.SetOffset(0.45)

	w.SetContent(container.NewHSplit(left, right))
	w.ShowAndRun()
}

func short(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:10] + "…" + s[len(s)-5:]
}
