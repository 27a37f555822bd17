package main

import (
	"context"

	"fyne.io/fyne/v2/widget"

	"github.com/avdeev99/mint-sniper/internal/snipecore"
)

// Shared UI state (globals, one window per process).
var (
	runCtx    context.Context
	runCancel context.CancelFunc

	logBox    *widget.Entry
	statusLbl *widget.Label

	results      []snipecore.SubmissionResult
	resultsTable *widget.Table

	startBtn *widget.Button
	stopBtn  *widget.Button
)
