package main

import (
	"fmt"
	"time"
)

const maxLogChars = 200_000

func appendLogLine(s string) {
	if logBox == nil {
		return
	}
	line := fmt.Sprintf("[%s] %s\n", time.Now().Format("15:04:05"), s)
	text := logBox.Text + line
	if len(text) > maxLogChars {
		text = text[len(text)-maxLogChars:]
	}
	logBox.SetText(text)
	logBox.CursorRow = len(text) // keep the tail visible
}

func setStatus(s string) {
	if statusLbl != nil {
		statusLbl.SetText(s)
	}
}
