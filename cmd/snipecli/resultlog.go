package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/avdeev99/mint-sniper/internal/snipecore"
)

type resultEntry struct {
	Wallet    string `json:"wallet"`
	Status    string `json:"status"`
	TxHash    string `json:"txHash,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

// appendResultLog appends the run's outcomes to logs/results_<date>.json so
// PENDING_OR_FAILED hashes can be checked on later.
func appendResultLog(results []snipecore.SubmissionResult) (string, error) {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return "", err
	}
	path := filepath.Join("logs", "results_"+time.Now().Format("20060102")+".json")

	var entries []resultEntry
	if b, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(b, &entries) // a corrupt log starts over
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range results {
		entries = append(entries, resultEntry{
			Wallet:    r.Wallet.Hex(),
			Status:    string(r.Status),
			TxHash:    r.TxHash,
			Reason:    r.Reason,
			Timestamp: now,
		})
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
