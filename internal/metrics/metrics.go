package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BlocksSeen tracks new-head notifications received during the watch phase
	BlocksSeen = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sniper_blocks_seen_total",
			Help: "Total number of new-head notifications received",
		},
	)

	// ProbesTotal tracks liveness probes by outcome
	ProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sniper_probes_total",
			Help: "Total number of liveness probes",
		},
		[]string{"outcome"},
	)

	// BumpAttempts tracks fee-bump submission attempts across all wallets
	BumpAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sniper_bump_attempts_total",
			Help: "Total number of transaction submission attempts",
		},
	)

	// SubmissionResults tracks terminal per-wallet outcomes by status
	SubmissionResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sniper_submission_results_total",
			Help: "Total number of terminal per-wallet submission results",
		},
		[]string{"status"},
	)

	// HeadNumber tracks the latest block number observed on the stream
	HeadNumber = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sniper_head_number",
			Help: "Latest block number observed",
		},
	)
)

// Serve exposes /metrics on addr in a background goroutine.
// Errors are reported through errf since the process keeps running without metrics.
func Serve(addr string, errf func(error)) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if errf != nil {
				errf(err)
			}
		}
	}()
	return srv
}
