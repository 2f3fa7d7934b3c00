// Package metrics holds the prometheus collectors for keystore, wallet and signer work.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kdfSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "keystore_kdf_seconds",
		Help:    "Time spent deriving keys from passwords.",
		Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"kdf"})

	decryptFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "keystore_decrypt_failures_total",
		Help: "Keystore decryptions that failed, by error kind.",
	}, []string{"kind"})

	walletAccounts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wallet_accounts",
		Help: "Accounts currently held by wallet registries.",
	})

	recoverTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signer_recover_total",
		Help: "Signer recoveries, by result.",
	}, []string{"result"})
)

// ObserveKDF records the duration of one key derivation started at start.
func ObserveKDF(kdf string, start time.Time) {
	kdfSeconds.WithLabelValues(kdf).Observe(time.Since(start).Seconds())
}

func DecryptFailed(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	decryptFailures.WithLabelValues(kind).Inc()
}

func AddAccounts(delta int) {
	walletAccounts.Add(float64(delta))
}

func Recovered(err error) {
	if err != nil {
		recoverTotal.WithLabelValues("error").Inc()
		return
	}
	recoverTotal.WithLabelValues("ok").Inc()
}
