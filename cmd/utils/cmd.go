package utils

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hweb3/go-accounts/log15"
)

var log = log15.New("module", "cmd/utils")

// Fatalf prints to stderr and exits.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, color.RedString("Fatal: ")+format+"\n", args...)
	os.Exit(1)
}

// PromptPassword reads a password without echo. With confirmation the user is
// asked twice and both entries must match.
func PromptPassword(prompt string, confirmation bool) (string, error) {
	if prompt != "" {
		fmt.Println(prompt)
	}
	state := liner.NewLiner()
	defer state.Close()

	password, err := state.PasswordPrompt("Password: ")
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}
	if confirmation {
		confirm, err := state.PasswordPrompt("Repeat password: ")
		if err != nil {
			return "", errors.Wrap(err, "read password confirmation")
		}
		if password != confirm {
			return "", errors.New("passwords do not match")
		}
	}
	return password, nil
}

// ReadPasswordFile returns the first line of file.
func ReadPasswordFile(file string) (string, error) {
	text, err := ioutil.ReadFile(file)
	if err != nil {
		return "", errors.Wrap(err, "read password file")
	}
	return strings.TrimRight(strings.SplitN(string(text), "\n", 2)[0], "\r"), nil
}

// StartMetricsServer serves the prometheus registry on addr in the background.
func StartMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Info("Serving metrics", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server stopped", "err", err)
		}
	}()
}
