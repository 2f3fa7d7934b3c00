// Package log15 wires go-ethereum's log15-style logger to the terminal and to
// rotated log files. Packages log through New("module", "...").
package log15

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type (
	Logger  = log.Logger
	Handler = log.Handler
	Lvl     = log.Lvl
)

const (
	LvlCrit  = log.LvlCrit
	LvlError = log.LvlError
	LvlWarn  = log.LvlWarn
	LvlInfo  = log.LvlInfo
	LvlDebug = log.LvlDebug
	LvlTrace = log.LvlTrace
)

// Predefined handlers
var (
	StdoutHandler = log.StreamHandler(os.Stdout, log.LogfmtFormat())
	StderrHandler = log.StreamHandler(os.Stderr, log.LogfmtFormat())
)

func init() {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		StdoutHandler = log.StreamHandler(colorable.NewColorableStdout(), log.TerminalFormat(true))
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		StderrHandler = log.StreamHandler(colorable.NewColorableStderr(), log.TerminalFormat(true))
	}
}

// New returns a new logger with the given context.
// The root handler discards everything until Setup is called.
func New(ctx ...interface{}) Logger {
	return log.New(ctx...)
}

// Root returns the root logger
func Root() Logger {
	return log.Root()
}

// LvlFromString falls back to LvlInfo for unknown names.
func LvlFromString(lvl string) Lvl {
	l, err := log.LvlFromString(lvl)
	if err != nil {
		return LvlInfo
	}
	return l
}

// Setup routes records at or above lvl to stderr and to every extra handler.
func Setup(lvl string, extra ...Handler) {
	handlers := append([]Handler{StderrHandler}, extra...)
	log.Root().SetHandler(log.LvlFilterHandler(LvlFromString(lvl), log.MultiHandler(handlers...)))
}

// Discard silences the root logger again.
func Discard() {
	log.Root().SetHandler(log.DiscardHandler())
}
