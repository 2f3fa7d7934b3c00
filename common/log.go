package common

import (
	"io"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hweb3/go-accounts/log15"
)

func makeDefaultLogger(absFilePath string) io.Writer {
	return &lumberjack.Logger{
		Filename:   absFilePath,
		MaxSize:    100,
		MaxBackups: 14,
		MaxAge:     14,
		Compress:   true,
		LocalTime:  true,
	}
}

// LogHandler writes logfmt records at or above lvl to a rotated file under path/subDir.
func LogHandler(path, subDir, filename, lvl string) log15.Handler {
	absFilename := filepath.Join(path, subDir, filename)
	out := makeDefaultLogger(absFilename)
	return log.LvlFilterHandler(log15.LvlFromString(lvl), log.StreamHandler(out, log.LogfmtFormat()))
}
