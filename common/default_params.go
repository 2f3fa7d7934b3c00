package common

import (
	"os"
	"os/user"
	"path/filepath"
)

const (
	DefaultKeyStoreSubDir = "keystore"
	DefaultLogSubDir      = "log"
	DefaultLogFile        = "gaccount.log"
)

// DefaultDataDir is  $HOME/.hweb3/
func DefaultDataDir() string {
	home := HomeDir()
	if home != "" {
		return filepath.Join(home, ".hweb3")
	}
	return ""
}

func DefaultKeyStoreDir() string {
	return filepath.Join(DefaultDataDir(), DefaultKeyStoreSubDir)
}

func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
