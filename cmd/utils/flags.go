package utils

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	// Config settings
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Json configuration file",
	}

	// General settings
	DataDirFlag = DirectoryFlag{
		Name:  "datadir",
		Usage: "use for store all files",
	}

	KeyStoreDirFlag = DirectoryFlag{
		Name:  "keystore",
		Usage: "Directory for the keystore (default = inside the datadir)",
	}

	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "Log level: crit, error, warn, info, debug, trace",
	}

	MetricsAddrFlag = cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "Serve prometheus metrics on this address while the command runs",
	}

	// Keystore settings
	PasswordFileFlag = cli.StringFlag{
		Name:  "password",
		Usage: "Password file to use for non-interactive password input",
	}
	LightKDFFlag = cli.BoolFlag{
		Name:  "lightkdf",
		Usage: "Reduce key-derivation RAM & CPU usage at some expense of KDF strength",
	}
	KDFFlag = cli.StringFlag{
		Name:  "kdf",
		Usage: "Key derivation function for new keystores: scrypt or pbkdf2",
	}

	// Command settings
	CountFlag = cli.IntFlag{
		Name:  "count",
		Usage: "Number of accounts to create",
		Value: 1,
	}
	PreFixedFlag = cli.BoolFlag{
		Name:  "prefixed",
		Usage: "Treat the message as an already prefixed 32 byte hash",
	}
	PrivateFlag = cli.BoolFlag{
		Name:  "private",
		Usage: "Also print the decrypted private key",
	}
)

// merge flags
func MergeFlags(flagsSet ...[]cli.Flag) []cli.Flag {
	mergeFlags := []cli.Flag{}
	for _, flags := range flagsSet {
		mergeFlags = append(mergeFlags, flags...)
	}
	return mergeFlags
}
