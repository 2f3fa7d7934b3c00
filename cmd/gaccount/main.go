package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v1"

	"github.com/hweb3/go-accounts/cmd/params"
	"github.com/hweb3/go-accounts/cmd/utils"
	"github.com/hweb3/go-accounts/common"
	"github.com/hweb3/go-accounts/config"
	"github.com/hweb3/go-accounts/log15"
)

// gaccount manages keystore files and signs and recovers messages offline.

var log = log15.New("module", "gaccount/main")

// gitCommit is set at build time with -ldflags "-X main.gitCommit=<sha>".
var gitCommit = ""

var (
	//config
	configFlags = []cli.Flag{
		utils.ConfigFileFlag,
	}
	//general
	generalFlags = []cli.Flag{
		utils.DataDirFlag,
		utils.KeyStoreDirFlag,
		utils.LogLevelFlag,
		utils.MetricsAddrFlag,
	}
	//keystore
	keystoreFlags = []cli.Flag{
		utils.PasswordFileFlag,
		utils.LightKDFFlag,
		utils.KDFFlag,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gaccount"
	app.Version = params.VersionWithCommit(gitCommit)
	app.Usage = "keystore and signing tool for Ethereum style accounts"

	app.Commands = []cli.Command{
		accountCommand,
		hashCommand,
		signCommand,
		recoverCommand,
		recoverTxCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = utils.MergeFlags(configFlags, generalFlags, keystoreFlags)
	app.Before = beforeAction
	app.After = afterAction
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func beforeAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	log15.Setup(cfg.LogLevel, common.LogHandler(cfg.DataDir, common.DefaultLogSubDir, cfg.LogFile, cfg.LogLevel))

	if addr := ctx.GlobalString(utils.MetricsAddrFlag.Name); addr != "" {
		utils.StartMetricsServer(addr)
	}
	return nil
}

func afterAction(ctx *cli.Context) error {
	log15.Discard()
	return nil
}

// makeConfig overlays command line flags on the config file.
func makeConfig(ctx *cli.Context) (*config.Config, error) {
	path := ctx.GlobalString(utils.ConfigFileFlag.Name)
	if path == "" {
		path = config.DefaultConfigFileName
	}
	cfg, err := config.Parse(path)
	if err != nil {
		return nil, err
	}

	if dir := ctx.GlobalString(utils.DataDirFlag.Name); dir != "" {
		cfg.DataDir = dir
	}
	if dir := ctx.GlobalString(utils.KeyStoreDirFlag.Name); dir != "" {
		cfg.KeyStoreDir = dir
	}
	if lvl := ctx.GlobalString(utils.LogLevelFlag.Name); lvl != "" {
		cfg.LogLevel = lvl
	}
	if kdf := ctx.GlobalString(utils.KDFFlag.Name); kdf != "" {
		cfg.KDF = kdf
	}
	if ctx.GlobalBool(utils.LightKDFFlag.Name) {
		cfg.LightKDF = true
	}
	cfg.SetDefaults()
	return cfg, nil
}
