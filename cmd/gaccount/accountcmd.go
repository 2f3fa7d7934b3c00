package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/hweb3/go-accounts/cmd/utils"
	"github.com/hweb3/go-accounts/common/types"
	vcrypto "github.com/hweb3/go-accounts/crypto"
	"github.com/hweb3/go-accounts/wallet"
	"github.com/hweb3/go-accounts/wallet/keystore"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
	"github.com/hweb3/go-accounts/wallet/walletstore"
)

var (
	highlight = color.New(color.FgGreen, color.Bold)

	accountCommand = cli.Command{
		Name:  "account",
		Usage: "Manage accounts",
		Description: `Manage accounts: list all accounts, create new accounts,
import a private key and inspect a keystore file.`,
		Subcommands: []cli.Command{
			{
				Name:        "list",
				Usage:       "List all existing accounts",
				Action:      accountList,
				Description: "Print all accounts in the keystore directory",
			},
			{
				Name:   "new",
				Usage:  "Create new accounts",
				Action: accountNew,
				Flags:  []cli.Flag{utils.CountFlag},
				Description: `gaccount account new [--count n]

Creates new accounts locked with a password and prints their addresses.`,
			},
			{
				Name:      "import",
				Usage:     "Import a private key into a new account",
				Action:    accountImport,
				ArgsUsage: "<keyfile>",
				Description: `gaccount account import <keyfile>

Imports an unencrypted hex private key from <keyfile> and creates a new account.
Prints the address.`,
			},
			{
				Name:      "inspect",
				Usage:     "Decrypt a keystore file and print its account",
				Action:    accountInspect,
				Flags:     []cli.Flag{utils.PrivateFlag},
				ArgsUsage: "<keystore file>",
			},
		},
	}
)

func getPassword(ctx *cli.Context, prompt string, confirmation bool) (string, error) {
	if file := ctx.GlobalString(utils.PasswordFileFlag.Name); file != "" {
		return utils.ReadPasswordFile(file)
	}
	return utils.PromptPassword(prompt, confirmation)
}

// openKeyStore returns the keystore directory store and a manager whose
// exports use the configured encryption settings.
func openKeyStore(ctx *cli.Context) (*walletstore.FileStore, *wallet.Manager, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	store := walletstore.NewFileStore(cfg.KeyStoreDir)
	return store, wallet.New(&wallet.Config{Keystore: cfg.KeystoreOptions()}, store), nil
}

// storeAccount writes the account at addr as a keystore file named after it.
func storeAccount(store *walletstore.FileStore, m *wallet.Manager, addr types.Address, password string) error {
	rec, err := m.Export(addr, password)
	if err != nil {
		return err
	}
	keyjson, err := rec.JSON()
	if err != nil {
		return err
	}
	return store.Put(keystore.KeyFileName(addr), keyjson)
}

func accountList(ctx *cli.Context) error {
	store, _, err := openKeyStore(ctx)
	if err != nil {
		return err
	}
	names, err := store.List()
	if err != nil {
		return err
	}
	index := 0
	for _, name := range names {
		addr, err := keystore.AddressFromKeyPath(name)
		if err != nil {
			log.Debug("Skipping non keystore file", "file", name)
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "Account #%d: {%s}\n", index, addr.Hex())
		index++
	}
	return nil
}

func accountNew(ctx *cli.Context) error {
	store, m, err := openKeyStore(ctx)
	if err != nil {
		return err
	}
	defer m.Close()
	if !store.Available() {
		return walleterrors.ErrStorageUnavailable
	}

	password, err := getPassword(ctx, "Your new account is locked with a password. Please give a password. Do not forget this password.", true)
	if err != nil {
		return err
	}
	addrs, err := m.Create(ctx.Int(utils.CountFlag.Name), nil)
	if err != nil {
		return err
	}
	for _, addr := range addrs {
		if err := storeAccount(store, m, addr, password); err != nil {
			return err
		}
		highlight.Fprintf(ctx.App.Writer, "Address: {%s}\n", addr.Hex())
	}
	return nil
}

func accountImport(ctx *cli.Context) error {
	keyfile := ctx.Args().First()
	if len(keyfile) == 0 {
		return errors.New("keyfile must be given as argument")
	}
	text, err := ioutil.ReadFile(keyfile)
	if err != nil {
		return errors.Wrap(err, "read keyfile")
	}

	store, m, err := openKeyStore(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	addr, err := m.ImportPrivateKey(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	if _, err := store.Get(keystore.KeyFileName(addr)); err == nil {
		return errors.Errorf("account %s already exists", addr.Hex())
	}
	password, err := getPassword(ctx, "Your new account is locked with a password. Please give a password. Do not forget this password.", true)
	if err != nil {
		return err
	}
	if err := storeAccount(store, m, addr, password); err != nil {
		return err
	}
	highlight.Fprintf(ctx.App.Writer, "Address: {%s}\n", addr.Hex())
	return nil
}

func accountInspect(ctx *cli.Context) error {
	keyfile := ctx.Args().First()
	if len(keyfile) == 0 {
		return errors.New("keystore file must be given as argument")
	}
	keyjson, err := ioutil.ReadFile(keyfile)
	if err != nil {
		return errors.Wrap(err, "read keystore file")
	}
	password, err := getPassword(ctx, "", false)
	if err != nil {
		return err
	}

	key, err := keystore.DecryptKey(keyjson, password, false)
	if err != nil {
		return err
	}
	defer vcrypto.ZeroBytes(key)
	priv, err := vcrypto.PrivateKeyToECDSA(key)
	if err != nil {
		return err
	}
	defer vcrypto.ClearECDSA(priv)

	w := ctx.App.Writer
	highlight.Fprintf(w, "Address:        %s\n", types.PrikeyToAddress(priv).Hex())
	fmt.Fprintf(w, "Public key:     0x%s\n", hex.EncodeToString(vcrypto.PublicKeyBytes(priv)))
	if ctx.Bool(utils.PrivateFlag.Name) {
		fmt.Fprintf(w, "Private key:    0x%s\n", hex.EncodeToString(key))
	}
	return nil
}
