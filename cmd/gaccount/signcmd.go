package main

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/hweb3/go-accounts/cmd/utils"
	"github.com/hweb3/go-accounts/common/types"
	"github.com/hweb3/go-accounts/signer"
	"github.com/hweb3/go-accounts/wallet/keystore"
)

var (
	hashCommand = cli.Command{
		Name:      "hash",
		Usage:     "Print the personal message hash of a message",
		ArgsUsage: "<message>",
		Action:    hashMessage,
	}
	signCommand = cli.Command{
		Name:      "sign",
		Usage:     "Sign a personal message with a keystore account",
		ArgsUsage: "<address> <message>",
		Action:    signMessage,
	}
	recoverCommand = cli.Command{
		Name:      "recover",
		Usage:     "Recover the signer address of a message",
		ArgsUsage: "<message> <signature>",
		Flags:     []cli.Flag{utils.PreFixedFlag},
		Action:    recoverMessage,
	}
	recoverTxCommand = cli.Command{
		Name:      "recovertx",
		Usage:     "Recover the sender address of a raw signed transaction",
		ArgsUsage: "<rawtx>",
		Action:    recoverTx,
	}
)

func argN(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return errors.Errorf("expected %d arguments, usage: %s %s", n, ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return nil
}

func hashMessage(ctx *cli.Context) error {
	if err := argN(ctx, 1); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, signer.HashMessage(ctx.Args().Get(0)).Hex())
	return nil
}

func signMessage(ctx *cli.Context) error {
	if err := argN(ctx, 2); err != nil {
		return err
	}
	addr, err := types.HexToAddress(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	store, m, err := openKeyStore(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	keyjson, err := store.Get(keystore.KeyFileName(addr))
	if err != nil {
		return errors.Wrapf(err, "keystore for %s", addr.Hex())
	}
	password, err := getPassword(ctx, "", false)
	if err != nil {
		return err
	}
	if _, err := m.ImportKeystore(keyjson, password); err != nil {
		return err
	}
	signed, err := m.SignMessage(addr, ctx.Args().Get(1))
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "Message hash:   %s\n", signed.MessageHash.Hex())
	highlight.Fprintf(w, "Signature:      0x%x\n", signed.Encoded)
	fmt.Fprintf(w, "V:              %d\n", signed.V)
	fmt.Fprintf(w, "R:              %s\n", signed.R.Hex())
	fmt.Fprintf(w, "S:              %s\n", signed.S.Hex())
	return nil
}

func recoverMessage(ctx *cli.Context) error {
	if err := argN(ctx, 2); err != nil {
		return err
	}
	sig, err := signer.ParseSignature(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	var s signer.Service
	addr, err := s.RecoverFromMessage(ctx.Args().Get(0), sig, ctx.Bool(utils.PreFixedFlag.Name))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, addr.Hex())
	return nil
}

func recoverTx(ctx *cli.Context) error {
	if err := argN(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	r, err := signer.NewTxRecoverer(cfg.SenderCacheSize)
	if err != nil {
		return err
	}
	addr, err := r.Recover(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, addr.Hex())
	return nil
}
