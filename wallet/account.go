package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/hweb3/go-accounts/common/types"
	vcrypto "github.com/hweb3/go-accounts/crypto"
	"github.com/hweb3/go-accounts/wallet/keystore"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

var errWiped = errors.New("account secret has been wiped")

// Account is a secp256k1 keypair. The private key lives in an owned buffer and
// is only turned into an *ecdsa.PrivateKey for the duration of WithPrivateKey.
type Account struct {
	Address   types.Address
	PublicKey []byte
	// Index is the registry slot, -1 while the account is not registered.
	Index int

	secret *SecretBuffer
}

// NewAccount generates a fresh key, mixing entropy into the CSPRNG output.
func NewAccount(entropy []byte) (*Account, error) {
	key, err := vcrypto.CreatePrivateKey(entropy)
	if err != nil {
		return nil, errors.Wrap(err, "create private key")
	}
	defer vcrypto.ZeroBytes(key)
	return newAccountFromKey(key)
}

// PrivateKeyToAccount parses a 32 byte hex key, with or without 0x.
func PrivateKeyToAccount(hexKey string) (*Account, error) {
	hexKey = strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X")
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, walleterrors.Validation("private key is not hex: %v", err)
	}
	defer vcrypto.ZeroBytes(key)
	if len(key) != vcrypto.PrivateKeySize {
		return nil, walleterrors.Validation("private key must be %d bytes, got %d", vcrypto.PrivateKeySize, len(key))
	}
	return newAccountFromKey(key)
}

func newAccountFromKey(key []byte) (*Account, error) {
	priv, err := vcrypto.PrivateKeyToECDSA(key)
	if err != nil {
		return nil, walleterrors.Wrap(walleterrors.KindValidation, walleterrors.ErrInvalidPrikey.Error(), err)
	}
	defer vcrypto.ClearECDSA(priv)

	return &Account{
		Address:   types.PrikeyToAddress(priv),
		PublicKey: vcrypto.PublicKeyBytes(priv),
		Index:     -1,
		secret:    NewSecretBuffer(key),
	}, nil
}

// WithPrivateKey materialises the private key for f and clears it afterwards.
func (acct *Account) WithPrivateKey(f func(priv *ecdsa.PrivateKey) error) error {
	return acct.secret.Use(func(key []byte) error {
		priv, err := vcrypto.PrivateKeyToECDSA(key)
		if err != nil {
			return err
		}
		defer vcrypto.ClearECDSA(priv)
		return f(priv)
	})
}

// Encrypt seals the account into a keystore record.
func (acct *Account) Encrypt(password string, opts *keystore.Options) (*keystore.Record, error) {
	var rec *keystore.Record
	err := acct.secret.Use(func(key []byte) (err error) {
		rec, err = keystore.EncryptKey(key, password, opts)
		return err
	})
	return rec, err
}

// PrivateKeyHex exports the key as 0x-prefixed hex. Only the CLI export path
// should need this.
func (acct *Account) PrivateKeyHex() (string, error) {
	var out string
	err := acct.secret.Use(func(key []byte) error {
		out = "0x" + hex.EncodeToString(key)
		return nil
	})
	return out, err
}

// clone copies acct with its own secret buffer. The copy is unregistered.
func (acct *Account) clone() (*Account, error) {
	var secret *SecretBuffer
	err := acct.secret.Use(func(key []byte) error {
		secret = NewSecretBuffer(key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	pub := make([]byte, len(acct.PublicKey))
	copy(pub, acct.PublicKey)
	return &Account{
		Address:   acct.Address,
		PublicKey: pub,
		Index:     -1,
		secret:    secret,
	}, nil
}

func (acct *Account) wipe() {
	acct.secret.Wipe()
}

// Wiped reports whether the account's secret has been destroyed.
func (acct *Account) Wiped() bool {
	return acct.secret.Wiped()
}

func (acct *Account) String() string {
	return acct.Address.Hex()
}

// decryptAccount is the inverse of Account.Encrypt.
func decryptAccount(rec *keystore.Record, password string) (*Account, error) {
	key, err := keystore.DecryptRecord(rec, password)
	if err != nil {
		return nil, err
	}
	defer vcrypto.ZeroBytes(key)
	return newAccountFromKey(key)
}
