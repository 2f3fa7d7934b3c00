package signer

import (
	"crypto/ecdsa"
	"math/big"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

//go:generate mockgen -source=backend.go -destination=backend_mock.go -package=signer

// Backend is the key holder a Service delegates signing to: a local key, a
// remote signer or a provider.
type Backend interface {
	// SignData signs a 32 byte digest and returns R || S || V.
	SignData(digest []byte) ([]byte, error)
	SignTransaction(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error)
}

// KeySource lends out a private key for the duration of f.
type KeySource interface {
	WithPrivateKey(f func(priv *ecdsa.PrivateKey) error) error
}

// KeySigner is a Backend over a local secp256k1 key. Signatures carry V as 27/28.
type KeySigner struct {
	key KeySource
}

func NewKeySigner(key KeySource) *KeySigner {
	return &KeySigner{key: key}
}

func (k *KeySigner) SignData(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, walleterrors.Validation("digest must be 32 bytes, got %d", len(digest))
	}
	var sig []byte
	err := k.key.WithPrivateKey(func(priv *ecdsa.PrivateKey) (err error) {
		sig, err = ethcrypto.Sign(digest, priv)
		return err
	})
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// SignTransaction signs with the latest signer for chainID; a nil chainID gives
// an unprotected legacy signature.
func (k *KeySigner) SignTransaction(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error) {
	var signed *ethtypes.Transaction
	err := k.key.WithPrivateKey(func(priv *ecdsa.PrivateKey) (err error) {
		signed, err = ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainID), priv)
		return err
	})
	return signed, err
}
