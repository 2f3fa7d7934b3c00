package crypto

import (
	"crypto/ecdsa"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	PrivateKeySize = 32
	seedSize       = 32
)

// CreatePrivateKey returns a new secp256k1 private key. Caller supplied entropy
// is mixed with fresh CSPRNG output, it never replaces it:
//
//	inner = keccak(rand32 || entropy)   (entropy defaults to rand32)
//	key   = keccak(rand32 || inner || rand32)
func CreatePrivateKey(entropy []byte) ([]byte, error) {
	if len(entropy) == 0 {
		entropy = GetEntropyCSPRNG(seedSize)
	}
	inner := Hash256(GetEntropyCSPRNG(seedSize), entropy)
	key := Hash256(GetEntropyCSPRNG(seedSize), inner, GetEntropyCSPRNG(seedSize))

	// rejects zero and values above the curve order
	if _, err := ethcrypto.ToECDSA(key); err != nil {
		ZeroBytes(key)
		return nil, err
	}
	return key, nil
}

// PrivateKeyToECDSA parses a raw 32-byte secp256k1 scalar.
func PrivateKeyToECDSA(key []byte) (*ecdsa.PrivateKey, error) {
	return ethcrypto.ToECDSA(key)
}

// PublicKeyBytes returns the 65-byte uncompressed public key of priv.
func PublicKeyBytes(priv *ecdsa.PrivateKey) []byte {
	return ethcrypto.FromECDSAPub(&priv.PublicKey)
}

// ClearECDSA zeroes the scalar of a transient private key.
func ClearECDSA(priv *ecdsa.PrivateKey) {
	if priv == nil || priv.D == nil {
		return
	}
	b := priv.D.Bits()
	for i := range b {
		b[i] = 0
	}
	priv.D.SetInt64(0)
}
