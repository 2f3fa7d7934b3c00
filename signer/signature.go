package signer

import (
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/hweb3/go-accounts/common/types"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

const signatureLength = 65

// Signature is an ECDSA signature split into components. V is the raw recovery
// value: 0/1, 27/28 or an EIP-155 value.
type Signature struct {
	V uint64
	R types.Hash
	S types.Hash
}

// SignatureObject pairs a signature with the 32 byte hash it signs.
type SignatureObject struct {
	MessageHash types.Hash
	Signature
}

// EncodeSignature returns R || S || V with V in minimal big-endian form, which
// is a single byte for every V below 256.
func EncodeSignature(sig Signature) []byte {
	v := new(big.Int).SetUint64(sig.V).Bytes()
	if len(v) == 0 {
		v = []byte{0}
	}
	out := make([]byte, 0, 64+len(v))
	out = append(out, sig.R[:]...)
	out = append(out, sig.S[:]...)
	return append(out, v...)
}

// DecodeSignature is the inverse of EncodeSignature.
func DecodeSignature(b []byte) (Signature, error) {
	if len(b) < signatureLength || len(b) > 64+8 {
		return Signature{}, walleterrors.InvalidSignature("invalid signature length", nil)
	}
	var sig Signature
	copy(sig.R[:], b[:32])
	copy(sig.S[:], b[32:64])
	sig.V = new(big.Int).SetBytes(b[64:]).Uint64()
	return sig, nil
}

// recoveryID maps V onto 0 or 1. 0 and 1 pass through, anything else is taken
// as an offset form where an odd value means 0.
func recoveryID(v uint64) byte {
	if v == 0 || v == 1 {
		return byte(v)
	}
	return byte(1 - v%2)
}

// recoverAddress recovers the signer of hash.
func recoverAddress(hash types.Hash, sig Signature) (types.Address, error) {
	recid := recoveryID(sig.V)
	if !ethcrypto.ValidateSignatureValues(recid, sig.R.Big(), sig.S.Big(), false) {
		return types.Address{}, walleterrors.InvalidSignature("invalid signature values", nil)
	}
	raw := make([]byte, signatureLength)
	copy(raw, sig.R[:])
	copy(raw[32:], sig.S[:])
	raw[64] = recid

	pub, err := ethcrypto.SigToPub(hash[:], raw)
	if err != nil {
		return types.Address{}, walleterrors.InvalidSignature("public key recovery failed", err)
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}
