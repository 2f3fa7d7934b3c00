package signer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hweb3/go-accounts/common/types"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

type testKey struct {
	priv *ecdsa.PrivateKey
}

func (k testKey) WithPrivateKey(f func(priv *ecdsa.PrivateKey) error) error {
	return f(k.priv)
}

func newTestKey(t *testing.T, hexKey string) (testKey, types.Address) {
	priv, err := ethcrypto.HexToECDSA(hexKey)
	require.NoError(t, err)
	return testKey{priv: priv}, ethcrypto.PubkeyToAddress(priv.PublicKey)
}

func TestHashMessageVectors(t *testing.T) {
	assert.Equal(t, "0xa1de988600a42c4b4ab089b619297c17d53cffae5d5120d82d8a92d0bb3b78f2", HashMessage("Hello World").Hex())
	assert.Equal(t, "0x1da44b586eb0729ff70a73c326926f6ed5a25f5b056e7f47fbc6e58d86871655", HashMessage("Some data").Hex())
}

func TestHashMessageInputForms(t *testing.T) {
	cases := []struct {
		data string
		raw  []byte
	}{
		{"Hello World", []byte("Hello World")},
		{"", nil},
		// byte length, not rune length
		{"héllo wörld ✓", []byte("héllo wörld ✓")},
		{"0xdeadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"0xDEADbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"0x", nil},
		{"0xabc", []byte{0xab, 0x0c}},
		{"0xzz", []byte("0xzz")},
		{"0X12", []byte("0X12")},
		{"\x00\x00hi\x00", []byte("hi")},
	}
	for _, c := range cases {
		assert.Equal(t, ethcommon.BytesToHash(accounts.TextHash(c.raw)), HashMessage(c.data), "%q", c.data)
	}
}

func TestSignAndRecoverBothRecoveryIDs(t *testing.T) {
	key, addr := newTestKey(t, "4646464646464646464646464646464646464646464646464646464646464646")
	s := NewService(NewKeySigner(key))

	seen := map[uint64]bool{}
	for i := 0; i < 64 && len(seen) < 2; i++ {
		msg := "message " + string(rune('a'+i%26)) + hex.EncodeToString([]byte{byte(i)})
		signed, err := s.Sign(msg)
		require.NoError(t, err)
		require.Len(t, signed.Encoded, 65)
		require.Contains(t, []uint64{27, 28}, signed.V)
		seen[signed.V] = true

		got, err := s.RecoverFromMessage(msg, signed.Encoded, false)
		require.NoError(t, err)
		assert.Equal(t, addr, got)

		got, err = s.RecoverFromComponents(msg, signed.Signature, false)
		require.NoError(t, err)
		assert.Equal(t, addr, got)

		got, err = s.RecoverFromMessage(signed.MessageHash.Hex(), signed.Encoded, true)
		require.NoError(t, err)
		assert.Equal(t, addr, got)

		got, err = s.RecoverFromSignatureObject(SignatureObject{MessageHash: signed.MessageHash, Signature: signed.Signature})
		require.NoError(t, err)
		assert.Equal(t, addr, got)

		// 0/1 and EIP-155 style recovery values name the same key
		for _, v := range []uint64{signed.V - 27, signed.V - 27 + 35 + 2*1} {
			sig := signed.Signature
			sig.V = v
			got, err = s.RecoverFromSignatureObject(SignatureObject{MessageHash: signed.MessageHash, Signature: sig})
			require.NoError(t, err)
			assert.Equal(t, addr, got)
		}
	}
	assert.Len(t, seen, 2)
}

func TestRecoverKnownSignature(t *testing.T) {
	_, addr := newTestKey(t, "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", addr.Hex())

	sig, err := ParseSignature("0xb91467e570a6466aa9e9876cbcd013baba02900b8979d43fe208a4a4f339f5fd6007e74cd82e037b800186422fc2da167c747ef045e5d18a5f5d4300f8e1a0291c")
	require.NoError(t, err)

	var s Service
	got, err := s.RecoverFromMessage("Some data", sig, false)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestSignWithMockBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := NewMockBackend(ctrl)
	s := NewService(backend)
	hash := HashMessage("hi")

	raw := make([]byte, 65)
	raw[0], raw[63], raw[64] = 1, 2, 28
	backend.EXPECT().SignData(hash[:]).Return(raw, nil)

	signed, err := s.Sign("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", signed.Message)
	assert.Equal(t, hash, signed.MessageHash)
	assert.Equal(t, uint64(28), signed.V)
	assert.Equal(t, byte(1), signed.R[0])
	assert.Equal(t, byte(2), signed.S[31])
	assert.Equal(t, raw, signed.Encoded)

	backendErr := errors.New("hardware wallet unplugged")
	backend.EXPECT().SignData(gomock.Any()).Return(nil, backendErr)
	_, err = s.Sign("hi")
	assert.True(t, errors.Is(err, backendErr))

	backend.EXPECT().SignData(gomock.Any()).Return([]byte{1, 2, 3}, nil)
	_, err = s.Sign("hi")
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindInvalidSignature))
}

func TestNoBackend(t *testing.T) {
	s := NewService(nil)
	_, err := s.Sign("hi")
	assert.Equal(t, ErrNoBackend, err)
	_, err = s.SignTransaction(nil, nil)
	assert.Equal(t, ErrNoBackend, err)
}

func TestKeySignerPropagatesKeyErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locked := errors.New("locked")
	src := NewMockKeySource(ctrl)
	src.EXPECT().WithPrivateKey(gomock.Any()).Return(locked)

	_, err := NewKeySigner(src).SignData(make([]byte, 32))
	assert.Equal(t, locked, err)

	_, err = NewKeySigner(src).SignData(make([]byte, 31))
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindValidation))
}

func TestRecoverInvalidSignature(t *testing.T) {
	var s Service
	hash := HashMessage("x")

	zero := Signature{V: 27}
	_, err := s.RecoverFromSignatureObject(SignatureObject{MessageHash: hash, Signature: zero})
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindInvalidSignature))

	// s above the curve order
	var high Signature
	high.V = 27
	high.R[31] = 1
	for i := range high.S {
		high.S[i] = 0xff
	}
	_, err = s.RecoverFromSignatureObject(SignatureObject{MessageHash: hash, Signature: high})
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindInvalidSignature))

	_, err = s.RecoverFromMessage("x", make([]byte, 10), false)
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindInvalidSignature))

	_, err = s.RecoverFromMessage("not a hash", make([]byte, 65), true)
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindCodec))
}

func TestEncodeDecodeSignature(t *testing.T) {
	var sig Signature
	sig.R[0], sig.S[0] = 0xaa, 0xbb

	for _, v := range []uint64{0, 1, 27, 28, 37, 300} {
		sig.V = v
		enc := EncodeSignature(sig)
		if v < 256 {
			assert.Len(t, enc, 65)
			assert.Equal(t, byte(v), enc[64])
		} else {
			assert.Len(t, enc, 66)
		}
		dec, err := DecodeSignature(enc)
		require.NoError(t, err)
		assert.Equal(t, sig, dec)
	}
}

func TestRecoveryID(t *testing.T) {
	for v, want := range map[uint64]byte{0: 0, 1: 1, 27: 0, 28: 1, 37: 0, 38: 1, 2709: 0, 2710: 1} {
		assert.Equal(t, want, recoveryID(v), "v=%d", v)
	}
}

func TestParseSignature(t *testing.T) {
	_, err := ParseSignature("b914")
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindCodec))
	_, err = ParseSignature("0xabc")
	assert.True(t, walleterrors.IsKind(err, walleterrors.KindCodec))
	b, err := ParseSignature("0xABcd")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b)
}
