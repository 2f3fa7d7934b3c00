package keystore

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	vcrypto "github.com/hweb3/go-accounts/crypto"
	"github.com/hweb3/go-accounts/metrics"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// newKDFParams fills in defaults and draws a salt unless opts carries one.
func newKDFParams(opts *Options) (string, KDFParams, error) {
	kdf := opts.KDF
	if kdf == "" {
		kdf = KDFScrypt
	}
	salt := opts.Salt
	if len(salt) == 0 {
		salt = vcrypto.GetEntropyCSPRNG(saltLen)
	}

	params := KDFParams{
		DKLen: orDefault(opts.DKLen, DefaultDKLen),
		Salt:  hex.EncodeToString(salt),
	}
	switch kdf {
	case KDFPBKDF2:
		params.C = orDefault(opts.C, DefaultPBKDF2C)
		params.PRF = PRFHmacSHA256
	case KDFScrypt:
		params.N = orDefault(opts.N, DefaultScryptN)
		params.R = orDefault(opts.R, DefaultScryptR)
		params.P = orDefault(opts.P, DefaultScryptP)
	default:
		return "", KDFParams{}, walleterrors.UnsupportedAlgorithm("unsupported kdf %q", kdf)
	}
	return kdf, params, nil
}

// deriveKey stretches password with the named kdf. It runs to completion; there
// is no way to abandon a derivation half way.
func deriveKey(password []byte, kdf string, params *KDFParams) ([]byte, error) {
	if kdf != KDFScrypt && kdf != KDFPBKDF2 {
		return nil, walleterrors.UnsupportedAlgorithm("unsupported key derivation scheme %q", kdf)
	}
	if kdf == KDFPBKDF2 && params.PRF != PRFHmacSHA256 {
		return nil, walleterrors.UnsupportedAlgorithm("unsupported parameters to pbkdf2: prf %q", params.PRF)
	}
	// the mac is taken over bytes 16..32
	if params.DKLen < DefaultDKLen {
		return nil, walleterrors.Validation("dklen must be at least %d, got %d", DefaultDKLen, params.DKLen)
	}
	salt, err := hex.DecodeString(params.Salt)
	if err != nil {
		return nil, walleterrors.Codec("invalid kdf salt", err)
	}

	defer metrics.ObserveKDF(kdf, time.Now())

	if kdf == KDFPBKDF2 {
		if params.C <= 0 {
			return nil, walleterrors.Validation("pbkdf2 iteration count must be positive, got %d", params.C)
		}
		return pbkdf2.Key(password, salt, params.C, params.DKLen, sha256.New), nil
	}

	derivedKey, err := scrypt.Key(password, salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, walleterrors.Wrap(walleterrors.KindValidation, "invalid scrypt parameters", err)
	}
	return derivedKey, nil
}
