package keystore

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	vcrypto "github.com/hweb3/go-accounts/crypto"
	"github.com/hweb3/go-accounts/log15"
	"github.com/hweb3/go-accounts/metrics"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

var log = log15.New("module", "wallet/keystore")

// EncryptKey seals privateKey under password. Output is a pure function of its
// inputs plus the salt, iv and uuid draws that opts did not pin.
func EncryptKey(privateKey []byte, password string, opts *Options) (*Record, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(privateKey) == 0 {
		return nil, walleterrors.Validation("empty private key")
	}

	kdf, params, err := newKDFParams(opts)
	if err != nil {
		return nil, err
	}
	cipherName := opts.Cipher
	if cipherName == "" {
		cipherName = CipherAES128CTR
	}
	iv := opts.IV
	if len(iv) == 0 {
		iv = vcrypto.GetEntropyCSPRNG(ivLen)
	}
	if err := checkCipher(cipherName, iv); err != nil {
		return nil, err
	}
	id, err := newID(opts.UUID)
	if err != nil {
		return nil, err
	}

	derivedKey, err := deriveKey([]byte(password), kdf, &params)
	if err != nil {
		return nil, err
	}
	defer vcrypto.ZeroBytes(derivedKey)

	cipherText, err := encryptKeyBytes(cipherName, derivedKey, iv, privateKey)
	if err != nil {
		return nil, err
	}

	log.Debug("Encrypted key", "id", id, "kdf", kdf, "cipher", cipherName)
	return &Record{
		Version: keystoreVersion,
		ID:      id,
		Crypto: CryptoJSON{
			CipherText:   hex.EncodeToString(cipherText),
			CipherParams: cipherparamsJSON{IV: hex.EncodeToString(iv)},
			Cipher:       cipherName,
			KDF:          kdf,
			KDFParams:    params,
			MAC:          hex.EncodeToString(computeMAC(derivedKey, cipherText)),
		},
	}, nil
}

// newID builds a version 4 uuid from the first 16 bytes of random.
func newID(random []byte) (string, error) {
	if len(random) == 0 {
		random = vcrypto.GetEntropyCSPRNG(uuidLen)
	}
	if len(random) < uuidLen {
		return "", walleterrors.Validation("uuid needs %d random bytes, got %d", uuidLen, len(random))
	}
	id, err := uuid.NewRandomFromReader(bytes.NewReader(random[:uuidLen]))
	if err != nil {
		return "", errors.Wrap(err, "uuid")
	}
	return id.String(), nil
}

// DecryptRecord returns the raw private key sealed in rec. The caller owns the
// returned slice and should wipe it when done.
func DecryptRecord(rec *Record, password string) (key []byte, err error) {
	defer func() {
		if err != nil {
			metrics.DecryptFailed(string(walleterrors.KindOf(err)))
		}
	}()

	if rec == nil {
		return nil, walleterrors.Codec("nil keystore record", nil)
	}
	if rec.Version != keystoreVersion {
		return nil, walleterrors.Codec(fmt.Sprintf("not a valid V3 wallet, version %d", rec.Version), nil)
	}
	cipherText, err := hex.DecodeString(rec.Crypto.CipherText)
	if err != nil {
		return nil, walleterrors.Codec("invalid ciphertext", err)
	}
	iv, err := hex.DecodeString(rec.Crypto.CipherParams.IV)
	if err != nil {
		return nil, walleterrors.Codec("invalid cipher iv", err)
	}

	derivedKey, err := deriveKey([]byte(password), rec.Crypto.KDF, &rec.Crypto.KDFParams)
	if err != nil {
		return nil, err
	}
	defer vcrypto.ZeroBytes(derivedKey)

	if err := verifyMAC(derivedKey, cipherText, rec.Crypto.MAC); err != nil {
		log.Debug("Keystore mac mismatch", "id", rec.ID)
		return nil, err
	}
	return decryptKeyBytes(rec.Crypto.Cipher, derivedKey, iv, cipherText)
}

// DecryptKey parses keyjson and decrypts it, see ParseRecord for nonStrict.
func DecryptKey(keyjson []byte, password string, nonStrict bool) ([]byte, error) {
	rec, err := ParseRecord(keyjson, nonStrict)
	if err != nil {
		metrics.DecryptFailed(string(walleterrors.KindCodec))
		return nil, err
	}
	return DecryptRecord(rec, password)
}
