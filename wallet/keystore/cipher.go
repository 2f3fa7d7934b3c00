package keystore

import (
	vcrypto "github.com/hweb3/go-accounts/crypto"
	"github.com/hweb3/go-accounts/wallet/walleterrors"
)

func checkCipher(name string, iv []byte) error {
	if name != CipherAES128CTR && name != CipherAES128CBC {
		return walleterrors.UnsupportedAlgorithm("unsupported cipher %q", name)
	}
	if len(iv) != ivLen {
		return walleterrors.Validation("cipher iv must be %d bytes, got %d", ivLen, len(iv))
	}
	return nil
}

// encryptKeyBytes uses derivedKey[:16] as the AES-128 key.
func encryptKeyBytes(name string, derivedKey, iv, plainText []byte) ([]byte, error) {
	if err := checkCipher(name, iv); err != nil {
		return nil, err
	}
	if name == CipherAES128CBC {
		return vcrypto.AesCBCEncrypt(derivedKey[:16], plainText, iv)
	}
	return vcrypto.AesCTRXOR(derivedKey[:16], plainText, iv)
}

func decryptKeyBytes(name string, derivedKey, iv, cipherText []byte) ([]byte, error) {
	if err := checkCipher(name, iv); err != nil {
		return nil, err
	}
	if name == CipherAES128CBC {
		plainText, err := vcrypto.AesCBCDecrypt(derivedKey[:16], cipherText, iv)
		if err != nil {
			return nil, walleterrors.Integrity()
		}
		return plainText, nil
	}
	return vcrypto.AesCTRXOR(derivedKey[:16], cipherText, iv)
}
