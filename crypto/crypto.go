package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	crand "crypto/rand"
	"errors"
	"io"
)

var ErrPadding = errors.New("invalid padding")

// AesCTRXOR(plainText) = cipherText AesCTRXOR(cipherText) = plainText
func AesCTRXOR(key, inText, iv []byte) ([]byte, error) {

	aesBlock, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	stream := cipher.NewCTR(aesBlock, iv)
	outText := make([]byte, len(inText))
	stream.XORKeyStream(outText, inText)
	return outText, err
}

// AesCBCEncrypt pads inText with PKCS#7 before encrypting.
func AesCBCEncrypt(key, inText, iv []byte) ([]byte, error) {
	aesBlock, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	padLen := aes.BlockSize - len(inText)%aes.BlockSize
	padded := make([]byte, len(inText), len(inText)+padLen)
	copy(padded, inText)
	padded = append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	outText := make([]byte, len(padded))
	cipher.NewCBCEncrypter(aesBlock, iv).CryptBlocks(outText, padded)
	return outText, nil
}

func AesCBCDecrypt(key, cipherText, iv []byte) ([]byte, error) {
	aesBlock, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(cipherText) == 0 || len(cipherText)%aes.BlockSize != 0 {
		return nil, ErrPadding
	}
	outText := make([]byte, len(cipherText))
	cipher.NewCBCDecrypter(aesBlock, iv).CryptBlocks(outText, cipherText)

	padLen := int(outText[len(outText)-1])
	if padLen == 0 || padLen > aes.BlockSize || padLen > len(outText) {
		return nil, ErrPadding
	}
	for _, b := range outText[len(outText)-padLen:] {
		if int(b) != padLen {
			return nil, ErrPadding
		}
	}
	return outText[:len(outText)-padLen], nil
}

func GetEntropyCSPRNG(n int) []byte {
	mainBuff := make([]byte, n)
	_, err := io.ReadFull(crand.Reader, mainBuff)
	if err != nil {
		panic("reading from crypto/rand failed: " + err.Error())
	}
	return mainBuff
}

// ZeroBytes overwrites b in place.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
