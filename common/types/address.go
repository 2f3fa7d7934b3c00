package types

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	AddressSize      = ethcommon.AddressLength
	hexAddressLength = 2 + 2*AddressSize
)

// Address is a 20 byte account address. Hex() renders the EIP-55 checksum form.
type Address = ethcommon.Address

// HexToAddress parses a 0x-prefixed address. All-lower and all-upper inputs are
// accepted as is; mixed case must carry a valid checksum.
func HexToAddress(hexStr string) (Address, error) {
	if !IsValidHexAddress(hexStr) {
		return Address{}, fmt.Errorf("not valid hex address %q", hexStr)
	}
	return ethcommon.HexToAddress(hexStr), nil
}

func IsValidHexAddress(hexStr string) bool {
	if len(hexStr) != hexAddressLength || !strings.HasPrefix(hexStr, "0x") {
		return false
	}
	body := hexStr[2:]
	if _, err := hex.DecodeString(body); err != nil {
		return false
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return IsChecksumAddress(hexStr)
}

// IsChecksumAddress reports whether hexStr is exactly the EIP-55 rendering of itself.
func IsChecksumAddress(hexStr string) bool {
	if !ethcommon.IsHexAddress(hexStr) || !strings.HasPrefix(hexStr, "0x") {
		return false
	}
	return ethcommon.HexToAddress(hexStr).Hex() == hexStr
}

func PubkeyToAddress(pubkey []byte) (Address, error) {
	pub, err := ethcrypto.UnmarshalPubkey(pubkey)
	if err != nil {
		return Address{}, err
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}

func PrikeyToAddress(key *ecdsa.PrivateKey) Address {
	return ethcrypto.PubkeyToAddress(key.PublicKey)
}
